package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/game"
)

// Color modes accepted by New
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists the valid color settings
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

const bannerText = " ♠ ♥ Blackjack ♦ ♣ "

// Console reads answers from one stream and writes the game transcript to another
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color bool

	prompt  *color.Color
	heading *color.Color
	warn    *color.Color
	win     *color.Color
	lose    *color.Color
	push    *color.Color
}

// New creates a console. mode is one of ColorAuto, ColorAlways or ColorNever;
// auto enables color only when out is a terminal.
func New(in io.Reader, out io.Writer, mode string) *Console {
	enabled := false
	switch mode {
	case ColorAlways:
		enabled = true
	case ColorNever:
	default:
		enabled = isTerminal(out)
	}

	c := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		color:   enabled,
		prompt:  color.New(color.FgCyan),
		heading: color.New(color.FgHiWhite, color.Bold),
		warn:    color.New(color.FgRed),
		win:     color.New(color.FgGreen, color.Bold),
		lose:    color.New(color.FgRed, color.Bold),
		push:    color.New(color.FgYellow, color.Bold),
	}

	for _, col := range []*color.Color{c.prompt, c.heading, c.warn, c.win, c.lose, c.push} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}

	return c
}

// Ask prints prompt and returns the next input line without surrounding
// whitespace. It returns io.EOF once input is exhausted.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprintf(c.out, "%s ", c.prompt.Sprint(prompt))

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		fmt.Fprintln(c.out)
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Show prints text, highlighting hand headings
func (c *Console) Show(text string) {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "====") {
			fmt.Fprintln(c.out, c.heading.Sprint(line))
			continue
		}
		fmt.Fprintln(c.out, line)
	}
}

// Warn prints an error message for the player
func (c *Console) Warn(text string) {
	fmt.Fprintln(c.out, c.warn.Sprint(text))
}

// Announce prints the final outcome, colored by result
func (c *Console) Announce(o game.Outcome) {
	col := c.push
	switch o.Result {
	case game.Win:
		col = c.win
	case game.Lose:
		col = c.lose
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, col.Sprint(o.String()))
}

// Banner prints the title, centered when the output is a terminal
func (c *Console) Banner() {
	r := lipgloss.NewRenderer(c.out)
	if !c.color {
		r.SetColorProfile(termenv.Ascii)
	} else if r.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.ANSI256)
	}

	style := r.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#1F7A4D")).
		Padding(0, 1).
		Bold(true)

	title := style.Render(bannerText)
	if width := terminalWidth(c.out); width > 0 {
		title = lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
	}

	fmt.Fprintln(c.out, title)
	fmt.Fprintln(c.out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns 0 when w is not a terminal
func terminalWidth(w io.Writer) int {
	if !isTerminal(w) {
		return 0
	}
	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

var _ game.Console = (*Console)(nil)
