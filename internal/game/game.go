package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/hand"
	"github.com/arcanaland/blackjack/internal/player"
)

// DefaultStandOn is the total at which the dealer stops drawing
const DefaultStandOn = 17

// State is a step of the turn state machine
type State int

const (
	Setup State = iota
	Dealt
	PlayerTurn
	DealerTurn
	Resolved
	Done
)

func (s State) String() string {
	switch s {
	case Setup:
		return "setup"
	case Dealt:
		return "dealt"
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case Resolved:
		return "resolved"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Console is the text surface a game talks to
type Console interface {
	// Ask shows prompt and returns the next line of input
	Ask(prompt string) (string, error)
	Show(text string)
	Warn(text string)
}

// Game runs a single session of one player against the dealer
type Game struct {
	console Console
	logger  *log.Logger
	rng     *rand.Rand

	deck    *deck.Deck
	player  *player.Player
	dealer  *player.Dealer
	standOn int
	name    string

	state   State
	outcome Outcome
}

// Option configures a Game
type Option func(*Game)

// WithDeck deals from d instead of a freshly shuffled deck
func WithDeck(d *deck.Deck) Option {
	return func(g *Game) { g.deck = d }
}

// WithRand shuffles the deck built at setup with rng
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithPlayerName skips the name prompt
func WithPlayerName(name string) Option {
	return func(g *Game) { g.name = strings.TrimSpace(name) }
}

// WithStandOn sets the total at which the dealer stands
func WithStandOn(total int) Option {
	return func(g *Game) {
		if total > 0 {
			g.standOn = total
		}
	}
}

// WithLogger sets the debug logger
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a game in the Setup state
func New(console Console, opts ...Option) *Game {
	g := &Game{
		console: console,
		logger:  log.New(io.Discard),
		standOn: DefaultStandOn,
		state:   Setup,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State returns the current state
func (g *Game) State() State { return g.state }

// Player returns the player, or nil before setup
func (g *Game) Player() *player.Player { return g.player }

// Dealer returns the dealer, or nil before setup
func (g *Game) Dealer() *player.Dealer { return g.dealer }

// Deck returns the deck in play, or nil before setup
func (g *Game) Deck() *deck.Deck { return g.deck }

// Run drives the state machine until the game is decided and returns how it
// ended. A blackjack or bust at any checkpoint ends the game immediately.
func (g *Game) Run() (Outcome, error) {
	for g.state != Done {
		var err error
		switch g.state {
		case Setup:
			err = g.setup()
		case Dealt:
			g.showFlop()
		case PlayerTurn:
			err = g.playerTurn()
		case DealerTurn:
			err = g.dealerTurn()
		case Resolved:
			g.resolve()
		default:
			err = fmt.Errorf("unknown state %s", g.state)
		}
		if err != nil {
			g.logger.Error("Game stopped", "state", g.state, "error", err)
			return Outcome{}, err
		}
	}

	g.logger.Info("Game over",
		"result", g.outcome.Result,
		"reason", g.outcome.Reason,
		"player_total", g.outcome.PlayerTotal,
		"dealer_total", g.outcome.DealerTotal)
	return g.outcome, nil
}

func (g *Game) transition(next State) {
	g.logger.Debug("State transition", "from", g.state, "to", next)
	g.state = next
}

func (g *Game) setup() error {
	if g.deck == nil {
		g.deck = deck.New(g.rng)
	}
	g.dealer = player.NewDealer()
	g.player = player.NewPlayer("")

	name := g.name
	for name == "" {
		line, err := g.console.Ask("Please type your name:")
		if err != nil {
			return fmt.Errorf("reading player name: %w", err)
		}
		name = strings.TrimSpace(line)
	}
	g.player.SetName(name)

	// Player, dealer, player, dealer
	for i := 0; i < 2; i++ {
		if err := g.deal(&g.player.Hand, g.player.Name); err != nil {
			return err
		}
		if err := g.deal(&g.dealer.Hand, player.DealerName); err != nil {
			return err
		}
	}

	g.transition(Dealt)
	return nil
}

func (g *Game) showFlop() {
	g.console.Show(g.player.RenderFlop())
	g.console.Show(g.dealer.RenderFlop())

	if g.checkpoint(player.PartyPlayer) {
		return
	}
	g.transition(PlayerTurn)
}

func (g *Game) playerTurn() error {
	name := g.player.Name
	g.console.Show(fmt.Sprintf("It's %s's turn.", name))

	for !g.player.IsBusted() {
		line, err := g.console.Ask("What would you like to do? 1) hit 2) stand")
		if err != nil {
			return fmt.Errorf("reading turn choice: %w", err)
		}

		choice, err := ParseChoice(line)
		if errors.Is(err, ErrInvalidInput) {
			g.logger.Debug("Rejected turn input", "input", line)
			g.console.Warn("Error: you must enter 1 or 2")
			continue
		}

		if choice == Stand {
			g.console.Show(fmt.Sprintf("%s chose to stand.", name))
			break
		}

		c, err := g.draw()
		if err != nil {
			return err
		}
		g.player.Add(c)
		g.console.Show(fmt.Sprintf("Dealing card to %s: %s", name, c))
		g.console.Show(fmt.Sprintf("%s's total is now: %d", name, g.player.Total()))

		if g.checkpoint(player.PartyPlayer) {
			return nil
		}
	}

	g.transition(DealerTurn)
	return nil
}

func (g *Game) dealerTurn() error {
	g.console.Show("Dealer's turn.")
	g.console.Show(g.dealer.RenderHand())

	if g.checkpoint(player.PartyDealer) {
		return nil
	}

	for g.dealer.Total() < g.standOn {
		c, err := g.draw()
		if err != nil {
			return err
		}
		g.dealer.Add(c)
		g.console.Show(fmt.Sprintf("Dealing card to %s: %s", player.DealerName, c))
		g.console.Show(fmt.Sprintf("%s's total is now: %d", player.DealerName, g.dealer.Total()))

		if g.checkpoint(player.PartyDealer) {
			return nil
		}
	}

	g.console.Show(fmt.Sprintf("Dealer stands at %d.", g.dealer.Total()))
	g.transition(Resolved)
	return nil
}

// resolve compares totals once both sides have stood
func (g *Game) resolve() {
	pt, dt := g.player.Total(), g.dealer.Total()

	result := Push
	switch {
	case pt > dt:
		result = Win
	case pt < dt:
		result = Lose
	}

	g.finish(result, ReasonTotals, player.PartyPlayer)
}

// checkpoint ends the game if party has blackjack or has busted. Blackjack
// is checked first.
func (g *Game) checkpoint(party player.Party) bool {
	h := g.handOf(party)
	switch {
	case h.IsBlackjack():
		result := Win
		if party == player.PartyDealer {
			result = Lose
		}
		g.finish(result, ReasonBlackjack, party)
		return true
	case h.IsBusted():
		result := Lose
		if party == player.PartyDealer {
			result = Win
		}
		g.finish(result, ReasonBust, party)
		return true
	}
	return false
}

func (g *Game) finish(result Result, reason Reason, party player.Party) {
	g.outcome = Outcome{
		Result:      result,
		Reason:      reason,
		Party:       party,
		PlayerName:  g.player.Name,
		PlayerTotal: g.player.Total(),
		DealerTotal: g.dealer.Total(),
	}
	g.transition(Done)
}

func (g *Game) handOf(party player.Party) *hand.Hand {
	if party == player.PartyDealer {
		return &g.dealer.Hand
	}
	return &g.player.Hand
}

func (g *Game) deal(h *hand.Hand, to string) error {
	c, err := g.draw()
	if err != nil {
		return err
	}
	h.Add(c)
	g.logger.Debug("Dealt card", "to", to, "card", c)
	return nil
}

func (g *Game) draw() (card.Card, error) {
	c, err := g.deck.Draw()
	if err != nil {
		return card.Card{}, fmt.Errorf("drawing card in %s: %w", g.state, err)
	}
	g.logger.Debug("Drew card", "card", c, "remaining", g.deck.Remaining())
	return c, nil
}
