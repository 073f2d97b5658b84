package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned for a turn choice that is neither hit nor stand
var ErrInvalidInput = errors.New("invalid input")

// Choice is the player's decision on their turn
type Choice int

const (
	Hit Choice = iota + 1
	Stand
)

func (c Choice) String() string {
	switch c {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return fmt.Sprintf("Choice(%d)", int(c))
	}
}

// ParseChoice accepts "1" for hit and "2" for stand
func ParseChoice(s string) (Choice, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return Hit, nil
	case "2":
		return Stand, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
}
