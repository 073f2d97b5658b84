package game

import (
	"fmt"

	"github.com/arcanaland/blackjack/internal/player"
)

// Result is the end of a game from the player's point of view
type Result int

const (
	Win Result = iota
	Lose
	Push
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Push:
		return "push"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Reason says how the game was decided
type Reason int

const (
	// ReasonBlackjack means a party reached exactly 21 at a checkpoint
	ReasonBlackjack Reason = iota
	// ReasonBust means a party went over 21 at a checkpoint
	ReasonBust
	// ReasonTotals means both parties stood and totals were compared
	ReasonTotals
)

func (r Reason) String() string {
	switch r {
	case ReasonBlackjack:
		return "blackjack"
	case ReasonBust:
		return "bust"
	case ReasonTotals:
		return "totals"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Outcome is the terminal state of a game. Party is the side that hit
// blackjack or busted; it is unused when Reason is ReasonTotals.
type Outcome struct {
	Result      Result
	Reason      Reason
	Party       player.Party
	PlayerName  string
	PlayerTotal int
	DealerTotal int
}

// String returns the message shown when the game ends
func (o Outcome) String() string {
	name := o.PlayerName
	switch o.Reason {
	case ReasonBlackjack:
		if o.Party == player.PartyDealer {
			return fmt.Sprintf("Sorry, dealer hit blackjack. %s loses.", name)
		}
		return fmt.Sprintf("Congratulations, you hit blackjack! %s wins!", name)
	case ReasonBust:
		if o.Party == player.PartyDealer {
			return fmt.Sprintf("Congratulations, dealer busted with %d. %s wins!", o.DealerTotal, name)
		}
		return fmt.Sprintf("Sorry, %s busted with %d. %s loses.", name, o.PlayerTotal, name)
	}

	switch o.Result {
	case Win:
		return fmt.Sprintf("%s wins with %d against the dealer's %d!", name, o.PlayerTotal, o.DealerTotal)
	case Lose:
		return fmt.Sprintf("%s loses with %d against the dealer's %d.", name, o.PlayerTotal, o.DealerTotal)
	default:
		return fmt.Sprintf("Push: %s and the dealer both have %d.", name, o.PlayerTotal)
	}
}
