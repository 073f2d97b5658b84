package player

import (
	"fmt"
	"strings"

	"github.com/arcanaland/blackjack/internal/hand"
)

// DefaultName is used until the player enters a name
const DefaultName = "Player 1"

// DealerName is the dealer's fixed display name
const DealerName = "Dealer"

// Party identifies which side of the table something happened to
type Party int

const (
	PartyPlayer Party = iota
	PartyDealer
)

func (p Party) String() string {
	switch p {
	case PartyPlayer:
		return "player"
	case PartyDealer:
		return "dealer"
	default:
		return fmt.Sprintf("Party(%d)", int(p))
	}
}

// Player is the human at the table
type Player struct {
	hand.Hand
	Name string
}

// NewPlayer creates a player with an empty hand
func NewPlayer(name string) *Player {
	if name == "" {
		name = DefaultName
	}
	return &Player{Name: name}
}

// SetName replaces the display name, ignoring blank names
func (p *Player) SetName(name string) {
	if name = strings.TrimSpace(name); name != "" {
		p.Name = name
	}
}

// RenderHand shows every card and the total
func (p *Player) RenderHand() string {
	return p.Render(p.Name)
}

// RenderFlop is the same as the full hand for the player
func (p *Player) RenderFlop() string {
	return p.RenderHand()
}

// Dealer is the house side of the table
type Dealer struct {
	hand.Hand
}

// NewDealer creates a dealer with an empty hand
func NewDealer() *Dealer {
	return &Dealer{}
}

// Name returns the dealer's display name
func (d *Dealer) Name() string {
	return DealerName
}

// RenderHand shows every card and the total
func (d *Dealer) RenderHand() string {
	return d.Render(DealerName)
}

// RenderFlop keeps the first card face down and shows only the second
func (d *Dealer) RenderFlop() string {
	var b strings.Builder
	fmt.Fprintf(&b, "==== %s's Hand ====\n", DealerName)
	b.WriteString("=> First card is hidden")

	cards := d.Cards()
	if len(cards) > 1 {
		fmt.Fprintf(&b, "\n=> Second card is %s", cards[1])
	}
	return b.String()
}
