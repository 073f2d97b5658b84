package hand

import (
	"fmt"
	"strings"

	"github.com/arcanaland/blackjack/internal/card"
)

// Blackjack is the best possible total
const Blackjack = 21

// Hand is an append-only sequence of cards
type Hand struct {
	cards []card.Card
}

// Add appends a card to the end of the hand
func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in the order they were added
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Total returns the blackjack value of the hand. Every ace starts at 11 and
// is demoted to 1, one at a time, only while the total is over 21.
func (h *Hand) Total() int {
	total := 0
	aces := 0
	for _, c := range h.cards {
		total += c.Rank().Value()
		if c.IsAce() {
			aces++
		}
	}

	for total > Blackjack && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsBusted reports whether the total is over 21
func (h *Hand) IsBusted() bool {
	return h.Total() > Blackjack
}

// IsBlackjack reports whether the total is exactly 21
func (h *Hand) IsBlackjack() bool {
	return h.Total() == Blackjack
}

// Render lists every card followed by the total, under a heading for name
func (h *Hand) Render(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "==== %s's Hand ====\n", name)
	for _, c := range h.cards {
		fmt.Fprintf(&b, "=> %s\n", c)
	}
	fmt.Fprintf(&b, "=> Total: %d", h.Total())
	return b.String()
}
