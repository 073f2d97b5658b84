package deck

import (
	"errors"
	"math/rand"
	"time"

	"github.com/arcanaland/blackjack/internal/card"
)

// ErrEmptyDeck is returned when drawing from a deck with no cards left
var ErrEmptyDeck = errors.New("deck is empty")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a single standard deck. Cards are drawn from the front.
type Deck struct {
	cards []card.Card
	next  int
	rng   *rand.Rand
}

// New creates a full deck and shuffles it with rng. A nil rng falls back to a
// time-seeded source.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d := &Deck{
		cards: make([]card.Card, 0, Size),
		rng:   rng,
	}

	// Suit-major, rank-minor
	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			d.cards = append(d.cards, card.MustNew(suit, rank))
		}
	}

	d.Shuffle()
	return d
}

// NewOrdered creates an unshuffled deck that deals cards in the given order
func NewOrdered(cards ...card.Card) *Deck {
	d := &Deck{
		cards: make([]card.Card, len(cards)),
		rng:   rand.New(rand.NewSource(1)),
	}
	copy(d.cards, cards)
	return d
}

// Shuffle permutes the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	rest := d.cards[d.next:]
	for i := len(rest) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		rest[i], rest[j] = rest[j], rest[i]
	}
}

// Draw removes and returns the top card
func (d *Deck) Draw() (card.Card, error) {
	if d.next >= len(d.cards) {
		return card.Card{}, ErrEmptyDeck
	}
	c := d.cards[d.next]
	d.next++
	return c, nil
}

// Remaining returns the number of cards left to draw
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// IsEmpty reports whether every card has been drawn
func (d *Deck) IsEmpty() bool {
	return d.Remaining() == 0
}
