package card

import (
	"errors"
	"fmt"
)

// ErrInvalidCard is returned when a suit/rank pair is not one of the 52
// canonical combinations.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota + 1
	Diamonds
	Clubs
	Spades
)

// String returns the suit name (e.g., "Hearts")
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Spades
}

// Rank represents a card rank. Number ranks carry their face value.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank as printed on a card ("2".."10", "Jack", ..., "Ace")
func (r Rank) String() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Value returns the raw blackjack value of the rank. Aces count 11 here;
// demoting them to 1 is up to the hand being scored.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack:
		return 10
	default:
		return int(r)
	}
}

// Card represents a playing card
type Card struct {
	suit Suit
	rank Rank
}

// New creates a card, failing with ErrInvalidCard for a non-canonical pair
func New(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() || !rank.Valid() {
		return Card{}, fmt.Errorf("%w: suit=%d rank=%d", ErrInvalidCard, int(suit), int(rank))
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustNew is like New but panics on an invalid pair
func MustNew(suit Suit, rank Rank) Card {
	c, err := New(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Suit() Suit { return c.suit }
func (c Card) Rank() Rank { return c.rank }

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.rank == Ace
}

// String returns the card as display text (e.g., "The 10 of Hearts")
func (c Card) String() string {
	return fmt.Sprintf("The %s of %s", c.rank, c.suit)
}

// Suits returns the suits in deck-building order
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// Ranks returns the ranks in deck-building order
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}
