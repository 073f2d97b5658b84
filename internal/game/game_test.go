package game

import (
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/player"
)

// scriptedConsole answers prompts from a fixed list and records everything shown
type scriptedConsole struct {
	answers []string
	prompts []string
	shown   []string
	warned  []string
}

func (s *scriptedConsole) Ask(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scriptedConsole) Show(text string) { s.shown = append(s.shown, text) }
func (s *scriptedConsole) Warn(text string) { s.warned = append(s.warned, text) }

func (s *scriptedConsole) transcript() string {
	return strings.Join(s.shown, "\n")
}

func c(s card.Suit, r card.Rank) card.Card {
	return card.MustNew(s, r)
}

// stacked builds a deck that deals player, dealer, player, dealer, then extra
func stacked(p1, d1, p2, d2 card.Card, extra ...card.Card) *deck.Deck {
	return deck.NewOrdered(append([]card.Card{p1, d1, p2, d2}, extra...)...)
}

func newTestGame(console *scriptedConsole, d *deck.Deck, opts ...Option) *Game {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
	opts = append([]Option{WithDeck(d), WithPlayerName("Alice"), WithLogger(logger)}, opts...)
	return New(console, opts...)
}

func TestDealerHitsOnSixteen(t *testing.T) {
	console := &scriptedConsole{answers: []string{"2"}}
	d := stacked(
		c(card.Hearts, card.Ten), c(card.Clubs, card.Ten),
		c(card.Hearts, card.Nine), c(card.Clubs, card.Six),
		c(card.Spades, card.Two), c(card.Spades, card.Five),
	)
	g := newTestGame(console, d)

	outcome, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, 3, g.Dealer().Len(), "dealer draws exactly one card")
	assert.Equal(t, 1, d.Remaining())
	assert.Equal(t, 18, outcome.DealerTotal)
	assert.Equal(t, 19, outcome.PlayerTotal)
	assert.Equal(t, Win, outcome.Result)
	assert.Equal(t, ReasonTotals, outcome.Reason)
	assert.Equal(t, Done, g.State())
}

func TestDealerStandsOnSeventeen(t *testing.T) {
	console := &scriptedConsole{answers: []string{"2"}}
	d := stacked(
		c(card.Hearts, card.Ten), c(card.Clubs, card.Ten),
		c(card.Hearts, card.Eight), c(card.Clubs, card.Seven),
		c(card.Spades, card.Two),
	)
	g := newTestGame(console, d)

	outcome, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, 2, g.Dealer().Len(), "dealer draws nothing at 17")
	assert.Equal(t, 1, d.Remaining())
	assert.Equal(t, Win, outcome.Result)
	assert.Contains(t, console.transcript(), "Dealer stands at 17.")
}

func TestStandOnOption(t *testing.T) {
	console := &scriptedConsole{answers: []string{"2"}}
	d := stacked(
		c(card.Hearts, card.Ten), c(card.Clubs, card.Ten),
		c(card.Hearts, card.Eight), c(card.Clubs, card.Seven),
		c(card.Spades, card.Two),
	)
	g := newTestGame(console, d, WithStandOn(18))

	outcome, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, 3, g.Dealer().Len())
	assert.Equal(t, 19, outcome.DealerTotal)
	assert.Equal(t, Lose, outcome.Result)
}

func TestResolveByTotals(t *testing.T) {
	tests := []struct {
		name   string
		cards  [4]card.Card
		result Result
	}{
		{
			name:   "20 beats 18",
			cards:  [4]card.Card{c(card.Hearts, card.King), c(card.Clubs, card.Ten), c(card.Hearts, card.Queen), c(card.Clubs, card.Eight)},
			result: Win,
		},
		{
			name:   "18 against 18 is a push",
			cards:  [4]card.Card{c(card.Hearts, card.Ten), c(card.Clubs, card.Nine), c(card.Hearts, card.Eight), c(card.Spades, card.Nine)},
			result: Push,
		},
		{
			name:   "17 loses to 19",
			cards:  [4]card.Card{c(card.Hearts, card.Ten), c(card.Clubs, card.Ten), c(card.Hearts, card.Seven), c(card.Clubs, card.Nine)},
			result: Lose,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := &scriptedConsole{answers: []string{"2"}}
			g := newTestGame(console, stacked(tt.cards[0], tt.cards[1], tt.cards[2], tt.cards[3]))

			outcome, err := g.Run()
			require.NoError(t, err)
			assert.Equal(t, tt.result, outcome.Result)
			assert.Equal(t, ReasonTotals, outcome.Reason)
			assert.Equal(t, "Alice", outcome.PlayerName)
		})
	}
}

func TestInvalidInputReprompts(t *testing.T) {
	console := &scriptedConsole{answers: []string{"3", "hit", "", "2"}}
	d := stacked(
		c(card.Hearts, card.Ten), c(card.Clubs, card.Ten),
		c(card.Hearts, card.Eight), c(card.Clubs, card.Seven),
		c(card.Spades, card.Two),
	)
	g := newTestGame(console, d)

	outcome, err := g.Run()
	require.NoError(t, err)

	assert.Len(t, console.prompts, 4)
	assert.Len(t, console.warned, 3)
	assert.Equal(t, "Error: you must enter 1 or 2", console.warned[0])
	assert.Equal(t, 2, g.Player().Len())
	assert.Equal(t, 18, outcome.PlayerTotal)
	assert.Equal(t, 1, d.Remaining())
}

func TestPlayerBlackjackOnDeal(t *testing.T) {
	console := &scriptedConsole{}
	d := stacked(
		c(card.Clubs, card.Ten), c(card.Hearts, card.Five),
		c(card.Spades, card.Ace), c(card.Hearts, card.Six),
	)
	g := newTestGame(console, d)

	outcome, err := g.Run()
	require.NoError(t, err)

	assert.Empty(t, console.prompts, "no turn is played after a dealt blackjack")
	assert.Equal(t, Win, outcome.Result)
	assert.Equal(t, ReasonBlackjack, outcome.Reason)
	assert.Equal(t, player.PartyPlayer, outcome.Party)
	assert.Equal(t, 21, outcome.PlayerTotal)
}

func TestPlayerHitsToBlackjack(t *testing.T) {
	console := &scriptedConsole{answers: []string{"1"}}
	d := stacked(
		c(card.Clubs, card.Five), c(card.Hearts, card.Ten),
		c(card.Spades, card.Six), c(card.Hearts, card.Nine),
		c(card.Diamonds, card.Queen),
	)
	g := newTestGame(console, d)

	outcome, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, Win, outcome.Result)
	assert.Equal(t, ReasonBlackjack, outcome.Reason)
	assert.Equal(t, 2, g.Dealer().Len(), "dealer never plays")
	assert.Contains(t, console.transcript(), "Dealing card to Alice: The Queen of Diamonds")
	assert.Contains(t, console.transcript(), "Alice's total is now: 21")
}

func TestPlayerBusts(t *testing.T) {
	console := &scriptedConsole{answers: []string{"1"}}
	d := stacked(
		c(card.Clubs, card.King), c(card.Hearts, card.Ten),
		c(card.Spades, card.Queen), c(card.Hearts, card.Seven),
		c(card.Diamonds, card.Five),
	)
	g := newTestGame(console, d)

	outcome, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, Lose, outcome.Result)
	assert.Equal(t, ReasonBust, outcome.Reason)
	assert.Equal(t, player.PartyPlayer, outcome.Party)
	assert.Equal(t, 25, outcome.PlayerTotal)
	assert.Len(t, console.prompts, 1)
}

func TestDealerBlackjack(t *testing.T) {
	console := &scriptedConsole{answers: []string{"2"}}
	d := stacked(
		c(card.Clubs, card.Ten), c(card.Hearts, card.Ace),
		c(card.Spades, card.Eight), c(card.Hearts, card.King),
	)
	g := newTestGame(console, d)

	outcome, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, Lose, outcome.Result)
	assert.Equal(t, ReasonBlackjack, outcome.Reason)
	assert.Equal(t, player.PartyDealer, outcome.Party)
}

func TestDealerBusts(t *testing.T) {
	console := &scriptedConsole{answers: []string{"2"}}
	d := stacked(
		c(card.Clubs, card.Ten), c(card.Hearts, card.Ten),
		c(card.Spades, card.Eight), c(card.Hearts, card.Six),
		c(card.Diamonds, card.King),
	)
	g := newTestGame(console, d)

	outcome, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, Win, outcome.Result)
	assert.Equal(t, ReasonBust, outcome.Reason)
	assert.Equal(t, player.PartyDealer, outcome.Party)
	assert.Equal(t, 26, outcome.DealerTotal)
}

func TestFlopHidesDealerCard(t *testing.T) {
	console := &scriptedConsole{answers: []string{"2"}}
	d := stacked(
		c(card.Clubs, card.Ten), c(card.Hearts, card.Jack),
		c(card.Spades, card.Eight), c(card.Diamonds, card.Seven),
	)
	g := newTestGame(console, d)

	_, err := g.Run()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(console.shown), 2)
	assert.Contains(t, console.shown[0], "==== Alice's Hand ====")
	assert.Contains(t, console.shown[1], "First card is hidden")
	assert.Contains(t, console.shown[1], "Second card is The 7 of Diamonds")
	assert.NotContains(t, console.shown[1], "Jack")
}

func TestEmptyDeckIsReported(t *testing.T) {
	console := &scriptedConsole{}
	g := newTestGame(console, deck.NewOrdered(c(card.Clubs, card.Two), c(card.Clubs, card.Three)))

	_, err := g.Run()
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)
}

func TestEmptyDeckOnHit(t *testing.T) {
	console := &scriptedConsole{answers: []string{"1"}}
	d := stacked(
		c(card.Clubs, card.Two), c(card.Hearts, card.Ten),
		c(card.Spades, card.Three), c(card.Hearts, card.Seven),
	)
	g := newTestGame(console, d)

	_, err := g.Run()
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)
	assert.Equal(t, 2, g.Player().Len())
}

func TestClosedInputIsReported(t *testing.T) {
	console := &scriptedConsole{}
	d := stacked(
		c(card.Clubs, card.Two), c(card.Hearts, card.Ten),
		c(card.Spades, card.Three), c(card.Hearts, card.Seven),
	)
	g := newTestGame(console, d)

	_, err := g.Run()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, PlayerTurn, g.State())
}

func TestNamePrompt(t *testing.T) {
	console := &scriptedConsole{answers: []string{"", "  Bob ", "2"}}
	d := stacked(
		c(card.Clubs, card.Ten), c(card.Hearts, card.Ten),
		c(card.Spades, card.Eight), c(card.Hearts, card.Seven),
	)
	g := New(console, WithDeck(d))

	outcome, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, "Bob", g.Player().Name)
	assert.Equal(t, "Bob", outcome.PlayerName)
	assert.Equal(t, "Please type your name:", console.prompts[0])
	assert.Equal(t, "Please type your name:", console.prompts[1])
}

func TestSeededGameAlwaysFinishes(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		answers := make([]string, 30)
		for i := range answers {
			answers[i] = "1"
			if i%3 == 2 {
				answers[i] = "2"
			}
		}
		console := &scriptedConsole{answers: answers}
		g := New(console, WithPlayerName("Alice"), WithRand(rand.New(rand.NewSource(seed))))

		outcome, err := g.Run()
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, Done, g.State())

		used := g.Player().Len() + g.Dealer().Len()
		assert.Equal(t, deck.Size-used, g.Deck().Remaining())
		assert.NotEmpty(t, outcome.String())
	}
}
