package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjackrl/internal/deck"
)

// stacked builds a game dealing cards in the given order: player, dealer,
// player, dealer, then any draws.
func stacked(t *testing.T, cards string, opts ...Option) *Game {
	t.Helper()
	d := deck.Stacked(99, 1, deck.MustParseCards(cards)...)
	return New(0, append([]Option{WithDeck(d)}, opts...)...)
}

func TestStartHandNaturals(t *testing.T) {
	tests := []struct {
		name      string
		cards     string
		over      bool
		outcome   Outcome
		blackjack bool
	}{
		{name: "player natural", cards: "AH 5C KS 7D", over: true, outcome: Win, blackjack: true},
		{name: "dealer natural", cards: "10H AC 6S QD", over: true, outcome: Loss},
		{name: "both natural", cards: "AH AC KS QD", over: true, outcome: Push},
		{name: "no naturals", cards: "10H 7C 6S 9D", over: false, outcome: Undetermined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := stacked(t, tt.cards)
			require.NoError(t, g.StartHand())
			assert.Equal(t, tt.over, g.IsOver())
			assert.Equal(t, tt.outcome, g.Outcome())
			assert.Equal(t, tt.blackjack, g.PlayerBlackjack())
			assert.Equal(t, 2, g.Player().Len())
			assert.Equal(t, 2, g.Dealer().Len())
		})
	}
}

func TestDealOrder(t *testing.T) {
	g := stacked(t, "2H 3C 4S 5D")
	require.NoError(t, g.StartHand())
	assert.Equal(t, deck.MustParseCards("2H 4S"), g.Player().Cards())
	assert.Equal(t, deck.MustParseCards("3C 5D"), g.Dealer().Cards())
	assert.Equal(t, PhasePlayerTurn, g.Phase())
}

func TestPlayerHitBust(t *testing.T) {
	g := stacked(t, "10H 7C 6S 9D KC")
	require.NoError(t, g.StartHand())
	require.Equal(t, 16, g.Player().Total())

	require.NoError(t, g.PlayerHit())
	assert.True(t, g.IsOver())
	assert.Equal(t, Loss, g.Outcome())
	assert.Equal(t, 26, g.Player().Total())
	assert.Equal(t, 2, g.Dealer().Len(), "dealer does not draw after a player bust")
}

func TestPlayerHitStaysInTurn(t *testing.T) {
	g := stacked(t, "2H 7C 3S 9D 4C")
	require.NoError(t, g.StartHand())
	require.NoError(t, g.PlayerHit())
	assert.False(t, g.IsOver())
	assert.Equal(t, PhasePlayerTurn, g.Phase())
	assert.Equal(t, 9, g.Player().Total())
}

func TestTwentyOneAfterHitIsNotBlackjack(t *testing.T) {
	// player 5+6, hits a king for 21; dealer 10+8 stands on 18
	g := stacked(t, "5H 10C 6S 8D KC")
	require.NoError(t, g.StartHand())
	require.NoError(t, g.PlayerHit())
	require.NoError(t, g.PlayerStand())
	assert.Equal(t, Win, g.Outcome())
	assert.False(t, g.PlayerBlackjack())
}

func TestDealerResolution(t *testing.T) {
	tests := []struct {
		name        string
		cards       string
		outcome     Outcome
		dealerTotal int
		dealerCards int
	}{
		{name: "dealer busts", cards: "10H 10C 8S 6D KS", outcome: Win, dealerTotal: 26, dealerCards: 3},
		{name: "player higher", cards: "10H 10C 9S 7D", outcome: Win, dealerTotal: 17, dealerCards: 2},
		{name: "dealer higher", cards: "10H 10C 7S 9D", outcome: Loss, dealerTotal: 19, dealerCards: 2},
		{name: "push", cards: "10H 10C 8S 8D", outcome: Push, dealerTotal: 18, dealerCards: 2},
		{name: "dealer draws to seventeen", cards: "10H 10C 8S 2D 5S", outcome: Win, dealerTotal: 17, dealerCards: 3},
		{name: "dealer draws several", cards: "10H 2C 7S 3D 2S 4H 6C", outcome: Push, dealerTotal: 17, dealerCards: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := stacked(t, tt.cards)
			require.NoError(t, g.StartHand())
			require.NoError(t, g.PlayerStand())
			assert.True(t, g.IsOver())
			assert.Equal(t, tt.outcome, g.Outcome())
			assert.Equal(t, tt.dealerTotal, g.Dealer().Total())
			assert.Equal(t, tt.dealerCards, g.Dealer().Len())
		})
	}
}

func TestDealerStandsOnSoftSeventeen(t *testing.T) {
	// dealer A+6 is a soft 17 and must not draw
	g := stacked(t, "10H AC 8S 6D 2C")
	require.NoError(t, g.StartHand())
	require.True(t, g.Dealer().HasUsableAce())
	require.NoError(t, g.PlayerStand())

	assert.Equal(t, 2, g.Dealer().Len())
	assert.Equal(t, 17, g.Dealer().Total())
	assert.Equal(t, Win, g.Outcome())
}

func TestDealerSoftHandKeepsDrawingBelowSeventeen(t *testing.T) {
	// dealer A+5 = soft 16, draws 10 -> hard 16, draws 2 -> 18
	g := stacked(t, "10H AC 7S 5D 10C 2S")
	require.NoError(t, g.StartHand())
	require.NoError(t, g.PlayerStand())
	assert.Equal(t, 18, g.Dealer().Total())
	assert.Equal(t, 4, g.Dealer().Len())
	assert.Equal(t, Loss, g.Outcome())
}

func TestInvalidPhase(t *testing.T) {
	g := stacked(t, "10H 7C 6S 9D KC")
	assert.ErrorIs(t, g.PlayerHit(), ErrInvalidPhase)
	assert.ErrorIs(t, g.PlayerStand(), ErrInvalidPhase)

	require.NoError(t, g.StartHand())
	assert.ErrorIs(t, g.StartHand(), ErrInvalidPhase)

	require.NoError(t, g.PlayerHit())
	require.True(t, g.IsOver())

	err := g.PlayerHit()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPhase))
	assert.ErrorIs(t, g.PlayerStand(), ErrInvalidPhase)
	assert.True(t, g.IsOver(), "resolution is permanent")
	assert.Equal(t, Loss, g.Outcome())
}

func TestEventsExposeDealerTurn(t *testing.T) {
	var events []Event
	g := stacked(t, "10H 10C 8S 2D 5S", WithListener(func(e Event) {
		events = append(events, e)
	}))
	require.NoError(t, g.StartHand())
	require.NoError(t, g.PlayerStand())

	require.Len(t, events, 4)
	assert.Equal(t, EventTypeHandStart, events[0].Type)
	assert.Equal(t, EventTypePlayerStand, events[1].Type)
	assert.Equal(t, PhaseDealerTurn, events[1].Phase)

	draw := events[2]
	assert.Equal(t, EventTypeDealerDraw, draw.Type)
	assert.Equal(t, PhaseDealerTurn, draw.Phase)
	assert.Equal(t, deck.NewCard(deck.Five, deck.Spades), draw.Card)
	assert.Equal(t, 17, draw.DealerTotal)

	end := events[3]
	assert.Equal(t, EventTypeHandEnd, end.Type)
	assert.Equal(t, PhaseResolved, end.Phase)
	assert.Equal(t, Win, end.Outcome)
	assert.Equal(t, 18, end.PlayerTotal)
}

func TestSeededGamesAreReproducible(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		a, b := New(seed), New(seed)
		require.NoError(t, a.StartHand())
		require.NoError(t, b.StartHand())
		for !a.IsOver() {
			require.NoError(t, a.PlayerStand())
			require.NoError(t, b.PlayerStand())
		}
		require.Equal(t, a.Outcome(), b.Outcome())
		require.Equal(t, a.Player().Cards(), b.Player().Cards())
		require.Equal(t, a.Dealer().Cards(), b.Dealer().Cards())
	}
}

func TestEveryGameResolves(t *testing.T) {
	for seed := int64(0); seed < 1000; seed++ {
		g := New(seed, WithNumDecks(2))
		require.NoError(t, g.StartHand())
		for !g.IsOver() {
			if g.Player().Total() < 15 {
				require.NoError(t, g.PlayerHit())
			} else {
				require.NoError(t, g.PlayerStand())
			}
		}
		require.NotEqual(t, Undetermined, g.Outcome())
		if g.Dealer().Len() > 2 {
			require.True(t, g.Dealer().Total() >= DealerStandOn)
		}
	}
}
