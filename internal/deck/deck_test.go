package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckIsCompleteAndShuffled(t *testing.T) {
	d := New(42, 1)
	require.Equal(t, CardsPerDeck, d.Remaining())

	seen := make(map[Card]int)
	var order []Card
	for d.Remaining() > 0 {
		c := d.Deal()
		seen[c]++
		order = append(order, c)
	}
	require.Len(t, seen, CardsPerDeck)
	for c, n := range seen {
		require.Equalf(t, 1, n, "card %s dealt %d times", c, n)
	}

	unshuffled := 0
	for i, c := range order {
		// fill order dealt from the end would be K♠ downwards
		want := NewCard(King-Rank(i%13), Suits[3-i/13])
		if c == want {
			unshuffled++
		}
	}
	assert.Less(t, unshuffled, CardsPerDeck, "deck should be shuffled")
}

func TestDeckSameSeedSameOrder(t *testing.T) {
	a := New(7, 2)
	b := New(7, 2)
	for range 2 * CardsPerDeck {
		require.Equal(t, a.Deal(), b.Deal())
	}
}

func TestDeckDifferentSeedsDiffer(t *testing.T) {
	a := New(1, 1)
	b := New(2, 1)
	same := 0
	for range CardsPerDeck {
		if a.Deal() == b.Deal() {
			same++
		}
	}
	assert.Less(t, same, CardsPerDeck)
}

func TestDeckMultipleSets(t *testing.T) {
	d := New(3, 6)
	assert.Equal(t, 6*CardsPerDeck, d.Remaining())
	assert.Equal(t, 6, d.NumDecks())

	aces := 0
	for d.Remaining() > 0 {
		if d.Deal().IsAce() {
			aces++
		}
	}
	assert.Equal(t, 24, aces)
}

func TestDeckRebuildsWhenEmpty(t *testing.T) {
	d := New(11, 1)
	for range CardsPerDeck {
		d.Deal()
	}
	require.Equal(t, 0, d.Remaining())
	require.Equal(t, 0, d.Reshuffles())

	d.Deal()
	assert.Equal(t, CardsPerDeck-1, d.Remaining())
	assert.Equal(t, 1, d.Reshuffles())
}

func TestStackedDealsInOrder(t *testing.T) {
	order := MustParseCards("AH 5C KS 7D")
	d := Stacked(1, 1, order...)
	for _, want := range order {
		assert.Equal(t, want, d.Deal())
	}
	assert.Equal(t, 0, d.Remaining())

	d.Deal()
	assert.Equal(t, CardsPerDeck-1, d.Remaining())
	assert.Equal(t, 1, d.Reshuffles())
}

func TestNumDecksFloor(t *testing.T) {
	d := New(1, 0)
	assert.Equal(t, 1, d.NumDecks())
	assert.Equal(t, CardsPerDeck, d.Remaining())
}
