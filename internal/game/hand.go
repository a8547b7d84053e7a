package game

import (
	"strconv"
	"strings"

	"github.com/lox/blackjackrl/internal/deck"
)

// Bust threshold and the dealer's standing total.
const (
	Blackjack     = 21
	DealerStandOn = 17
)

// Hand accumulates cards and keeps its best blackjack total. Aces enter as 11
// and are downgraded to 1, one at a time, while the total exceeds 21.
type Hand struct {
	cards    []deck.Card
	total    int
	softAces int
}

// NewHand returns a hand holding cards, added in order.
func NewHand(cards ...deck.Card) *Hand {
	h := &Hand{cards: make([]deck.Card, 0, max(len(cards), 4))}
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

// AddCard appends a card and rescores the hand.
func (h *Hand) AddCard(c deck.Card) {
	h.cards = append(h.cards, c)
	if c.IsAce() {
		h.softAces++
		h.total += 11
	} else {
		h.total += c.Value()
	}
	for h.total > Blackjack && h.softAces > 0 {
		h.total -= 10
		h.softAces--
	}
}

// Total returns the best legal value of the hand.
func (h *Hand) Total() int {
	return h.total
}

// SoftAces returns how many aces are still counted as 11.
func (h *Hand) SoftAces() int {
	return h.softAces
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in deal order.
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// First returns the first card dealt into the hand.
func (h *Hand) First() (deck.Card, bool) {
	if len(h.cards) == 0 {
		return deck.Card{}, false
	}
	return h.cards[0], true
}

// IsBlackjack reports a natural: exactly two cards totalling 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.total == Blackjack
}

// IsBust reports a total over 21.
func (h *Hand) IsBust() bool {
	return h.total > Blackjack
}

// HasUsableAce reports whether at least one ace still counts as 11.
func (h *Hand) HasUsableAce() bool {
	return h.softAces > 0
}

// String renders the hand as "AH 9C (20 soft)".
func (h *Hand) String() string {
	var b strings.Builder
	for i, c := range h.cards {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteString(" (")
	b.WriteString(strconv.Itoa(h.total))
	if h.softAces > 0 {
		b.WriteString(" soft")
	}
	b.WriteByte(')')
	return b.String()
}
