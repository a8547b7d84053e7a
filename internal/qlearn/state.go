package qlearn

import (
	"fmt"

	"github.com/lox/blackjackrl/internal/game"
)

// Action is a player decision.
type Action uint8

const (
	Stand Action = iota
	Hit
)

// NumActions is the width of every Q-table entry.
const NumActions = 2

// Actions lists every action in index order.
var Actions = [NumActions]Action{Stand, Hit}

func (a Action) String() string {
	switch a {
	case Stand:
		return "STAND"
	case Hit:
		return "HIT"
	default:
		return "UNKNOWN"
	}
}

// MinPlayerTotal is the smallest encoded player total.
const MinPlayerTotal = 4

// State is the agent's view of a hand: the player's total, the value of
// the dealer's upcard (Ace counts as 11) and whether the player holds a
// usable ace.
type State struct {
	PlayerTotal  int
	DealerUpcard int
	UsableAce    int
}

// String renders the state as a tuple, e.g. "(17, 7, 0)". This is the key
// format of exported Q-tables.
func (s State) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.PlayerTotal, s.DealerUpcard, s.UsableAce)
}

// ParseState parses the tuple form produced by String.
func ParseState(s string) (State, error) {
	var st State
	n, err := fmt.Sscanf(s, "(%d, %d, %d)", &st.PlayerTotal, &st.DealerUpcard, &st.UsableAce)
	if err != nil || n != 3 {
		return State{}, fmt.Errorf("invalid state key %q", s)
	}
	if st.UsableAce != 0 && st.UsableAce != 1 {
		return State{}, fmt.Errorf("invalid usable ace flag in %q", s)
	}
	return st, nil
}

// EncodeState maps the player's hand and the dealer's upcard to a State.
// Totals below 12 collapse upward to at least MinPlayerTotal and totals over
// 21 are capped, though bust hands are terminal and never encoded by the
// trainer.
func EncodeState(player, dealer *game.Hand) State {
	upcard := 0
	if c, ok := dealer.First(); ok {
		if c.IsAce() {
			upcard = 11
		} else {
			upcard = c.Value()
		}
	}

	total := player.Total()
	switch {
	case total < 12:
		total = max(total, MinPlayerTotal)
	case total > game.Blackjack:
		total = game.Blackjack
	}

	usable := 0
	if player.HasUsableAce() {
		usable = 1
	}

	return State{PlayerTotal: total, DealerUpcard: upcard, UsableAce: usable}
}
