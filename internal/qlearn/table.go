package qlearn

import (
	"cmp"
	"slices"
)

// Values holds the action values of one state, indexed by Action.
type Values [NumActions]float64

// Best returns the greedy action. Ties resolve to Stand.
func (v Values) Best() Action {
	if v[Hit] > v[Stand] {
		return Hit
	}
	return Stand
}

// Max returns the largest action value.
func (v Values) Max() float64 {
	return max(v[Stand], v[Hit])
}

// Entry is a state paired with its action values.
type Entry struct {
	State  State
	Values Values
}

// QTable is a sparse table of action values. Entries are created on first
// reference through Get. It is not safe for concurrent mutation; concurrent
// Lookup calls are fine once writers have stopped.
type QTable struct {
	entries map[State]*Values
}

// NewQTable returns an empty table.
func NewQTable() *QTable {
	return &QTable{entries: make(map[State]*Values)}
}

// Get returns the values for s, inserting a zero vector if s is new.
func (t *QTable) Get(s State) *Values {
	if v, ok := t.entries[s]; ok {
		return v
	}
	v := &Values{}
	t.entries[s] = v
	return v
}

// Lookup returns a copy of the values for s without inserting.
func (t *QTable) Lookup(s State) (Values, bool) {
	v, ok := t.entries[s]
	if !ok {
		return Values{}, false
	}
	return *v, true
}

// Set overwrites the values for s.
func (t *QTable) Set(s State, v Values) {
	*t.Get(s) = v
}

// Len returns the number of states referenced so far.
func (t *QTable) Len() int {
	return len(t.entries)
}

// Clear drops every entry.
func (t *QTable) Clear() {
	clear(t.entries)
}

// Entries returns a copy of the table ordered by player total, dealer upcard
// and usable ace.
func (t *QTable) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for s, v := range t.entries {
		out = append(out, Entry{State: s, Values: *v})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.State.PlayerTotal, b.State.PlayerTotal),
			cmp.Compare(a.State.DealerUpcard, b.State.DealerUpcard),
			cmp.Compare(a.State.UsableAce, b.State.UsableAce),
		)
	})
	return out
}
