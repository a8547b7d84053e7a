package results

import "github.com/lox/blackjackrl/internal/qlearn"

// Policy grid bounds. Soft hands start at 12 (A+A); upcards run 2 to 11
// with Ace as 11.
const (
	MinHardTotal = qlearn.MinPlayerTotal
	MinSoftTotal = 12
	MaxTotal     = 21
	MinUpcard    = 2
	MaxUpcard    = 11
)

// Cell is one entry of the greedy policy grid.
type Cell struct {
	Action  qlearn.Action
	Visited bool
	// Margin is Q(best) - Q(other); small margins mean the agent is unsure.
	Margin float64
}

// Policy is the greedy action per (total, upcard) for hard and soft hands.
type Policy struct {
	Hard [MaxTotal + 1][MaxUpcard + 1]Cell
	Soft [MaxTotal + 1][MaxUpcard + 1]Cell
}

// NewPolicy derives the greedy policy from table.
func NewPolicy(table *qlearn.QTable) *Policy {
	p := &Policy{}
	for _, e := range table.Entries() {
		s := e.State
		if s.PlayerTotal < MinHardTotal || s.PlayerTotal > MaxTotal ||
			s.DealerUpcard < MinUpcard || s.DealerUpcard > MaxUpcard {
			continue
		}
		best := e.Values.Best()
		cell := Cell{
			Action:  best,
			Visited: true,
			Margin:  e.Values[best] - e.Values[1-best],
		}
		if s.UsableAce == 1 {
			p.Soft[s.PlayerTotal][s.DealerUpcard] = cell
		} else {
			p.Hard[s.PlayerTotal][s.DealerUpcard] = cell
		}
	}
	return p
}

// Policy derives the greedy policy of the exported table.
func (r *Result) Policy() (*Policy, error) {
	table, err := r.Table()
	if err != nil {
		return nil, err
	}
	return NewPolicy(table), nil
}

// At returns the cell for a total and upcard. Out-of-range lookups report an
// unvisited cell.
func (p *Policy) At(total, upcard int, soft bool) Cell {
	if total < 0 || total > MaxTotal || upcard < 0 || upcard > MaxUpcard {
		return Cell{}
	}
	if soft {
		return p.Soft[total][upcard]
	}
	return p.Hard[total][upcard]
}
