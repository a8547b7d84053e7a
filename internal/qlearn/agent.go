package qlearn

import rand "math/rand/v2"

// Agent chooses actions and learns from transitions using a QTable.
type Agent struct {
	table *QTable
}

// NewAgent returns an agent backed by table. A nil table gets a fresh one.
func NewAgent(table *QTable) *Agent {
	if table == nil {
		table = NewQTable()
	}
	return &Agent{table: table}
}

// Table returns the agent's table.
func (a *Agent) Table() *QTable {
	return a.table
}

// SelectAction applies the epsilon-greedy policy. With probability epsilon it
// draws a uniformly random action and reports explored; otherwise it returns
// the greedy action. The state's entry is created if missing.
func (a *Agent) SelectAction(s State, epsilon float64, rng *rand.Rand) (Action, bool) {
	values := a.table.Get(s)
	if rng.Float64() < epsilon {
		return Actions[rng.IntN(NumActions)], true
	}
	return values.Best(), false
}

// Greedy returns the best known action for s without touching the table.
// Unseen states stand.
func (a *Agent) Greedy(s State) Action {
	v, _ := a.table.Lookup(s)
	return v.Best()
}

// Update applies one temporal-difference step to Q(old, action). A nil next
// marks a terminal transition whose target is the reward alone.
func (a *Agent) Update(old State, action Action, reward float64, next *State, alpha, gamma float64) {
	target := reward
	if next != nil {
		target += gamma * a.table.Get(*next).Max()
	}
	q := a.table.Get(old)
	q[action] += alpha * (target - q[action])
}
