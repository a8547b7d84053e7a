// Package qlearn holds the tabular Q-learning pieces for blackjack: the
// state encoder, the reward function, a sparse Q-table and an
// epsilon-greedy agent with a one-step temporal-difference update.
//
// Exploration rate is not owned here. Callers pass epsilon to
// SelectAction and decay it on their own schedule.
package qlearn
