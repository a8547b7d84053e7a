package trainer

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjackrl/internal/game"
	"github.com/lox/blackjackrl/internal/qlearn"
	"github.com/lox/blackjackrl/internal/statistics"
)

// EvalConfig controls a greedy evaluation run.
type EvalConfig struct {
	Hands    int
	Workers  int
	Seed     int64
	NumDecks int
}

// Validate checks the evaluation settings.
func (c EvalConfig) Validate() error {
	if c.Hands <= 0 {
		return fmt.Errorf("hands must be positive (got %d)", c.Hands)
	}
	if c.Workers <= 0 {
		return errors.New("workers must be positive")
	}
	if c.NumDecks <= 0 {
		return errors.New("num decks must be positive")
	}
	return nil
}

// PlayGreedy plays one hand seeded with seed, always taking the action with
// the higher Q-value. Unseen states fall back to Stand. The table is only
// read, so concurrent calls may share it.
func PlayGreedy(table *qlearn.QTable, seed int64, numDecks int) (statistics.HandResult, error) {
	agent := qlearn.NewAgent(table)
	g := game.New(seed, game.WithNumDecks(numDecks))
	if err := g.StartHand(); err != nil {
		return statistics.HandResult{}, err
	}

	for !g.IsOver() {
		var err error
		if agent.Greedy(qlearn.EncodeState(g.Player(), g.Dealer())) == qlearn.Hit {
			err = g.PlayerHit()
		} else {
			err = g.PlayerStand()
		}
		if err != nil {
			return statistics.HandResult{}, err
		}
	}

	return statistics.HandResult{
		Outcome:      g.Outcome(),
		Reward:       qlearn.Reward(g.Outcome(), g.PlayerBlackjack()),
		Blackjack:    g.PlayerBlackjack(),
		DealerUpcard: qlearn.EncodeState(g.Player(), g.Dealer()).DealerUpcard,
	}, nil
}

// Evaluate plays cfg.Hands greedy hands split across cfg.Workers goroutines
// and merges their statistics. Hand i is seeded cfg.Seed+i, so the totals do
// not depend on the worker count.
func Evaluate(ctx context.Context, table *qlearn.QTable, cfg EvalConfig) (statistics.Statistics, error) {
	if err := cfg.Validate(); err != nil {
		return statistics.Statistics{}, err
	}

	workers := min(cfg.Workers, cfg.Hands)
	partials := make([]statistics.Statistics, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			stats := &partials[w]
			for i := w; i < cfg.Hands; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := PlayGreedy(table, cfg.Seed+int64(i)+1, cfg.NumDecks)
				if err != nil {
					return fmt.Errorf("hand %d: %w", i+1, err)
				}
				stats.Add(res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return statistics.Statistics{}, err
	}

	var total statistics.Statistics
	for i := range partials {
		total.Merge(&partials[i])
	}
	return total, nil
}
