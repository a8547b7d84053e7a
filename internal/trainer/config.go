package trainer

//go:generate msgp

import (
	"errors"
	"fmt"
)

// Config aggregates parameters that control a Q-learning run.
type Config struct {
	Episodes     int     `msg:"episodes"`
	Alpha        float64 `msg:"alpha"` // learning rate
	Gamma        float64 `msg:"gamma"` // discount factor
	EpsilonStart float64 `msg:"epsilon_start"`
	EpsilonDecay float64 `msg:"epsilon_decay"` // multiplicative, applied once per episode
	EpsilonMin   float64 `msg:"epsilon_min"`
	IntervalSize int     `msg:"interval_size"` // episodes per win-rate sample
	BaseSeed     int64   `msg:"base_seed"`     // episode i deals from a deck seeded BaseSeed+i
	PolicySeed   int64   `msg:"policy_seed"`   // seeds exploration draws
	NumDecks     int     `msg:"num_decks"`

	// ProgressEvery controls how often Run reports progress. Zero reports
	// every 1% of Episodes.
	ProgressEvery int `msg:"progress_every"`
}

// DefaultConfig returns the reference hyperparameters.
func DefaultConfig() Config {
	return Config{
		Episodes:     50000,
		Alpha:        0.05,
		Gamma:        0.95,
		EpsilonStart: 1.0,
		EpsilonDecay: 0.99995,
		EpsilonMin:   0.01,
		IntervalSize: 1000,
		BaseSeed:     42,
		PolicySeed:   123,
		NumDecks:     1,
	}
}

// Validate ensures the parameters are safe to use.
func (c Config) Validate() error {
	if c.Episodes <= 0 {
		return errors.New("episodes must be > 0")
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0, 1], got %v", c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("gamma must be in [0, 1], got %v", c.Gamma)
	}
	if c.EpsilonMin < 0 || c.EpsilonMin > 1 {
		return fmt.Errorf("epsilon min must be in [0, 1], got %v", c.EpsilonMin)
	}
	if c.EpsilonStart < c.EpsilonMin || c.EpsilonStart > 1 {
		return fmt.Errorf("epsilon start must be in [epsilon min, 1], got %v", c.EpsilonStart)
	}
	if c.EpsilonDecay <= 0 || c.EpsilonDecay > 1 {
		return fmt.Errorf("epsilon decay must be in (0, 1], got %v", c.EpsilonDecay)
	}
	if c.IntervalSize <= 0 {
		return errors.New("interval size must be > 0")
	}
	if c.NumDecks <= 0 {
		return errors.New("num decks must be > 0")
	}
	if c.ProgressEvery < 0 {
		return errors.New("progress every cannot be negative")
	}
	return nil
}
