package statistics

import (
	"math"
	"testing"

	"github.com/lox/blackjackrl/internal/game"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.WinRate() != 0 {
		t.Errorf("Expected win rate of 0 for empty stats, got %f", stats.WinRate())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected empty stats to validate, got %v", err)
	}
}

func TestStatistics_Counters(t *testing.T) {
	stats := &Statistics{}
	stats.Add(HandResult{Outcome: game.Win, Reward: 1.5, Blackjack: true, DealerUpcard: 7})
	stats.Add(HandResult{Outcome: game.Win, Reward: 1, DealerUpcard: 10})
	stats.Add(HandResult{Outcome: game.Loss, Reward: -1, DealerUpcard: 7})
	stats.Add(HandResult{Outcome: game.Push, Reward: 0, DealerUpcard: 11})

	if stats.Hands != 4 || stats.Wins != 2 || stats.Losses != 1 || stats.Pushes != 1 {
		t.Fatalf("Unexpected counters: %+v", stats)
	}
	if stats.Blackjacks != 1 {
		t.Errorf("Expected 1 blackjack, got %d", stats.Blackjacks)
	}
	if stats.WinRate() != 50 {
		t.Errorf("Expected win rate 50, got %f", stats.WinRate())
	}
	if stats.UpcardWinRate(7) != 50 {
		t.Errorf("Expected upcard 7 win rate 50, got %f", stats.UpcardWinRate(7))
	}
	if stats.UpcardWinRate(11) != 0 {
		t.Errorf("Expected upcard 11 win rate 0, got %f", stats.UpcardWinRate(11))
	}
	if stats.UpcardWinRate(1) != 0 {
		t.Errorf("Expected out-of-range upcard to report 0")
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected stats to validate, got %v", err)
	}
}

func TestStatistics_IgnoresUndetermined(t *testing.T) {
	stats := &Statistics{}
	stats.Add(HandResult{Outcome: game.Undetermined, Reward: 5})

	if stats.Hands != 0 || stats.SumReward != 0 {
		t.Errorf("Expected undetermined hand to be ignored, got %+v", stats)
	}
}

func TestStatistics_Moments(t *testing.T) {
	stats := &Statistics{}
	rewards := []float64{1, -1, 1, 0, -1, 1.5}
	for _, r := range rewards {
		outcome := game.Push
		switch {
		case r > 0:
			outcome = game.Win
		case r < 0:
			outcome = game.Loss
		}
		stats.Add(HandResult{Outcome: outcome, Reward: r})
	}

	mean := 1.5 / 6
	if math.Abs(stats.Mean()-mean) > 1e-9 {
		t.Errorf("Expected mean %f, got %f", mean, stats.Mean())
	}

	var ss float64
	for _, r := range rewards {
		ss += (r - mean) * (r - mean)
	}
	variance := ss / 5
	if math.Abs(stats.Variance()-variance) > 1e-9 {
		t.Errorf("Expected variance %f, got %f", variance, stats.Variance())
	}

	low, high := stats.ConfidenceInterval95()
	margin := 1.96 * math.Sqrt(variance) / math.Sqrt(6)
	if math.Abs(low-(mean-margin)) > 1e-9 || math.Abs(high-(mean+margin)) > 1e-9 {
		t.Errorf("Unexpected confidence interval [%f, %f]", low, high)
	}
}

func TestStatistics_MergeAndReset(t *testing.T) {
	a := &Statistics{}
	b := &Statistics{}
	a.Add(HandResult{Outcome: game.Win, Reward: 1, DealerUpcard: 5})
	b.Add(HandResult{Outcome: game.Loss, Reward: -1, DealerUpcard: 5})
	b.Add(HandResult{Outcome: game.Push, Reward: 0, DealerUpcard: 9})

	a.Merge(b)
	if a.Hands != 3 || a.Wins != 1 || a.Losses != 1 || a.Pushes != 1 {
		t.Fatalf("Unexpected merged counters: %+v", a)
	}
	if a.UpcardResults[5].Hands != 2 {
		t.Errorf("Expected 2 hands against a 5, got %d", a.UpcardResults[5].Hands)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Expected merged stats to validate, got %v", err)
	}

	a.Reset()
	if a.Hands != 0 || a.SumReward != 0 || a.UpcardResults[5].Hands != 0 {
		t.Errorf("Expected reset stats to be zero, got %+v", a)
	}
}

func TestStatistics_ValidateDetectsMismatch(t *testing.T) {
	stats := &Statistics{Hands: 3, Wins: 1, Losses: 1}
	if err := stats.Validate(); err == nil {
		t.Error("Expected mismatch error")
	}

	stats = &Statistics{Hands: 1, Wins: 1, Blackjacks: 2}
	if err := stats.Validate(); err == nil {
		t.Error("Expected blackjack overflow error")
	}
}

func TestWindow_Samples(t *testing.T) {
	w := NewWindow(4)

	results := []bool{true, false, true, true}
	for i, win := range results {
		sample, ok := w.Record(win)
		if i < 3 && ok {
			t.Fatalf("Unexpected sample after %d hands", i+1)
		}
		if i == 3 {
			if !ok {
				t.Fatal("Expected a sample after a full block")
			}
			if sample != 75 {
				t.Errorf("Expected sample 75, got %f", sample)
			}
		}
	}

	if w.Wins != 0 || w.Games != 0 {
		t.Errorf("Expected counters reset after sample, got wins=%d games=%d", w.Wins, w.Games)
	}

	for range 4 {
		w.Record(false)
	}
	if len(w.History) != 2 || w.History[1] != 0 {
		t.Errorf("Unexpected history %v", w.History)
	}
	last, ok := w.Last()
	if !ok || last != 0 {
		t.Errorf("Expected last sample 0, got %f (%v)", last, ok)
	}

	w.Record(true)
	w.Reset()
	if w.Games != 0 || len(w.History) != 0 {
		t.Errorf("Expected empty window after reset")
	}
	if _, ok := w.Last(); ok {
		t.Error("Expected no last sample after reset")
	}
}

func TestWindow_ThousandHands(t *testing.T) {
	w := NewWindow(1000)
	for i := range 1000 {
		w.Record(i < 437)
	}
	if len(w.History) != 1 || math.Abs(w.History[0]-43.7) > 1e-9 {
		t.Errorf("Expected single sample 43.7, got %v", w.History)
	}
}
