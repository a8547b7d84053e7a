package statistics

import (
	"fmt"
	"math"

	"github.com/lox/blackjackrl/internal/game"
)

// HandResult represents the outcome of a single blackjack hand
type HandResult struct {
	Outcome      game.Outcome
	Reward       float64 // Payout in units of the stake
	Blackjack    bool    // Won with a natural
	DealerUpcard int     // Encoded upcard, 2-11 (Ace = 11)
}

// UpcardStats tracks results against one dealer upcard
type UpcardStats struct {
	Hands  int
	Wins   int
	SumRew float64
}

// Statistics tracks outcome counts and reward moments over a run
type Statistics struct {
	Hands      int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	SumReward  float64
	SumReward2 float64 // Sum of squares for variance calculation

	// Index 0 and 1 unused, 2-11 for upcards
	UpcardResults [12]UpcardStats
}

// Add incorporates a resolved hand into the statistics
func (s *Statistics) Add(result HandResult) {
	switch result.Outcome {
	case game.Win:
		s.Wins++
		if result.Blackjack {
			s.Blackjacks++
		}
	case game.Loss:
		s.Losses++
	case game.Push:
		s.Pushes++
	default:
		return
	}
	s.Hands++
	s.SumReward += result.Reward
	s.SumReward2 += result.Reward * result.Reward

	if up := result.DealerUpcard; up >= 2 && up <= 11 {
		s.UpcardResults[up].Hands++
		s.UpcardResults[up].SumRew += result.Reward
		if result.Outcome == game.Win {
			s.UpcardResults[up].Wins++
		}
	}
}

// WinRate returns wins over all resolved hands as a percentage
func (s *Statistics) WinRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Hands) * 100
}

// Mean returns the mean reward per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumReward / float64(s.Hands)
}

// Variance returns the sample variance of rewards
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumReward2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of rewards
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(max(s.Variance(), 0))
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// UpcardWinRate returns the win percentage against a dealer upcard (2-11)
func (s *Statistics) UpcardWinRate(upcard int) float64 {
	if upcard < 2 || upcard > 11 {
		return 0
	}
	us := s.UpcardResults[upcard]
	if us.Hands == 0 {
		return 0
	}
	return float64(us.Wins) / float64(us.Hands) * 100
}

// Merge folds other into s. Used to combine per-worker evaluation results.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.SumReward += other.SumReward
	s.SumReward2 += other.SumReward2
	for i := range s.UpcardResults {
		s.UpcardResults[i].Hands += other.UpcardResults[i].Hands
		s.UpcardResults[i].Wins += other.UpcardResults[i].Wins
		s.UpcardResults[i].SumRew += other.UpcardResults[i].SumRew
	}
}

// Reset zeroes every counter
func (s *Statistics) Reset() {
	*s = Statistics{}
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Wins+s.Losses+s.Pushes != s.Hands {
		return fmt.Errorf("outcome counts (%d+%d+%d) do not match hands (%d)",
			s.Wins, s.Losses, s.Pushes, s.Hands)
	}
	if s.Blackjacks > s.Wins {
		return fmt.Errorf("blackjacks (%d) exceed wins (%d)", s.Blackjacks, s.Wins)
	}

	upcardHands := 0
	for up := 2; up <= 11; up++ {
		upcardHands += s.UpcardResults[up].Hands
	}
	if upcardHands != 0 && upcardHands != s.Hands {
		return fmt.Errorf("upcard hands total (%d) does not match total hands (%d)",
			upcardHands, s.Hands)
	}
	return nil
}
