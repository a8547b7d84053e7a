package trainer

import (
	"time"

	"github.com/lox/blackjackrl/internal/deck"
	"github.com/lox/blackjackrl/internal/game"
	"github.com/lox/blackjackrl/internal/results"
)

// Snapshot is a read-only copy of the trainer state for renderers. While the
// player is deciding the dealer's hole card (the second card dealt to the
// dealer) is masked: HideHoleCard is set and DealerTotal only counts the
// upcard.
type Snapshot struct {
	RunID        string      `json:"run_id"`
	Episode      int         `json:"episode"`
	Episodes     int         `json:"episodes"`
	Epsilon      float64     `json:"epsilon"`
	Phase        string      `json:"phase"`
	DealerCards  []deck.Card `json:"dealer_cards"`
	HideHoleCard bool        `json:"hide_hole_card"`
	DealerTotal  int         `json:"dealer_total"`
	PlayerCards  []deck.Card `json:"player_cards"`
	PlayerTotal  int         `json:"player_total"`
	LastAction   string      `json:"last_action"`
	Message      string      `json:"message"`
	Wins         int         `json:"wins"`
	Losses       int         `json:"losses"`
	Pushes       int         `json:"pushes"`
	WinRate      float64     `json:"win_rate"`
	History      []float64   `json:"win_rate_history"`
	IntervalSize int         `json:"interval_size"`
	TableSize    int         `json:"table_size"`
	Done         bool        `json:"done"`
}

// VisibleDealerCards returns the dealer cards with the hole card face down
// while it is masked.
func (s Snapshot) VisibleDealerCards() []VisibleCard {
	out := make([]VisibleCard, len(s.DealerCards))
	for i, c := range s.DealerCards {
		out[i] = VisibleCard{Card: c, FaceUp: !(s.HideHoleCard && i == 1)}
	}
	return out
}

// VisibleCard is a card as shown to a viewer.
type VisibleCard struct {
	Card   deck.Card
	FaceUp bool
}

// Snapshot copies the current state.
func (t *Trainer) Snapshot() Snapshot {
	s := Snapshot{
		RunID:        t.runID.String(),
		Episode:      t.episode,
		Episodes:     t.cfg.Episodes,
		Epsilon:      t.epsilon,
		Phase:        game.PhaseDealing.String(),
		LastAction:   t.lastAction,
		Message:      t.message,
		Wins:         t.stats.Wins,
		Losses:       t.stats.Losses,
		Pushes:       t.stats.Pushes,
		WinRate:      t.stats.WinRate(),
		History:      t.History(),
		IntervalSize: t.cfg.IntervalSize,
		TableSize:    t.agent.Table().Len(),
		Done:         t.Done(),
	}

	g := t.game
	if g == nil {
		return s
	}

	s.Phase = g.Phase().String()
	s.PlayerCards = g.Player().Cards()
	s.PlayerTotal = g.Player().Total()
	s.DealerCards = g.Dealer().Cards()
	s.DealerTotal = g.Dealer().Total()
	if !g.IsOver() {
		// the hand is in progress, so the episode counter has not advanced yet
		s.Episode = t.episode + 1
		s.HideHoleCard = true
		if up, ok := g.Dealer().First(); ok {
			s.DealerTotal = game.NewHand(up).Total()
		}
	}
	return s
}

// Result builds the exportable artifact for the run so far.
func (t *Trainer) Result() *results.Result {
	return &results.Result{
		RunID:       t.runID.String(),
		GeneratedAt: time.Now().UTC(),
		Hyperparameters: results.Hyperparameters{
			LearningRate:   t.cfg.Alpha,
			DiscountFactor: t.cfg.Gamma,
			Episodes:       t.cfg.Episodes,
			EpsilonStart:   t.cfg.EpsilonStart,
			EpsilonDecay:   t.cfg.EpsilonDecay,
			EpsilonMin:     t.cfg.EpsilonMin,
			IntervalSize:   t.cfg.IntervalSize,
			NumDecks:       t.cfg.NumDecks,
			BaseSeed:       t.cfg.BaseSeed,
			PolicySeed:     t.cfg.PolicySeed,
		},
		Statistics: results.Statistics{
			EpisodesPlayed:      t.episode,
			TotalWins:           t.stats.Wins,
			TotalLosses:         t.stats.Losses,
			TotalPushes:         t.stats.Pushes,
			FinalWinRatePercent: t.stats.WinRate(),
			MeanReward:          t.stats.Mean(),
			FinalEpsilon:        t.epsilon,
		},
		WinRateHistory: t.History(),
		QTable:         results.EncodeTable(t.agent.Table()),
	}
}
