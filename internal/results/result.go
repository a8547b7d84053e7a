// Package results defines the training result artifact: hyperparameters,
// outcome statistics, the interval win-rate history and the learned
// Q-table, written as indented JSON and validated against an embedded
// schema when read back.
package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/blackjackrl/internal/fileutil"
	"github.com/lox/blackjackrl/internal/qlearn"
)

// Hyperparameters records the run configuration.
type Hyperparameters struct {
	LearningRate   float64 `json:"learning_rate"`
	DiscountFactor float64 `json:"discount_factor"`
	Episodes       int     `json:"episodes"`
	EpsilonStart   float64 `json:"epsilon_start"`
	EpsilonDecay   float64 `json:"epsilon_decay"`
	EpsilonMin     float64 `json:"epsilon_min"`
	IntervalSize   int     `json:"interval_size"`
	NumDecks       int     `json:"num_decks,omitempty"`
	BaseSeed       int64   `json:"base_seed"`
	PolicySeed     int64   `json:"policy_seed"`
}

// Statistics summarises outcomes over the episodes played.
type Statistics struct {
	EpisodesPlayed      int     `json:"episodes_played"`
	TotalWins           int     `json:"total_wins"`
	TotalLosses         int     `json:"total_losses"`
	TotalPushes         int     `json:"total_pushes"`
	FinalWinRatePercent float64 `json:"final_win_rate_percent"`
	MeanReward          float64 `json:"mean_reward"`
	FinalEpsilon        float64 `json:"final_epsilon"`
}

// Result is the exported artifact of a training run. Q-table keys are state
// tuples such as "(17, 7, 0)" mapping to [stand, hit] values.
type Result struct {
	RunID           string                `json:"run_id"`
	GeneratedAt     time.Time             `json:"generated_at"`
	Hyperparameters Hyperparameters       `json:"hyperparameters"`
	Statistics      Statistics            `json:"statistics"`
	WinRateHistory  []float64             `json:"win_rate_history"`
	QTable          map[string][2]float64 `json:"q_table"`
}

// EncodeTable converts a Q-table to its exported form.
func EncodeTable(t *qlearn.QTable) map[string][2]float64 {
	out := make(map[string][2]float64, t.Len())
	for _, e := range t.Entries() {
		out[e.State.String()] = e.Values
	}
	return out
}

// Table rebuilds a Q-table from the exported entries.
func (r *Result) Table() (*qlearn.QTable, error) {
	table := qlearn.NewQTable()
	for key, values := range r.QTable {
		s, err := qlearn.ParseState(key)
		if err != nil {
			return nil, err
		}
		table.Set(s, values)
	}
	return table, nil
}

// Encode writes r as indented JSON.
func (r *Result) Encode(w io.Writer) error {
	if r.WinRateHistory == nil {
		r.WinRateHistory = []float64{}
	}
	if r.QTable == nil {
		r.QTable = map[string][2]float64{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(r)
}

// Save atomically writes r to path, creating parent directories.
func (r *Result) Save(path string) error {
	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Decode reads and validates a result document.
func Decode(data []byte) (*Result, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	return &r, nil
}

// Load reads and validates the result document at path.
func Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// HighlightStates are reference situations whose values are worth eyeballing
// after a run: basic strategy stands on the first and third and hits the
// others.
var HighlightStates = []qlearn.State{
	{PlayerTotal: 17, DealerUpcard: 7, UsableAce: 0},
	{PlayerTotal: 12, DealerUpcard: 4, UsableAce: 0},
	{PlayerTotal: 18, DealerUpcard: 10, UsableAce: 0},
	{PlayerTotal: 11, DealerUpcard: 7, UsableAce: 0},
}

// Highlights returns the values of HighlightStates. States never visited
// report zeros.
func (r *Result) Highlights() []qlearn.Entry {
	out := make([]qlearn.Entry, 0, len(HighlightStates))
	for _, s := range HighlightStates {
		out = append(out, qlearn.Entry{State: s, Values: r.QTable[s.String()]})
	}
	return out
}
