package results

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjackrl/internal/qlearn"
)

func sampleResult() *Result {
	table := qlearn.NewQTable()
	table.Set(qlearn.State{PlayerTotal: 17, DealerUpcard: 7, UsableAce: 0}, qlearn.Values{0.21, -0.48})
	table.Set(qlearn.State{PlayerTotal: 12, DealerUpcard: 4, UsableAce: 0}, qlearn.Values{-0.22, -0.19})
	table.Set(qlearn.State{PlayerTotal: 18, DealerUpcard: 6, UsableAce: 1}, qlearn.Values{0.3, 0.1})

	return &Result{
		RunID:       "c2d5e0f4-3e0c-4c0e-9d1c-7f8f7c3f0b11",
		GeneratedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Hyperparameters: Hyperparameters{
			LearningRate:   0.05,
			DiscountFactor: 0.95,
			Episodes:       2000,
			EpsilonStart:   1,
			EpsilonDecay:   0.99995,
			EpsilonMin:     0.01,
			IntervalSize:   1000,
			NumDecks:       1,
			BaseSeed:       42,
			PolicySeed:     123,
		},
		Statistics: Statistics{
			EpisodesPlayed:      2000,
			TotalWins:           820,
			TotalLosses:         1010,
			TotalPushes:         170,
			FinalWinRatePercent: 41,
		},
		WinRateHistory: []float64{39.5, 42.5},
		QTable:         EncodeTable(table),
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "training_results.json")
	r := sampleResult()
	require.NoError(t, r.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, r, loaded)

	table, err := loaded.Table()
	require.NoError(t, err)
	v, ok := table.Lookup(qlearn.State{PlayerTotal: 17, DealerUpcard: 7})
	require.True(t, ok)
	assert.Equal(t, qlearn.Values{0.21, -0.48}, v)
}

func TestEncodeUsesTupleKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleResult().Encode(&buf))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	qt := raw["q_table"].(map[string]any)
	assert.Contains(t, qt, "(17, 7, 0)")
	assert.Contains(t, qt, "(18, 6, 1)")
	assert.Equal(t, []any{0.21, -0.48}, qt["(17, 7, 0)"])

	stats := raw["statistics"].(map[string]any)
	assert.EqualValues(t, 820, stats["total_wins"])
	assert.Contains(t, stats, "final_win_rate_percent")
}

func TestEncodeEmptyRunIsValid(t *testing.T) {
	r := sampleResult()
	r.WinRateHistory = nil
	r.QTable = nil

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf))
	assert.Contains(t, buf.String(), `"win_rate_history": []`)
	require.NoError(t, Validate(buf.Bytes()))
}

func TestValidateRejectsMalformed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleResult().Encode(&buf))
	good := buf.String()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: "{"},
		{name: "missing q_table", doc: `{"hyperparameters":{},"statistics":{},"win_rate_history":[]}`},
		{name: "bad key", doc: strings.Replace(good, `"(17, 7, 0)"`, `"17-7-0"`, 1)},
		{name: "win rate above 100", doc: strings.Replace(good, "42.5", "142.5", 1)},
		{name: "three action values", doc: strings.Replace(good, "0.21,", "0.21, 0.5,", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHighlights(t *testing.T) {
	h := sampleResult().Highlights()
	require.Len(t, h, 4)
	assert.Equal(t, "(17, 7, 0)", h[0].State.String())
	assert.Equal(t, qlearn.Values{0.21, -0.48}, h[0].Values)
	assert.Equal(t, "(11, 7, 0)", h[3].State.String())
	assert.Equal(t, qlearn.Values{}, h[3].Values)
}

func TestPolicy(t *testing.T) {
	p, err := sampleResult().Policy()
	require.NoError(t, err)

	c := p.At(17, 7, false)
	assert.True(t, c.Visited)
	assert.Equal(t, qlearn.Stand, c.Action)
	assert.InDelta(t, 0.69, c.Margin, 1e-9)

	c = p.At(12, 4, false)
	assert.Equal(t, qlearn.Hit, c.Action)

	assert.True(t, p.At(18, 6, true).Visited)
	assert.False(t, p.At(18, 6, false).Visited)
	assert.False(t, p.At(30, 6, false).Visited)
}

func TestPolicyBadKey(t *testing.T) {
	r := sampleResult()
	r.QTable["oops"] = [2]float64{}
	_, err := r.Policy()
	assert.Error(t, err)
}

func TestChart(t *testing.T) {
	r := sampleResult()
	var buf bytes.Buffer
	require.NoError(t, r.RenderChart(&buf))
	assert.Contains(t, buf.String(), "Win rate per interval")

	path := filepath.Join(t.TempDir(), "chart.html")
	require.NoError(t, r.SaveChart(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<html")
}
