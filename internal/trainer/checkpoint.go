package trainer

//go:generate msgp
//msgp:tuple checkpointEntry checkpointStats checkpointUpcard

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"os"

	"github.com/google/uuid"
	"github.com/tinylib/msgp/msgp"

	"github.com/lox/blackjackrl/internal/fileutil"
	"github.com/lox/blackjackrl/internal/qlearn"
	"github.com/lox/blackjackrl/internal/randutil"
	"github.com/lox/blackjackrl/internal/statistics"
)

const checkpointFileVersion = 1

// ErrCheckpointVersion is returned for checkpoints written by an
// incompatible version.
var ErrCheckpointVersion = errors.New("unsupported checkpoint version")

// maxContainerDepth bounds nesting when a checkpoint file is checked before
// decoding. Real checkpoints nest four levels deep.
const maxContainerDepth = 8

type checkpoint struct {
	Version     int               `msg:"version"`
	RunID       string            `msg:"run_id"`
	Config      Config            `msg:"config"`
	Episode     int               `msg:"episode"`
	Epsilon     float64           `msg:"epsilon"`
	Stats       checkpointStats   `msg:"stats"`
	WindowWins  int               `msg:"window_wins"`
	WindowGames int               `msg:"window_games"`
	History     []float64         `msg:"history"`
	Table       []checkpointEntry `msg:"table"`
	RNG         []byte            `msg:"rng"`
}

type checkpointEntry struct {
	PlayerTotal  int     `msg:"player_total"`
	DealerUpcard int     `msg:"dealer_upcard"`
	UsableAce    int     `msg:"usable_ace"`
	Stand        float64 `msg:"stand"`
	Hit          float64 `msg:"hit"`
}

type checkpointStats struct {
	Hands      int                  `msg:"hands"`
	Wins       int                  `msg:"wins"`
	Losses     int                  `msg:"losses"`
	Pushes     int                  `msg:"pushes"`
	Blackjacks int                  `msg:"blackjacks"`
	SumReward  float64              `msg:"sum_reward"`
	SumReward2 float64              `msg:"sum_reward2"`
	Upcards    [12]checkpointUpcard `msg:"upcards"`
}

type checkpointUpcard struct {
	Hands     int     `msg:"hands"`
	Wins      int     `msg:"wins"`
	SumReward float64 `msg:"sum_reward"`
}

func newCheckpointStats(s statistics.Statistics) checkpointStats {
	out := checkpointStats{
		Hands:      s.Hands,
		Wins:       s.Wins,
		Losses:     s.Losses,
		Pushes:     s.Pushes,
		Blackjacks: s.Blackjacks,
		SumReward:  s.SumReward,
		SumReward2: s.SumReward2,
	}
	for i, u := range s.UpcardResults {
		out.Upcards[i] = checkpointUpcard{Hands: u.Hands, Wins: u.Wins, SumReward: u.SumRew}
	}
	return out
}

func (c checkpointStats) toStatistics() statistics.Statistics {
	out := statistics.Statistics{
		Hands:      c.Hands,
		Wins:       c.Wins,
		Losses:     c.Losses,
		Pushes:     c.Pushes,
		Blackjacks: c.Blackjacks,
		SumReward:  c.SumReward,
		SumReward2: c.SumReward2,
	}
	for i, u := range c.Upcards {
		out.UpcardResults[i] = statistics.UpcardStats{Hands: u.Hands, Wins: u.Wins, SumRew: u.SumReward}
	}
	return out
}

func newCheckpointEntries(entries []qlearn.Entry) []checkpointEntry {
	out := make([]checkpointEntry, len(entries))
	for i, e := range entries {
		out[i] = checkpointEntry{
			PlayerTotal:  e.State.PlayerTotal,
			DealerUpcard: e.State.DealerUpcard,
			UsableAce:    e.State.UsableAce,
			Stand:        e.Values[qlearn.Stand],
			Hit:          e.Values[qlearn.Hit],
		}
	}
	return out
}

func (e checkpointEntry) entry() qlearn.Entry {
	var values qlearn.Values
	values[qlearn.Stand] = e.Stand
	values[qlearn.Hit] = e.Hit
	return qlearn.Entry{
		State:  qlearn.State{PlayerTotal: e.PlayerTotal, DealerUpcard: e.DealerUpcard, UsableAce: e.UsableAce},
		Values: values,
	}
}

// checkContainers walks one encoded object and rejects any array or map
// header that claims more elements than bytes remain, so decoding never
// allocates beyond the size of the input.
func checkContainers(b []byte, depth int) ([]byte, error) {
	if depth > maxContainerDepth {
		return nil, errors.New("nesting too deep")
	}
	var (
		n     uint32
		items uint64
		err   error
	)
	switch msgp.NextType(b) {
	case msgp.ArrayType:
		n, b, err = msgp.ReadArrayHeaderBytes(b)
		items = uint64(n)
	case msgp.MapType:
		n, b, err = msgp.ReadMapHeaderBytes(b)
		items = 2 * uint64(n)
	default:
		return msgp.Skip(b)
	}
	if err != nil {
		return nil, err
	}
	if items > uint64(len(b)) {
		return nil, fmt.Errorf("container claims %d elements with %d bytes left", items, len(b))
	}
	for ; items > 0; items-- {
		if b, err = checkContainers(b, depth+1); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// SaveCheckpoint writes the trainer state to path. Loading it resumes the
// run with exactly the episodes and exploration draws an uninterrupted run
// would have produced.
func (t *Trainer) SaveCheckpoint(path string) error {
	rng, err := t.pcg.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode rng state: %w", err)
	}

	snap := &checkpoint{
		Version:     checkpointFileVersion,
		RunID:       t.runID.String(),
		Config:      t.cfg,
		Episode:     t.episode,
		Epsilon:     t.epsilon,
		Stats:       newCheckpointStats(t.stats),
		WindowWins:  t.window.Wins,
		WindowGames: t.window.Games,
		History:     t.History(),
		Table:       newCheckpointEntries(t.agent.Table().Entries()),
		RNG:         rng,
	}

	data, err := snap.MarshalMsg(nil)
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("persist checkpoint: %w", err)
	}
	t.logger.Debug().Str("path", path).Int("episode", t.episode).Msg("checkpoint saved")
	return nil
}

// LoadCheckpoint restores a trainer from a checkpoint written by
// SaveCheckpoint. Options apply as they do for New.
func LoadCheckpoint(path string, opts ...Option) (*Trainer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := checkContainers(data, 0); err != nil {
		return nil, fmt.Errorf("decode checkpoint: %w", err)
	}

	var snap checkpoint
	if _, err := snap.UnmarshalMsg(data); err != nil {
		return nil, fmt.Errorf("decode checkpoint: %w", err)
	}
	if snap.Version != checkpointFileVersion {
		return nil, fmt.Errorf("%w: %d", ErrCheckpointVersion, snap.Version)
	}
	if snap.Episode < 0 || snap.Episode > snap.Config.Episodes {
		return nil, fmt.Errorf("checkpoint episode %d out of range", snap.Episode)
	}
	stats := snap.Stats.toStatistics()
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("checkpoint statistics invalid: %w", err)
	}

	t, err := New(snap.Config, opts...)
	if err != nil {
		return nil, fmt.Errorf("checkpoint config invalid: %w", err)
	}

	runID, err := uuid.Parse(snap.RunID)
	if err != nil {
		return nil, fmt.Errorf("checkpoint run id: %w", err)
	}
	pcg, err := randutil.Restore(snap.RNG)
	if err != nil {
		return nil, fmt.Errorf("checkpoint rng state: %w", err)
	}

	t.runID = runID
	t.pcg = pcg
	t.rng = rand.New(pcg)
	t.episode = snap.Episode
	t.epsilon = snap.Epsilon
	t.stats = stats
	t.window.Wins = snap.WindowWins
	t.window.Games = snap.WindowGames
	t.window.History = snap.History
	for _, ce := range snap.Table {
		e := ce.entry()
		t.agent.Table().Set(e.State, e.Values)
	}
	return t, nil
}
