// Package trainer runs the Q-learning episode loop: one fresh seeded hand
// per episode, epsilon-greedy play, a temporal-difference update after every
// decision and aggregate outcome statistics.
package trainer

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lox/blackjackrl/internal/deck"
	"github.com/lox/blackjackrl/internal/game"
	"github.com/lox/blackjackrl/internal/qlearn"
	"github.com/lox/blackjackrl/internal/randutil"
	"github.com/lox/blackjackrl/internal/statistics"
)

// Messages shown with snapshots outside of hand results.
const (
	MessageReset    = "Q-Table Reset!"
	MessageComplete = "Training Complete!"
)

// Decision is one agent choice within an episode.
type Decision struct {
	State    qlearn.State
	Action   qlearn.Action
	Explored bool
}

// EpisodeResult describes a finished episode.
type EpisodeResult struct {
	Episode     int
	Seed        int64
	PlayerCards []deck.Card
	DealerCards []deck.Card
	Decisions   []Decision
	Outcome     game.Outcome
	Blackjack   bool
	Reward      float64
	Epsilon     float64 // value used during the episode

	// Sample is set when this episode completed an interval.
	Sample  float64
	Sampled bool
}

// Progress contains metadata emitted during Run.
type Progress struct {
	Episode   int
	Episodes  int
	Epsilon   float64
	WinRate   float64
	TableSize int
	Sample    float64
	Sampled   bool
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Trainer) {
		t.logger = logger
	}
}

// WithObserver registers a callback that receives a snapshot before each
// agent action and when each hand resolves.
func WithObserver(fn func(Snapshot)) Option {
	return func(t *Trainer) {
		t.observer = fn
	}
}

// WithEpisodeHook registers a callback invoked with every finished episode.
func WithEpisodeHook(fn func(EpisodeResult)) Option {
	return func(t *Trainer) {
		t.episodeHook = fn
	}
}

// Trainer owns the agent, the exploration schedule and the run statistics.
// It is not safe for concurrent use.
type Trainer struct {
	cfg         Config
	logger      zerolog.Logger
	observer    func(Snapshot)
	episodeHook func(EpisodeResult)

	runID   uuid.UUID
	agent   *qlearn.Agent
	pcg     *rand.PCG
	rng     *rand.Rand
	episode int
	epsilon float64
	stats   statistics.Statistics
	window  *statistics.Window

	// Display state for snapshots.
	game       *game.Game
	lastAction string
	message    string

	checkpointPath  string
	checkpointEvery int
}

// New constructs a trainer for cfg.
func New(cfg Config, opts ...Option) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Trainer{
		cfg:    cfg,
		logger: zerolog.Nop(),
		agent:  qlearn.NewAgent(nil),
		window: statistics.NewWindow(cfg.IntervalSize),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.restart()
	return t, nil
}

func (t *Trainer) restart() {
	t.runID = uuid.New()
	t.agent.Table().Clear()
	t.pcg = randutil.NewPCG(t.cfg.PolicySeed)
	t.rng = rand.New(t.pcg)
	t.episode = 0
	t.epsilon = t.cfg.EpsilonStart
	t.stats.Reset()
	t.window.Reset()
	t.game = nil
	t.lastAction = ""
	t.message = ""
}

// Reset discards everything learned: the Q-table, counters, history and
// exploration rate. The exploration generator is reseeded so a reset run
// replays the original one.
func (t *Trainer) Reset() {
	t.restart()
	t.message = MessageReset
	t.logger.Info().Str("run_id", t.runID.String()).Msg("Q-table reset")
}

// Done reports whether every configured episode has been played.
func (t *Trainer) Done() bool {
	return t.episode >= t.cfg.Episodes
}

// Step plays one episode. Once the configured number of episodes has been
// played it does nothing and reports done until Reset. The returned flag is
// true when no episodes remain.
func (t *Trainer) Step() (EpisodeResult, bool, error) {
	if t.Done() {
		return EpisodeResult{}, true, nil
	}

	i := t.episode + 1
	seed := t.cfg.BaseSeed + int64(i)
	res := EpisodeResult{Episode: i, Seed: seed, Epsilon: t.epsilon}

	g := game.New(seed, game.WithNumDecks(t.cfg.NumDecks), game.WithListener(t.onGameEvent))
	t.game = g
	t.message = ""
	t.lastAction = ""

	if err := g.StartHand(); err != nil {
		return res, false, fmt.Errorf("episode %d: %w", i, err)
	}

	for !g.IsOver() {
		state := qlearn.EncodeState(g.Player(), g.Dealer())
		action, explored := t.agent.SelectAction(state, t.epsilon, t.rng)
		t.lastAction = ActionLabel(action, explored)
		res.Decisions = append(res.Decisions, Decision{State: state, Action: action, Explored: explored})
		t.notify()

		var err error
		if action == qlearn.Hit {
			err = g.PlayerHit()
		} else {
			err = g.PlayerStand()
		}
		if err != nil {
			return res, false, fmt.Errorf("episode %d: %w", i, err)
		}

		var next *qlearn.State
		reward := 0.0
		if g.IsOver() {
			reward = qlearn.Reward(g.Outcome(), g.PlayerBlackjack())
		} else {
			ns := qlearn.EncodeState(g.Player(), g.Dealer())
			next = &ns
		}
		t.agent.Update(state, action, reward, next, t.cfg.Alpha, t.cfg.Gamma)
	}

	t.episode = i
	t.finish(g, &res)

	if t.episodeHook != nil {
		t.episodeHook(res)
	}
	t.notify()
	return res, t.Done(), nil
}

// finish books a resolved hand: counters, interval window, exploration decay.
func (t *Trainer) finish(g *game.Game, res *EpisodeResult) {
	res.Outcome = g.Outcome()
	res.Blackjack = g.PlayerBlackjack()
	res.Reward = qlearn.Reward(res.Outcome, res.Blackjack)
	res.PlayerCards = g.Player().Cards()
	res.DealerCards = g.Dealer().Cards()

	t.stats.Add(statistics.HandResult{
		Outcome:      res.Outcome,
		Reward:       res.Reward,
		Blackjack:    res.Blackjack,
		DealerUpcard: qlearn.EncodeState(g.Player(), g.Dealer()).DealerUpcard,
	})

	if sample, ok := t.window.Record(res.Outcome == game.Win); ok {
		res.Sample, res.Sampled = sample, true
		t.logger.Info().
			Int("from", t.episode-t.cfg.IntervalSize+1).
			Int("to", t.episode).
			Float64("win_rate", sample).
			Msgf("Episodes %d-%d: Win Rate = %.2f%%", t.episode-t.cfg.IntervalSize+1, t.episode, sample)
	}

	t.epsilon = max(t.cfg.EpsilonMin, t.epsilon*t.cfg.EpsilonDecay)

	t.message = ResultMessage(res.Outcome, res.Blackjack)
	if t.Done() {
		t.message = MessageComplete
	}
}

func (t *Trainer) onGameEvent(e game.Event) {
	if e.Type != game.EventTypeDealerDraw {
		return
	}
	t.logger.Debug().
		Int("episode", t.episode+1).
		Str("card", e.Card.String()).
		Int("dealer_total", e.DealerTotal).
		Msg("dealer draws")
}

func (t *Trainer) notify() {
	if t.observer != nil {
		t.observer(t.Snapshot())
	}
}

// Run plays the remaining episodes, reporting progress every
// Config.ProgressEvery episodes, on every interval sample and once at the
// end. Cancellation is checked between episodes.
func (t *Trainer) Run(ctx context.Context, progress func(Progress)) error {
	batch := t.cfg.ProgressEvery
	if batch == 0 {
		batch = max(t.cfg.Episodes/100, 1)
	}

	for !t.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res, _, err := t.Step()
		if err != nil {
			return err
		}

		if t.checkpointPath != "" && t.checkpointEvery > 0 && res.Episode%t.checkpointEvery == 0 {
			if err := t.SaveCheckpoint(t.checkpointPath); err != nil {
				return err
			}
		}

		if progress != nil && (res.Sampled || res.Episode%batch == 0) {
			p := t.Progress()
			p.Sample, p.Sampled = res.Sample, res.Sampled
			progress(p)
		}
	}

	if progress != nil {
		progress(t.Progress())
	}

	if t.checkpointPath != "" && t.checkpointEvery > 0 {
		if err := t.SaveCheckpoint(t.checkpointPath); err != nil {
			return err
		}
	}
	return nil
}

// EnableCheckpoints configures Run to write a checkpoint every n episodes
// and once at the end.
func (t *Trainer) EnableCheckpoints(path string, every int) {
	t.checkpointPath = path
	t.checkpointEvery = every
}

// Progress reports the current position of the run.
func (t *Trainer) Progress() Progress {
	return Progress{
		Episode:   t.episode,
		Episodes:  t.cfg.Episodes,
		Epsilon:   t.epsilon,
		WinRate:   t.stats.WinRate(),
		TableSize: t.agent.Table().Len(),
	}
}

// Config returns the run configuration.
func (t *Trainer) Config() Config {
	return t.cfg
}

// RunID identifies the current run. Reset starts a new run.
func (t *Trainer) RunID() uuid.UUID {
	return t.runID
}

// Episode returns the number of episodes played.
func (t *Trainer) Episode() int {
	return t.episode
}

// Epsilon returns the exploration rate for the next episode.
func (t *Trainer) Epsilon() float64 {
	return t.epsilon
}

// Stats returns a copy of the outcome statistics.
func (t *Trainer) Stats() statistics.Statistics {
	return t.stats
}

// History returns a copy of the interval win-rate samples.
func (t *Trainer) History() []float64 {
	return append([]float64(nil), t.window.History...)
}

// Table returns the live Q-table.
func (t *Trainer) Table() *qlearn.QTable {
	return t.agent.Table()
}

// ActionLabel renders a decision for display, e.g. "Explore: HIT".
func ActionLabel(a qlearn.Action, explored bool) string {
	if explored {
		return "Explore: " + a.String()
	}
	return "Exploit: " + a.String()
}

// ResultMessage renders an outcome for display, e.g. "Win (Blackjack!)".
func ResultMessage(o game.Outcome, blackjack bool) string {
	if o == game.Win && blackjack {
		return "Win (Blackjack!)"
	}
	return o.String()
}
