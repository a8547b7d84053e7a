// Package control drives a trainer cooperatively for interactive viewers.
// A Controller polls for start, pause and reset signals once per tick and
// plays the next episode only when training is active and the configured
// step interval has elapsed since the previous one. An episode that has
// started always runs to resolution.
package control

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/blackjackrl/internal/results"
	"github.com/lox/blackjackrl/internal/trainer"
)

// Signal is a control request from a viewer.
type Signal uint8

const (
	SignalStart Signal = iota
	SignalPause
	SignalReset
)

func (s Signal) String() string {
	switch s {
	case SignalStart:
		return "start"
	case SignalPause:
		return "pause"
	case SignalReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ParseSignal maps "start", "pause" and "reset" to signals.
func ParseSignal(s string) (Signal, bool) {
	switch s {
	case "start":
		return SignalStart, true
	case "pause":
		return SignalPause, true
	case "reset":
		return SignalReset, true
	default:
		return 0, false
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock. Tests pass a quartz mock.
func WithClock(clock quartz.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithLogger sets the logger for the controller and its trainer.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithStepInterval sets the minimum time between episodes.
func WithStepInterval(d time.Duration) Option {
	return func(c *Controller) {
		c.stepInterval = d
	}
}

// WithPollInterval sets how often Run checks for signals.
func WithPollInterval(d time.Duration) Option {
	return func(c *Controller) {
		c.pollInterval = d
	}
}

// WithOnComplete registers a hook run once when the last episode finishes,
// typically exporting results. Errors are logged and do not stop the
// controller; the run can be exported again.
func WithOnComplete(fn func(*results.Result) error) Option {
	return func(c *Controller) {
		c.onComplete = fn
	}
}

// WithTrainerOptions passes options through to the trainer.
func WithTrainerOptions(opts ...trainer.Option) Option {
	return func(c *Controller) {
		c.trainerOpts = append(c.trainerOpts, opts...)
	}
}

// Controller owns a trainer and paces it. Tick and Run must be called from a
// single goroutine; signals, snapshots and subscriptions are safe from any.
type Controller struct {
	trainer      *trainer.Trainer
	trainerOpts  []trainer.Option
	clock        quartz.Clock
	logger       zerolog.Logger
	stepInterval time.Duration
	pollInterval time.Duration
	onComplete   func(*results.Result) error

	signals   chan Signal
	active    atomic.Bool
	lastStep  time.Time
	completed bool

	snapshot atomic.Pointer[trainer.Snapshot]
	subsMu   sync.Mutex
	subs     map[chan trainer.Snapshot]struct{}
}

// New creates a paused controller around a new trainer for cfg.
func New(cfg trainer.Config, opts ...Option) (*Controller, error) {
	c := &Controller{
		clock:        quartz.NewReal(),
		logger:       zerolog.Nop(),
		stepInterval: 50 * time.Millisecond,
		pollInterval: 10 * time.Millisecond,
		signals:      make(chan Signal, 64),
		subs:         make(map[chan trainer.Snapshot]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	topts := append([]trainer.Option{
		trainer.WithLogger(c.logger),
		trainer.WithObserver(c.publish),
	}, c.trainerOpts...)
	tr, err := trainer.New(cfg, topts...)
	if err != nil {
		return nil, err
	}
	c.trainer = tr
	c.publish(tr.Snapshot())
	return c, nil
}

// Start resumes training.
func (c *Controller) Start() { c.Send(SignalStart) }

// Pause stops training after the current episode.
func (c *Controller) Pause() { c.Send(SignalPause) }

// Reset pauses and discards everything learned.
func (c *Controller) Reset() { c.Send(SignalReset) }

// Send queues a signal for the next tick. It never blocks: when the queue is
// full because nothing is ticking, the signal is dropped and Send reports
// false.
func (c *Controller) Send(s Signal) bool {
	select {
	case c.signals <- s:
		return true
	default:
		c.logger.Warn().Stringer("signal", s).Msg("Signal queue full, dropping signal")
		return false
	}
}

// Active reports whether training is running.
func (c *Controller) Active() bool {
	return c.active.Load()
}

// Snapshot returns the latest published snapshot.
func (c *Controller) Snapshot() trainer.Snapshot {
	return *c.snapshot.Load()
}

// Subscribe returns a channel receiving every published snapshot, including
// the ones published when training starts or pauses. Slow
// readers miss intermediate snapshots rather than blocking training. The
// returned function unsubscribes.
func (c *Controller) Subscribe() (<-chan trainer.Snapshot, func()) {
	ch := make(chan trainer.Snapshot, 16)
	c.subsMu.Lock()
	c.subs[ch] = struct{}{}
	c.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.subsMu.Lock()
			delete(c.subs, ch)
			c.subsMu.Unlock()
		})
	}
}

// Result builds the result artifact for the run so far. It must be called
// from the goroutine driving Tick, or after Run has returned.
func (c *Controller) Result() *results.Result {
	return c.trainer.Result()
}

// Run ticks every poll interval until ctx is done or a step fails.
func (c *Controller) Run(ctx context.Context) error {
	ticker := c.clock.NewTicker(c.pollInterval, "controller", "poll")
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.Tick(); err != nil {
				return err
			}
		}
	}
}

// Tick drains pending signals, then plays one episode if training is active
// and the step interval has elapsed. Step errors abort: they mean the hand
// state machine was driven out of order.
func (c *Controller) Tick() error {
	c.drainSignals()

	if !c.active.Load() {
		return nil
	}
	if c.clock.Since(c.lastStep, "controller", "step") < c.stepInterval {
		return nil
	}

	res, done, err := c.trainer.Step()
	if err != nil {
		c.active.Store(false)
		c.logger.Error().Err(err).Msg("training step failed")
		return err
	}
	c.lastStep = c.clock.Now("controller", "step")
	if res.Episode > 0 {
		c.logger.Debug().
			Int("episode", res.Episode).
			Str("outcome", res.Outcome.String()).
			Float64("reward", res.Reward).
			Msg("episode finished")
	}

	if done {
		c.active.Store(false)
		c.complete()
		c.publish(c.trainer.Snapshot())
	}
	return nil
}

func (c *Controller) drainSignals() {
	for {
		select {
		case s := <-c.signals:
			c.handle(s)
		default:
			return
		}
	}
}

func (c *Controller) handle(s Signal) {
	switch s {
	case SignalStart:
		if c.trainer.Done() {
			c.logger.Info().Msg("Training already complete")
			c.active.Store(false)
			return
		}
		c.active.Store(true)
		c.logger.Info().Msg("Simulation started")
		c.publish(c.trainer.Snapshot())
	case SignalPause:
		c.active.Store(false)
		c.logger.Info().Msg("Simulation paused")
		c.publish(c.trainer.Snapshot())
	case SignalReset:
		c.active.Store(false)
		c.completed = false
		c.trainer.Reset()
		c.publish(c.trainer.Snapshot())
	}
}

func (c *Controller) complete() {
	if c.completed {
		return
	}
	c.completed = true
	stats := c.trainer.Stats()
	c.logger.Info().
		Int("episodes", c.trainer.Episode()).
		Float64("win_rate", stats.WinRate()).
		Msg("Training complete")

	if c.onComplete == nil {
		return
	}
	if err := c.onComplete(c.trainer.Result()); err != nil {
		c.logger.Error().Err(err).Msg("Failed to export results")
	}
}

func (c *Controller) publish(s trainer.Snapshot) {
	c.snapshot.Store(&s)

	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for ch := range c.subs {
		select {
		case ch <- s:
		default:
		}
	}
}
