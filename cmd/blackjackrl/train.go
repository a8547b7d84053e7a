package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lox/blackjackrl/internal/config"
	"github.com/lox/blackjackrl/internal/history"
	"github.com/lox/blackjackrl/internal/trainer"
)

type TrainCmd struct {
	HyperparameterFlags `embed:""`

	Results         string `help:"path to write the result JSON"`
	Chart           string `help:"path to write the win-rate chart HTML"`
	Trace           string `help:"path to write a TOML trace of the first episodes"`
	TraceEpisodes   *int   `help:"number of episodes to trace"`
	Checkpoint      string `help:"path to write periodic checkpoints"`
	CheckpointEvery *int   `help:"checkpoint interval in episodes (0 disables)"`
	Resume          string `help:"resume training from checkpoint file" type:"existingfile"`
}

func (cmd *TrainCmd) apply(s *config.Settings) {
	cmd.HyperparameterFlags.apply(s)
	overridePath(&s.Output.Results, cmd.Results)
	overridePath(&s.Output.Chart, cmd.Chart)
	overridePath(&s.Output.Trace, cmd.Trace)
	override(&s.Output.TraceEpisodes, cmd.TraceEpisodes)
	overridePath(&s.Output.Checkpoint, cmd.Checkpoint)
	override(&s.Output.CheckpointEvery, cmd.CheckpointEvery)
}

func (cmd *TrainCmd) Run(ctx context.Context, settings config.Settings) error {
	cmd.apply(&settings)
	if err := settings.Validate(); err != nil {
		return err
	}
	out := settings.Output

	var recorder *history.Recorder
	opts := []trainer.Option{trainer.WithLogger(log.Logger)}
	if out.Trace != "" && out.TraceEpisodes > 0 {
		recorder = history.NewRecorder("", out.TraceEpisodes)
		opts = append(opts, trainer.WithEpisodeHook(recorder.Add))
	}

	var (
		tr  *trainer.Trainer
		err error
	)
	if cmd.Resume != "" {
		tr, err = trainer.LoadCheckpoint(cmd.Resume, opts...)
		if err != nil {
			return fmt.Errorf("load checkpoint: %w", err)
		}
		if cmd.HyperparameterFlags.changed() {
			log.Warn().Msg("cannot change hyperparameters when resuming from checkpoint; keeping original")
		}
		cfg := tr.Config()
		log.Info().
			Str("run_id", tr.RunID().String()).
			Int("episodes", cfg.Episodes).
			Int("resume_episode", tr.Episode()).
			Float64("epsilon", tr.Epsilon()).
			Str("checkpoint", cmd.Resume).
			Msg("resuming training run")
	} else {
		tr, err = trainer.New(settings.Training, opts...)
		if err != nil {
			return err
		}
		cfg := tr.Config()
		log.Info().
			Str("run_id", tr.RunID().String()).
			Int("episodes", cfg.Episodes).
			Float64("alpha", cfg.Alpha).
			Float64("gamma", cfg.Gamma).
			Float64("epsilon_start", cfg.EpsilonStart).
			Float64("epsilon_decay", cfg.EpsilonDecay).
			Float64("epsilon_min", cfg.EpsilonMin).
			Int("decks", cfg.NumDecks).
			Msg("starting training run")
	}
	if recorder != nil {
		recorder.Reset(tr.RunID().String())
	}
	if out.Checkpoint != "" && out.CheckpointEvery > 0 {
		tr.EnableCheckpoints(out.Checkpoint, out.CheckpointEvery)
	}

	start := time.Now()
	progress := func(p trainer.Progress) {
		if p.Sampled {
			return
		}
		log.Info().
			Int("episode", p.Episode).
			Int("episodes", p.Episodes).
			Float64("epsilon", p.Epsilon).
			Float64("win_rate", p.WinRate).
			Int("states", p.TableSize).
			Msg("progress")
	}
	if err := tr.Run(ctx, progress); err != nil {
		return err
	}

	stats := tr.Stats()
	log.Info().
		Dur("duration", time.Since(start)).
		Int("wins", stats.Wins).
		Int("losses", stats.Losses).
		Int("pushes", stats.Pushes).
		Float64("win_rate", stats.WinRate()).
		Float64("mean_reward", stats.Mean()).
		Msg(trainer.MessageComplete)

	res := tr.Result()
	for _, e := range res.Highlights() {
		log.Info().
			Str("state", e.State.String()).
			Float64("stand", e.Values[0]).
			Float64("hit", e.Values[1]).
			Msg("sample Q-values")
	}

	// The run is complete in memory; a failed artifact does not stop the
	// others from being written.
	var errs []error
	if err := export(res, out); err != nil {
		errs = append(errs, err)
	}
	if recorder != nil {
		if err := recorder.Save(out.Trace); err != nil {
			log.Error().Err(err).Str("path", out.Trace).Msg("failed to save trace")
			errs = append(errs, fmt.Errorf("save trace: %w", err))
		} else {
			log.Info().Str("path", out.Trace).Int("episodes", recorder.Len()).Msg("trace saved")
		}
	}
	return errors.Join(errs...)
}
