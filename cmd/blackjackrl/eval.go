package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lox/blackjackrl/internal/config"
	"github.com/lox/blackjackrl/internal/results"
	"github.com/lox/blackjackrl/internal/trainer"
)

type EvalCmd struct {
	Results string `arg:"" help:"result JSON written by train" type:"existingfile"`
	Hands   int    `help:"number of hands to play" default:"100000"`
	Workers int    `help:"parallel workers (0 => GOMAXPROCS)" default:"0"`
	Seed    int64  `help:"seed for the first evaluation hand; 0 continues after the training seeds" default:"0"`
	Decks   int    `help:"number of decks (0 => the training setting)" default:"0"`
}

func (cmd *EvalCmd) Run(ctx context.Context, settings config.Settings) error {
	res, err := results.Load(cmd.Results)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}
	table, err := res.Table()
	if err != nil {
		return fmt.Errorf("decode q-table: %w", err)
	}

	hp := res.Hyperparameters
	log.Info().
		Str("run_id", res.RunID).
		Str("generated", res.GeneratedAt.Format(time.RFC3339)).
		Int("episodes", hp.Episodes).
		Int("states", table.Len()).
		Msg("results loaded")

	cfg := trainer.EvalConfig{
		Hands:    cmd.Hands,
		Workers:  cmd.Workers,
		Seed:     cmd.Seed,
		NumDecks: cmd.Decks,
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.NumDecks == 0 {
		cfg.NumDecks = hp.NumDecks
		if cfg.NumDecks == 0 {
			cfg.NumDecks = settings.Training.NumDecks
		}
	}
	if cfg.Seed == 0 {
		// Hands the agent trained on are skipped so evaluation sees fresh deals.
		cfg.Seed = hp.BaseSeed + int64(hp.Episodes)
	}

	start := time.Now()
	stats, err := trainer.Evaluate(ctx, table, cfg)
	if err != nil {
		return fmt.Errorf("run evaluation: %w", err)
	}

	lo, hi := stats.ConfidenceInterval95()
	log.Info().
		Int("hands", stats.Hands).
		Int("workers", cfg.Workers).
		Dur("duration", time.Since(start)).
		Msg("evaluation complete")
	log.Info().
		Int("wins", stats.Wins).
		Int("losses", stats.Losses).
		Int("pushes", stats.Pushes).
		Int("blackjacks", stats.Blackjacks).
		Float64("win_rate", stats.WinRate()).
		Float64("mean_reward", stats.Mean()).
		Float64("ci95_low", lo).
		Float64("ci95_high", hi).
		Msg("greedy policy summary")

	for upcard := results.MinUpcard; upcard <= results.MaxUpcard; upcard++ {
		log.Debug().
			Int("upcard", upcard).
			Int("hands", stats.UpcardResults[upcard].Hands).
			Float64("win_rate", stats.UpcardWinRate(upcard)).
			Msg("by dealer upcard")
	}
	return nil
}
