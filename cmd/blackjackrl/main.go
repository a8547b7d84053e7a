package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lox/blackjackrl/internal/config"
	"github.com/lox/blackjackrl/internal/results"
)

var cli struct {
	Debug  bool   `help:"enable debug logging"`
	Config string `help:"HCL or YAML run file; flags override its values" type:"path"`

	Train  TrainCmd  `cmd:"" help:"train a Q-learning agent headlessly and export the results"`
	Watch  WatchCmd  `cmd:"" help:"watch training hand by hand in the terminal"`
	Serve  ServeCmd  `cmd:"" help:"serve training snapshots over a websocket"`
	Eval   EvalCmd   `cmd:"" help:"play greedy hands with an exported Q-table"`
	Policy PolicyCmd `cmd:"" help:"print the learned hit/stand policy"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("blackjackrl"),
		kong.Description("Tabular Q-learning for single-player blackjack"),
		kong.UsageOnError(),
	)

	setupLogger(cli.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal().Err(err).Str("path", cli.Config).Msg("failed to load config")
	}

	switch kctx.Command() {
	case "train":
		if err := cli.Train.Run(ctx, settings); err != nil {
			log.Fatal().Err(err).Msg("training failed")
		}
	case "watch":
		if err := cli.Watch.Run(ctx, settings); err != nil {
			log.Fatal().Err(err).Msg("viewer failed")
		}
	case "serve":
		if err := cli.Serve.Run(ctx, settings); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case "eval <results>":
		if err := cli.Eval.Run(ctx, settings); err != nil {
			log.Fatal().Err(err).Msg("evaluation failed")
		}
	case "policy <results>":
		if err := cli.Policy.Run(); err != nil {
			log.Fatal().Err(err).Msg("failed to render policy")
		}
	default:
		log.Fatal().Msgf("unknown command: %s", kctx.Command())
	}
}

func setupLogger(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

// HyperparameterFlags override the training block of the run file. Flags
// left off the command line keep the configured setting; an explicit zero
// overrides it.
type HyperparameterFlags struct {
	Episodes      *int     `help:"number of episodes to train"`
	Alpha         *float64 `help:"learning rate"`
	Gamma         *float64 `help:"discount factor"`
	EpsilonStart  *float64 `help:"initial exploration rate"`
	EpsilonDecay  *float64 `help:"per-episode exploration decay factor"`
	EpsilonMin    *float64 `help:"exploration floor"`
	IntervalSize  *int     `help:"episodes per win-rate sample"`
	BaseSeed      *int64   `help:"episode i deals from seed base+i"`
	PolicySeed    *int64   `help:"seed for exploration decisions"`
	Decks         *int     `help:"number of decks in the shoe"`
	ProgressEvery *int     `help:"log progress every N episodes (0 => episodes/100)"`
}

func (f HyperparameterFlags) apply(s *config.Settings) {
	t := &s.Training
	override(&t.Episodes, f.Episodes)
	override(&t.Alpha, f.Alpha)
	override(&t.Gamma, f.Gamma)
	override(&t.EpsilonStart, f.EpsilonStart)
	override(&t.EpsilonDecay, f.EpsilonDecay)
	override(&t.EpsilonMin, f.EpsilonMin)
	override(&t.IntervalSize, f.IntervalSize)
	override(&t.BaseSeed, f.BaseSeed)
	override(&t.PolicySeed, f.PolicySeed)
	override(&t.NumDecks, f.Decks)
	override(&t.ProgressEvery, f.ProgressEvery)
}

func (f HyperparameterFlags) changed() bool {
	return f != HyperparameterFlags{}
}

// override copies a flag that was given on the command line.
func override[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// overridePath copies a non-empty path flag.
func overridePath(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// export writes the result artifact and, when configured, its chart. Every
// artifact is attempted; failures are logged and returned together.
func export(res *results.Result, out config.Output) error {
	var errs []error
	if out.Results != "" {
		if err := res.Save(out.Results); err != nil {
			log.Error().Err(err).Str("path", out.Results).Msg("failed to save results")
			errs = append(errs, fmt.Errorf("save results: %w", err))
		} else {
			log.Info().Str("path", out.Results).Msg("results saved")
		}
	}
	if out.Chart != "" {
		if err := res.SaveChart(out.Chart); err != nil {
			log.Error().Err(err).Str("path", out.Chart).Msg("failed to save chart")
			errs = append(errs, fmt.Errorf("save chart: %w", err))
		} else {
			log.Info().Str("path", out.Chart).Msg("chart saved")
		}
	}
	return errors.Join(errs...)
}
