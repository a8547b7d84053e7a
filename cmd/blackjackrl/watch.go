package main

import (
	"context"
	"fmt"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjackrl/internal/config"
	"github.com/lox/blackjackrl/internal/control"
	"github.com/lox/blackjackrl/internal/results"
	"github.com/lox/blackjackrl/internal/tui"
)

type WatchCmd struct {
	HyperparameterFlags `embed:""`

	StepInterval *time.Duration `help:"minimum time between episodes"`
	LogFile      string         `help:"file receiving viewer and training logs"`
	Results      string         `help:"path to write the result JSON on completion"`
	Chart        string         `help:"path to write the win-rate chart HTML on completion"`
	Autostart    bool           `help:"start training immediately"`
}

func (cmd *WatchCmd) Run(ctx context.Context, settings config.Settings) error {
	cmd.HyperparameterFlags.apply(&settings)
	override(&settings.Display.StepInterval, cmd.StepInterval)
	overridePath(&settings.Display.LogFile, cmd.LogFile)
	overridePath(&settings.Output.Results, cmd.Results)
	overridePath(&settings.Output.Chart, cmd.Chart)
	if err := settings.Validate(); err != nil {
		return err
	}

	// stdout belongs to the viewer, so logs go to a file.
	f, err := os.OpenFile(settings.Display.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	level := charmlog.InfoLevel
	zlevel := zerolog.InfoLevel
	if cli.Debug {
		level = charmlog.DebugLevel
		zlevel = zerolog.DebugLevel
	}
	viewLogger := charmlog.NewWithOptions(f, charmlog.Options{ReportTimestamp: true, Level: level})
	trainLogger := zerolog.New(f).With().Timestamp().Logger().Level(zlevel)

	out := settings.Output
	ctrl, err := control.New(settings.Training,
		control.WithLogger(trainLogger),
		control.WithStepInterval(settings.Display.StepInterval),
		control.WithPollInterval(settings.Display.PollInterval),
		control.WithOnComplete(func(res *results.Result) error {
			if err := export(res, out); err != nil {
				return err
			}
			viewLogger.Info("Results exported", "path", out.Results)
			return nil
		}),
	)
	if err != nil {
		return err
	}
	if cmd.Autostart {
		ctrl.Start()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := ctrl.Run(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		defer cancel()
		return tui.Run(ctx, ctrl, viewLogger)
	})
	return g.Wait()
}
