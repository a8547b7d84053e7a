package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjackrl/internal/config"
	"github.com/lox/blackjackrl/internal/control"
	"github.com/lox/blackjackrl/internal/results"
	"github.com/lox/blackjackrl/internal/server"
)

type ServeCmd struct {
	HyperparameterFlags `embed:""`

	Addr      string `help:"address to listen on"`
	Results   string `help:"path to write the result JSON on completion"`
	Chart     string `help:"path to write the win-rate chart HTML on completion"`
	Autostart bool   `help:"start training immediately"`
}

func (cmd *ServeCmd) Run(ctx context.Context, settings config.Settings) error {
	cmd.HyperparameterFlags.apply(&settings)
	overridePath(&settings.Server.Address, cmd.Addr)
	overridePath(&settings.Output.Results, cmd.Results)
	overridePath(&settings.Output.Chart, cmd.Chart)
	if err := settings.Validate(); err != nil {
		return err
	}

	out := settings.Output
	ctrl, err := control.New(settings.Training,
		control.WithLogger(log.Logger),
		control.WithStepInterval(settings.Display.StepInterval),
		control.WithPollInterval(settings.Display.PollInterval),
		control.WithOnComplete(func(res *results.Result) error {
			return export(res, out)
		}),
	)
	if err != nil {
		return err
	}
	if cmd.Autostart {
		ctrl.Start()
	}

	srv := server.NewServer(settings.Server.Address, ctrl, log.Logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := ctrl.Run(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		return srv.Start(ctx)
	})
	return g.Wait()
}
