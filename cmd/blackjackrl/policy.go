package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjackrl/internal/results"
	"github.com/lox/blackjackrl/internal/tui"
)

type PolicyCmd struct {
	Results string `arg:"" help:"result JSON written by train" type:"existingfile"`
	NoColor bool   `help:"print the grid without colour"`
}

func (cmd *PolicyCmd) Run() error {
	return cmd.render(os.Stdout)
}

func (cmd *PolicyCmd) render(w io.Writer) error {
	if cmd.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	res, err := results.Load(cmd.Results)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}
	p, err := res.Policy()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, tui.RenderPolicy(p))
	return err
}
