// Package config loads run settings from an HCL or YAML file. Any value the
// file leaves out keeps its default; command-line flags are applied on top by
// the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/lox/blackjackrl/internal/trainer"
)

// File mirrors the on-disk layout. Every block and attribute is optional.
type File struct {
	Training *TrainingBlock `hcl:"training,block" yaml:"training"`
	Output   *OutputBlock   `hcl:"output,block" yaml:"output"`
	Display  *DisplayBlock  `hcl:"display,block" yaml:"display"`
	Server   *ServerBlock   `hcl:"server,block" yaml:"server"`
}

// TrainingBlock holds hyperparameters.
type TrainingBlock struct {
	Episodes       *int     `hcl:"episodes,optional" yaml:"episodes"`
	LearningRate   *float64 `hcl:"learning_rate,optional" yaml:"learning_rate"`
	DiscountFactor *float64 `hcl:"discount_factor,optional" yaml:"discount_factor"`
	EpsilonStart   *float64 `hcl:"epsilon_start,optional" yaml:"epsilon_start"`
	EpsilonDecay   *float64 `hcl:"epsilon_decay,optional" yaml:"epsilon_decay"`
	EpsilonMin     *float64 `hcl:"epsilon_min,optional" yaml:"epsilon_min"`
	IntervalSize   *int     `hcl:"interval_size,optional" yaml:"interval_size"`
	BaseSeed       *int64   `hcl:"base_seed,optional" yaml:"base_seed"`
	PolicySeed     *int64   `hcl:"policy_seed,optional" yaml:"policy_seed"`
	NumDecks       *int     `hcl:"num_decks,optional" yaml:"num_decks"`
	ProgressEvery  *int     `hcl:"progress_every,optional" yaml:"progress_every"`
}

// OutputBlock names the artifacts a run writes.
type OutputBlock struct {
	Results         *string `hcl:"results,optional" yaml:"results"`
	Chart           *string `hcl:"chart,optional" yaml:"chart"`
	Trace           *string `hcl:"trace,optional" yaml:"trace"`
	TraceEpisodes   *int    `hcl:"trace_episodes,optional" yaml:"trace_episodes"`
	Checkpoint      *string `hcl:"checkpoint,optional" yaml:"checkpoint"`
	CheckpointEvery *int    `hcl:"checkpoint_every,optional" yaml:"checkpoint_every"`
}

// DisplayBlock paces interactive viewers.
type DisplayBlock struct {
	StepInterval *string `hcl:"step_interval,optional" yaml:"step_interval"`
	PollInterval *string `hcl:"poll_interval,optional" yaml:"poll_interval"`
	LogFile      *string `hcl:"log_file,optional" yaml:"log_file"`
}

// ServerBlock configures the snapshot server.
type ServerBlock struct {
	Address *string `hcl:"address,optional" yaml:"address"`
}

// Output is the resolved artifact configuration. Empty paths are skipped.
type Output struct {
	Results         string
	Chart           string
	Trace           string
	TraceEpisodes   int
	Checkpoint      string
	CheckpointEvery int
}

// Display is the resolved viewer pacing.
type Display struct {
	StepInterval time.Duration
	PollInterval time.Duration
	LogFile      string
}

// Server is the resolved server configuration.
type Server struct {
	Address string
}

// Settings is the fully resolved configuration.
type Settings struct {
	Training trainer.Config
	Output   Output
	Display  Display
	Server   Server
}

// Default returns settings used when no file is given.
func Default() Settings {
	return Settings{
		Training: trainer.DefaultConfig(),
		Output: Output{
			Results:       "training_results.json",
			TraceEpisodes: 100,
		},
		Display: Display{
			StepInterval: 50 * time.Millisecond,
			PollInterval: 10 * time.Millisecond,
			LogFile:      "blackjackrl.log",
		},
		Server: Server{
			Address: "localhost:8080",
		},
	}
}

// Load reads filename and applies it over Default. A missing file yields the
// defaults. The format is chosen by extension: .hcl, .yaml or .yml.
func Load(filename string) (Settings, error) {
	settings := Default()
	if filename == "" {
		return settings, nil
	}

	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return Settings{}, err
	}

	var file File
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".hcl":
		err = decodeHCL(filename, data, &file)
	case ".yaml", ".yml":
		err = decodeYAML(data, &file)
	default:
		err = fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return Settings{}, err
	}

	if err := file.apply(&settings); err != nil {
		return Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func decodeHCL(filename string, data []byte, file *File) error {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	diags = gohcl.DecodeBody(f.Body, nil, file)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return nil
}

func decodeYAML(data []byte, file *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil {
		return fmt.Errorf("failed to decode YAML: %w", err)
	}
	return nil
}

func (f *File) apply(s *Settings) error {
	if t := f.Training; t != nil {
		cfg := &s.Training
		set(&cfg.Episodes, t.Episodes)
		set(&cfg.Alpha, t.LearningRate)
		set(&cfg.Gamma, t.DiscountFactor)
		set(&cfg.EpsilonStart, t.EpsilonStart)
		set(&cfg.EpsilonDecay, t.EpsilonDecay)
		set(&cfg.EpsilonMin, t.EpsilonMin)
		set(&cfg.IntervalSize, t.IntervalSize)
		set(&cfg.BaseSeed, t.BaseSeed)
		set(&cfg.PolicySeed, t.PolicySeed)
		set(&cfg.NumDecks, t.NumDecks)
		set(&cfg.ProgressEvery, t.ProgressEvery)
	}

	if o := f.Output; o != nil {
		set(&s.Output.Results, o.Results)
		set(&s.Output.Chart, o.Chart)
		set(&s.Output.Trace, o.Trace)
		set(&s.Output.TraceEpisodes, o.TraceEpisodes)
		set(&s.Output.Checkpoint, o.Checkpoint)
		set(&s.Output.CheckpointEvery, o.CheckpointEvery)
	}

	if d := f.Display; d != nil {
		if err := setDuration(&s.Display.StepInterval, d.StepInterval); err != nil {
			return fmt.Errorf("display.step_interval: %w", err)
		}
		if err := setDuration(&s.Display.PollInterval, d.PollInterval); err != nil {
			return fmt.Errorf("display.poll_interval: %w", err)
		}
		set(&s.Display.LogFile, d.LogFile)
	}

	if sv := f.Server; sv != nil {
		set(&s.Server.Address, sv.Address)
	}
	return nil
}

// Validate checks the resolved settings.
func (s Settings) Validate() error {
	if err := s.Training.Validate(); err != nil {
		return fmt.Errorf("training: %w", err)
	}
	if s.Output.TraceEpisodes < 0 {
		return errors.New("output: trace_episodes cannot be negative")
	}
	if s.Output.CheckpointEvery < 0 {
		return errors.New("output: checkpoint_every cannot be negative")
	}
	if s.Display.StepInterval < 0 {
		return errors.New("display: step_interval cannot be negative")
	}
	if s.Display.PollInterval <= 0 {
		return errors.New("display: poll_interval must be > 0")
	}
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
