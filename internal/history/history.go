// Package history records played episodes as human-readable TOML hand
// histories, one [[episode]] table per hand.
package history

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/blackjackrl/internal/deck"
	"github.com/lox/blackjackrl/internal/fileutil"
	"github.com/lox/blackjackrl/internal/qlearn"
	"github.com/lox/blackjackrl/internal/trainer"
)

// Trace is the document written to disk.
type Trace struct {
	RunID    string    `toml:"run_id"`
	Episodes []Episode `toml:"episode"`
}

// Episode is one hand: cards in deal order, the agent's decisions and the
// result.
type Episode struct {
	Number    int      `toml:"number"`
	Seed      int64    `toml:"seed"`
	Epsilon   float64  `toml:"epsilon"`
	Player    []string `toml:"player"`
	Dealer    []string `toml:"dealer"`
	Actions   []string `toml:"actions"`
	Outcome   string   `toml:"outcome"`
	Blackjack bool     `toml:"blackjack,omitempty"`
	Reward    float64  `toml:"reward"`
}

// FormatDecision renders a decision as "<state> <explore|exploit> <ACTION>",
// e.g. "(16, 10, 0) explore HIT".
func FormatDecision(d trainer.Decision) string {
	mode := "exploit"
	if d.Explored {
		mode = "explore"
	}
	return fmt.Sprintf("%s %s %s", d.State, mode, d.Action)
}

// ParseDecision reverses FormatDecision.
func ParseDecision(s string) (trainer.Decision, error) {
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return trainer.Decision{}, fmt.Errorf("history: malformed decision %q", s)
	}
	state, err := qlearn.ParseState(s[:end+1])
	if err != nil {
		return trainer.Decision{}, fmt.Errorf("history: %w", err)
	}

	fields := strings.Fields(s[end+1:])
	if len(fields) != 2 {
		return trainer.Decision{}, fmt.Errorf("history: malformed decision %q", s)
	}

	d := trainer.Decision{State: state}
	switch fields[0] {
	case "explore":
		d.Explored = true
	case "exploit":
	default:
		return trainer.Decision{}, fmt.Errorf("history: unknown mode %q", fields[0])
	}
	switch fields[1] {
	case qlearn.Hit.String():
		d.Action = qlearn.Hit
	case qlearn.Stand.String():
		d.Action = qlearn.Stand
	default:
		return trainer.Decision{}, fmt.Errorf("history: unknown action %q", fields[1])
	}
	return d, nil
}

// Recorder keeps the first Limit episodes it is given. A Limit of zero keeps
// everything.
type Recorder struct {
	Limit int
	trace Trace
}

// NewRecorder returns a recorder for runID that keeps up to limit episodes.
func NewRecorder(runID string, limit int) *Recorder {
	return &Recorder{Limit: limit, trace: Trace{RunID: runID}}
}

// Add records res unless the recorder is full. It matches the signature of
// trainer.WithEpisodeHook.
func (r *Recorder) Add(res trainer.EpisodeResult) {
	if r.Full() {
		return
	}
	ep := Episode{
		Number:    res.Episode,
		Seed:      res.Seed,
		Epsilon:   res.Epsilon,
		Player:    cardStrings(res.PlayerCards),
		Dealer:    cardStrings(res.DealerCards),
		Actions:   make([]string, 0, len(res.Decisions)),
		Outcome:   res.Outcome.String(),
		Blackjack: res.Blackjack,
		Reward:    res.Reward,
	}
	for _, d := range res.Decisions {
		ep.Actions = append(ep.Actions, FormatDecision(d))
	}
	r.trace.Episodes = append(r.trace.Episodes, ep)
}

// Full reports whether the limit has been reached.
func (r *Recorder) Full() bool {
	return r.Limit > 0 && len(r.trace.Episodes) >= r.Limit
}

// Len returns the number of recorded episodes.
func (r *Recorder) Len() int {
	return len(r.trace.Episodes)
}

// Trace returns the recorded document.
func (r *Recorder) Trace() *Trace {
	return &r.trace
}

// Reset drops recorded episodes and switches to a new run.
func (r *Recorder) Reset(runID string) {
	r.trace = Trace{RunID: runID}
}

// Save atomically writes the trace to path.
func (r *Recorder) Save(path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, &r.trace); err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644)
}

// Encode writes trace as TOML.
func Encode(w io.Writer, trace *Trace) error {
	if trace == nil {
		return fmt.Errorf("history: trace is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(trace)
}

// Decode reads a trace written by Encode.
func Decode(r io.Reader) (*Trace, error) {
	var trace Trace
	if _, err := toml.NewDecoder(r).Decode(&trace); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return &trace, nil
}

func cardStrings(cards []deck.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
