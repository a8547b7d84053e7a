package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjackrl/internal/deck"
	"github.com/lox/blackjackrl/internal/trainer"
)

// Controller is the part of control.Controller the viewer drives.
type Controller interface {
	Start()
	Pause()
	Reset()
	Active() bool
	Snapshot() trainer.Snapshot
	Subscribe() (<-chan trainer.Snapshot, func())
}

type keyMap struct {
	Start key.Binding
	Pause key.Binding
	Reset key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
	Pause: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// snapshotMsg carries a snapshot published by the controller.
type snapshotMsg trainer.Snapshot

// closedMsg reports that the snapshot subscription ended.
type closedMsg struct{}

// Model is the Bubble Tea model for the training viewer. It only reads
// snapshots; all control goes through the controller's signals.
type Model struct {
	ctrl        Controller
	logger      *log.Logger
	snapshots   <-chan trainer.Snapshot
	unsubscribe func()

	snapshot trainer.Snapshot
	active   bool
	progress progress.Model

	width    int
	height   int
	quitting bool
}

// NewModel creates a viewer subscribed to ctrl.
func NewModel(ctrl Controller, logger *log.Logger) *Model {
	snapshots, unsubscribe := ctrl.Subscribe()
	return &Model{
		ctrl:        ctrl,
		logger:      logger.WithPrefix("tui"),
		snapshots:   snapshots,
		unsubscribe: unsubscribe,
		snapshot:    ctrl.Snapshot(),
		active:      ctrl.Active(),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return m.waitForSnapshot()
}

func (m *Model) waitForSnapshot() tea.Cmd {
	ch := m.snapshots
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return closedMsg{}
		}
		return snapshotMsg(s)
	}
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(10, min(msg.Width-20, 60))
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			m.unsubscribe()
			return m, tea.Quit
		case key.Matches(msg, keys.Start):
			m.logger.Info("Start requested")
			m.ctrl.Start()
		case key.Matches(msg, keys.Pause):
			m.logger.Info("Pause requested")
			m.ctrl.Pause()
		case key.Matches(msg, keys.Reset):
			m.logger.Info("Reset requested")
			m.ctrl.Reset()
		}
		return m, nil

	case snapshotMsg:
		m.snapshot = trainer.Snapshot(msg)
		m.active = m.ctrl.Active()
		return m, m.waitForSnapshot()

	case closedMsg:
		return m, nil
	}
	return m, nil
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.snapshot
	var b strings.Builder

	status := "PAUSED"
	if m.active {
		status = "RUNNING"
	}
	if s.Done {
		status = "COMPLETE"
	}
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Blackjack Q-Learning  %s", status)))
	b.WriteString("\n\n")

	table := lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Render("Dealer")+"  "+FormatDealer(s)+InfoStyle.Render(fmt.Sprintf("  (%d)", s.DealerTotal)),
		"",
		LabelStyle.Render("Player")+"  "+FormatCards(s.PlayerCards)+InfoStyle.Render(fmt.Sprintf("  (%d)", s.PlayerTotal)),
		"",
		FormatAction(s.LastAction)+"  "+FormatMessage(s.Message),
	)
	b.WriteString(PaneStyle.Render(table))
	b.WriteString("\n")

	stats := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Episode  %d / %d", s.Episode, s.Episodes),
		fmt.Sprintf("Epsilon  %.4f", s.Epsilon),
		fmt.Sprintf("Wins %d  Losses %d  Pushes %d", s.Wins, s.Losses, s.Pushes),
		fmt.Sprintf("Win rate %.2f%%", s.WinRate),
		fmt.Sprintf("States   %d", s.TableSize),
	)
	b.WriteString(PaneStyle.Render(stats))
	b.WriteString("\n")

	b.WriteString(m.progress.ViewAs(progressFraction(s)))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render(helpLine()))
	return b.String()
}

func progressFraction(s trainer.Snapshot) float64 {
	if s.Episodes <= 0 {
		return 0
	}
	done := s.Episode
	if !s.Done && s.HideHoleCard {
		done--
	}
	return min(1, float64(done)/float64(s.Episodes))
}

func helpLine() string {
	parts := make([]string, 0, 4)
	for _, b := range []key.Binding{keys.Start, keys.Pause, keys.Reset, keys.Quit} {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, " • ")
}

// FormatCard renders a card with its suit colour.
func FormatCard(c deck.Card) string {
	if c.Suit.IsRed() {
		return RedCardStyle.Render(c.Pretty())
	}
	return BlackCardStyle.Render(c.Pretty())
}

// FormatCards formats cards with colors
func FormatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return InfoStyle.Render("--")
	}
	formatted := make([]string, 0, len(cards))
	for _, c := range cards {
		formatted = append(formatted, FormatCard(c))
	}
	return strings.Join(formatted, " ")
}

// FormatDealer renders the dealer's cards with the hole card face down
// while the player is deciding.
func FormatDealer(s trainer.Snapshot) string {
	visible := s.VisibleDealerCards()
	if len(visible) == 0 {
		return InfoStyle.Render("--")
	}
	formatted := make([]string, 0, len(visible))
	for _, v := range visible {
		if !v.FaceUp {
			formatted = append(formatted, HiddenCardStyle.Render("??"))
			continue
		}
		formatted = append(formatted, FormatCard(v.Card))
	}
	return strings.Join(formatted, " ")
}

// FormatAction colours the last action label, e.g. "Explore: HIT".
func FormatAction(label string) string {
	switch {
	case label == "":
		return InfoStyle.Render("Action: -")
	case strings.HasSuffix(label, "HIT"):
		return HitStyle.Render(label)
	default:
		return StandStyle.Render(label)
	}
}

// FormatMessage colours a result message by outcome.
func FormatMessage(msg string) string {
	switch {
	case msg == "":
		return ""
	case strings.HasPrefix(msg, "Win"):
		return SuccessStyle.Render(msg)
	case strings.HasPrefix(msg, "Loss"):
		return ErrorStyle.Render(msg)
	default:
		return WarningStyle.Render(msg)
	}
}

// Run shows the viewer until the user quits or ctx is done.
func Run(ctx context.Context, ctrl Controller, logger *log.Logger) error {
	m := NewModel(ctrl, logger)
	defer m.unsubscribe()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
