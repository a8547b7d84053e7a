package game

import (
	"errors"
	"fmt"

	"github.com/lox/blackjackrl/internal/deck"
)

// ErrInvalidPhase is returned when an operation is requested in a phase that
// does not allow it, e.g. hitting a resolved hand.
var ErrInvalidPhase = errors.New("operation not valid in current phase")

// Phase is a state of the hand state machine.
type Phase uint8

const (
	PhaseDealing Phase = iota
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the result of a hand from the player's point of view.
type Outcome uint8

const (
	Undetermined Outcome = iota
	Win
	Loss
	Push
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Loss:
		return "Loss"
	case Push:
		return "Push"
	default:
		return "Undetermined"
	}
}

// Option configures a Game during creation.
type Option func(*config)

type config struct {
	numDecks int
	deck     *deck.Deck
	listener Listener
}

// WithNumDecks sets the number of 52-card sets in the shoe. Default 1.
func WithNumDecks(n int) Option {
	return func(c *config) {
		c.numDecks = n
	}
}

// WithDeck supplies the deck to deal from, overriding the seed.
func WithDeck(d *deck.Deck) Option {
	return func(c *config) {
		c.deck = d
	}
}

// WithListener registers a callback for game events.
func WithListener(l Listener) Option {
	return func(c *config) {
		c.listener = l
	}
}

// Game drives a single hand from deal to resolved outcome. It is not safe for
// concurrent use and is meant to be discarded after resolution.
type Game struct {
	deck     *deck.Deck
	player   *Hand
	dealer   *Hand
	phase    Phase
	outcome  Outcome
	listener Listener
}

// New creates a game in PhaseDealing whose deck is seeded from seed.
func New(seed int64, opts ...Option) *Game {
	cfg := &config{numDecks: 1}
	for _, opt := range opts {
		opt(cfg)
	}

	d := cfg.deck
	if d == nil {
		d = deck.New(seed, cfg.numDecks)
	}

	return &Game{
		deck:     d,
		player:   NewHand(),
		dealer:   NewHand(),
		phase:    PhaseDealing,
		listener: cfg.listener,
	}
}

// StartHand deals player, dealer upcard, player, dealer hole card and settles
// naturals immediately.
func (g *Game) StartHand() error {
	if g.phase != PhaseDealing {
		return fmt.Errorf("%w: start hand during %s", ErrInvalidPhase, g.phase)
	}

	g.player.AddCard(g.deck.Deal())
	g.dealer.AddCard(g.deck.Deal())
	g.player.AddCard(g.deck.Deal())
	g.dealer.AddCard(g.deck.Deal())

	g.phase = PhasePlayerTurn
	g.emit(Event{Type: EventTypeHandStart})

	playerNatural, dealerNatural := g.player.IsBlackjack(), g.dealer.IsBlackjack()
	switch {
	case playerNatural && dealerNatural:
		g.resolve(Push)
	case playerNatural:
		g.resolve(Win)
	case dealerNatural:
		g.resolve(Loss)
	}
	return nil
}

// PlayerHit draws one card for the player. A bust loses the hand.
func (g *Game) PlayerHit() error {
	if g.phase != PhasePlayerTurn {
		return fmt.Errorf("%w: hit during %s", ErrInvalidPhase, g.phase)
	}

	card := g.deck.Deal()
	g.player.AddCard(card)
	g.emit(Event{Type: EventTypePlayerHit, Card: card})

	if g.player.IsBust() {
		g.resolve(Loss)
	}
	return nil
}

// PlayerStand ends the player's turn and plays the dealer's hand to
// resolution.
func (g *Game) PlayerStand() error {
	if g.phase != PhasePlayerTurn {
		return fmt.Errorf("%w: stand during %s", ErrInvalidPhase, g.phase)
	}

	g.phase = PhaseDealerTurn
	g.emit(Event{Type: EventTypePlayerStand})
	g.playDealer()
	return nil
}

// playDealer draws while the dealer total is below 17. Soft 17 stands: the
// rule looks only at the total.
func (g *Game) playDealer() {
	for g.dealer.Total() < DealerStandOn {
		card := g.deck.Deal()
		g.dealer.AddCard(card)
		g.emit(Event{Type: EventTypeDealerDraw, Card: card})
		if g.dealer.IsBust() {
			g.resolve(Win)
			return
		}
	}

	switch p, d := g.player.Total(), g.dealer.Total(); {
	case p > d:
		g.resolve(Win)
	case d > p:
		g.resolve(Loss)
	default:
		g.resolve(Push)
	}
}

func (g *Game) resolve(o Outcome) {
	g.outcome = o
	g.phase = PhaseResolved
	g.emit(Event{Type: EventTypeHandEnd})
}

func (g *Game) emit(e Event) {
	if g.listener == nil {
		return
	}
	e.Phase = g.phase
	e.PlayerTotal = g.player.Total()
	e.DealerTotal = g.dealer.Total()
	e.Outcome = g.outcome
	g.listener(e)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// IsOver reports whether the hand is resolved. It never reverts to false.
func (g *Game) IsOver() bool {
	return g.phase == PhaseResolved
}

// Outcome returns the result; it is Undetermined until IsOver.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Player returns the player's hand. Callers must treat it as read-only.
func (g *Game) Player() *Hand {
	return g.player
}

// Dealer returns the dealer's hand. Callers must treat it as read-only.
func (g *Game) Dealer() *Hand {
	return g.dealer
}

// Deck returns the deck the game deals from.
func (g *Game) Deck() *deck.Deck {
	return g.deck
}

// PlayerBlackjack reports a win with a natural, which pays 3:2. A 21 reached
// by hitting does not qualify.
func (g *Game) PlayerBlackjack() bool {
	return g.outcome == Win && g.player.IsBlackjack()
}
