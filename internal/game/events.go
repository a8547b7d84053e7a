package game

import "github.com/lox/blackjackrl/internal/deck"

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeHandStart   EventType = "hand_start"
	EventTypePlayerHit   EventType = "player_hit"
	EventTypePlayerStand EventType = "player_stand"
	EventTypeDealerDraw  EventType = "dealer_draw"
	EventTypeHandEnd     EventType = "hand_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event describes one transition of a Game. Card is set for player_hit and
// dealer_draw. Totals are taken after the transition.
type Event struct {
	Type        EventType
	Phase       Phase
	Card        deck.Card
	PlayerTotal int
	DealerTotal int
	Outcome     Outcome
}

// Listener receives game events synchronously, in order.
type Listener func(Event)
