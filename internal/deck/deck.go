package deck

import (
	rand "math/rand/v2"

	"github.com/lox/blackjackrl/internal/randutil"
)

// CardsPerDeck is the size of one complete set.
const CardsPerDeck = 52

// Deck is an ordered shoe of one or more 52-card sets. Cards are dealt from
// the end of the sequence. A Deck owns its generator and must not be shared
// between games.
type Deck struct {
	cards      []Card
	numDecks   int
	rng        *rand.Rand
	reshuffles int
}

// New builds numDecks complete sets and shuffles them with a generator seeded
// from seed. numDecks below one is treated as one.
func New(seed int64, numDecks int) *Deck {
	if numDecks < 1 {
		numDecks = 1
	}
	d := &Deck{
		cards:    make([]Card, 0, numDecks*CardsPerDeck),
		numDecks: numDecks,
		rng:      randutil.New(seed),
	}
	d.fill()
	d.Shuffle()
	return d
}

// Stacked returns a deck that deals order first, in the given order. Once the
// stacked cards run out it behaves like New(seed, numDecks) after exhaustion.
func Stacked(seed int64, numDecks int, order ...Card) *Deck {
	if numDecks < 1 {
		numDecks = 1
	}
	cards := make([]Card, len(order))
	for i, c := range order {
		cards[len(order)-1-i] = c
	}
	return &Deck{
		cards:    cards,
		numDecks: numDecks,
		rng:      randutil.New(seed),
	}
}

// Shuffle permutes the remaining cards using only the deck's own generator.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the last card. An empty deck is rebuilt and
// reshuffled first; the new order continues from the generator's current
// state rather than the original seed.
func (d *Deck) Deal() Card {
	if len(d.cards) == 0 {
		d.fill()
		d.Shuffle()
		d.reshuffles++
	}
	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card
}

// Remaining returns the number of cards left before the next rebuild.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// NumDecks returns the number of sets used for each rebuild.
func (d *Deck) NumDecks() int {
	return d.numDecks
}

// Reshuffles reports how many times the deck was rebuilt after running dry.
func (d *Deck) Reshuffles() int {
	return d.reshuffles
}

func (d *Deck) fill() {
	for range d.numDecks {
		for _, suit := range Suits {
			for rank := Ace; rank <= King; rank++ {
				d.cards = append(d.cards, NewCard(rank, suit))
			}
		}
	}
}
