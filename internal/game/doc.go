// Package game implements the rules of single-player casino blackjack.
//
// A Game owns one player Hand, one dealer Hand and a Deck, and moves through
// a fixed sequence of phases:
//
//	Dealing --StartHand--> PlayerTurn --PlayerStand--> DealerTurn --> Resolved
//	                  \                \--PlayerHit (bust)-----------> Resolved
//	                   \--natural blackjack------------------------------> Resolved
//
// # Basic Usage
//
//	g := game.New(seed)
//	if err := g.StartHand(); err != nil {
//	    return err
//	}
//	for !g.IsOver() {
//	    if g.Player().Total() < 17 {
//	        err = g.PlayerHit()
//	    } else {
//	        err = g.PlayerStand()
//	    }
//	}
//	fmt.Println(g.Outcome())
//
// Operations called in the wrong phase return ErrInvalidPhase. Once a game is
// resolved it stays resolved; play the next hand with a new Game.
//
// # Deterministic Testing
//
// WithDeck injects a stacked deck so that tests control every card:
//
//	d := deck.Stacked(1, 1, deck.MustParseCards("AH 5C KS 7D")...)
//	g := game.New(0, game.WithDeck(d))
//
// WithListener receives an Event for every deal, decision and dealer draw,
// which makes the dealer's turn observable step by step.
package game
