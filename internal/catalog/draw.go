package catalog

import "github.com/dominioneer/dominioneer/internal/events"

// Draw plans the event sequence for drawing n cards for player,
// reshuffling the discard pile into the deck when the deck runs dry.
// It never mutates ctx.State; it only reads it to simulate the zone
// changes an effect wants to cause, the same way internal/command
// plans a command's event batch before the reducer actually folds it
// in. If both deck and discard run out, drawing simply stops short —
// spec.md §8: "no card is drawn; no error."
//
// Shuffling is the one place a card effect needs randomness; per
// spec.md §4.1 that randomness must be supplied by the caller (so the
// resulting DECK_SHUFFLED event is replay-exact), never generated
// inside the effect itself. ctx.Shuffle provides it.
func Draw(ctx EffectContext, player string, n int) []events.Event {
	p := ctx.State.Players[player]
	deck := append([]string(nil), p.Deck...)
	discard := append([]string(nil), p.Discard...)

	var out []events.Event
	for i := 0; i < n; i++ {
		if len(deck) == 0 {
			if len(discard) == 0 {
				break
			}
			shuffled := ctx.Shuffle(discard)
			out = append(out, &events.DeckShuffled{Player: player, NewDeckOrder: shuffled})
			deck = append([]string(nil), shuffled...)
			discard = nil
		}

		top := deck[len(deck)-1]
		deck = deck[:len(deck)-1]
		out = append(out, &events.CardDrawn{Player: player, Card: top})
	}
	return out
}
