package command

import (
	"github.com/dominioneer/dominioneer/internal/events"
	"github.com/dominioneer/dominioneer/internal/state"
)

// BuyCard spends a buy and the card's (possibly reduced) cost in coins
// to gain it to discard (spec.md §8, scenario 2).
func (h *Handler) BuyCard(s *state.GameState, player, card string) Result {
	if err := runValidators(s,
		noDecisionPending,
		isActivePlayer(player),
		inPhase(state.PhaseBuy),
		hasBuys(1),
		knownCard(h.Catalog, card),
		cardInSupply(card),
		cardAffordable(h.Catalog, card),
	); err != nil {
		return fail(err)
	}

	c, _ := h.Catalog.Lookup(card)
	cost := effectiveCost(s, c)

	batch := []events.Event{
		&events.CardGained{Player: player, Card: card, To: "discard"},
		&events.BuysModified{Delta: -1},
		&events.CoinsModified{Delta: -cost},
	}
	return ok(h.emit(batch, nil))
}
