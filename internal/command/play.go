package command

import (
	"github.com/dominioneer/dominioneer/internal/catalog"
	"github.com/dominioneer/dominioneer/internal/events"
	"github.com/dominioneer/dominioneer/internal/orchestrator"
	"github.com/dominioneer/dominioneer/internal/state"
)

// PlayAction plays an action card: costs one action, then runs the
// card's effect (directly, or through the attack orchestrator for
// attack-typed cards) (spec.md §4.1, §4.4).
func (h *Handler) PlayAction(s *state.GameState, player, card string) Result {
	if err := runValidators(s,
		noDecisionPending,
		isActivePlayer(player),
		inPhase(state.PhaseAction),
		hasActions(1),
		cardInHand(player, card),
		cardHasType(h.Catalog, card, catalog.TypeAction),
	); err != nil {
		return fail(err)
	}

	batch := []events.Event{
		&events.CardPlayed{Player: player, Card: card},
		&events.ActionsModified{Delta: -1},
	}
	mid := state.ApplyAll(s, batch)

	c, _ := h.Catalog.Lookup(card)
	if c.HasType(catalog.TypeAttack) {
		batch = append(batch, orchestrator.StartAttack(mid, h.Catalog, player, card, h.Shuffle)...)
		stamped := h.emit(batch, nil)
		orchestrator.PatchOriginalCause(stamped, stamped[0].EventID())
		return ok(stamped)
	}

	res := c.Effect(catalog.EffectContext{State: mid, Player: player, Card: card, Shuffle: h.Shuffle, Catalog: h.Catalog})
	batch = append(batch, res.Events...)
	if res.PendingDecision != nil {
		batch = append(batch, &events.DecisionRequired{Decision: *res.PendingDecision})
	}
	return ok(h.emit(batch, nil))
}

// PlayTreasure plays a treasure card for its coin value. Recorded in
// turnHistory only implicitly via the coin delta; UNPLAY_TREASURE keys
// off "no purchase yet", not off a specific treasure-play record.
func (h *Handler) PlayTreasure(s *state.GameState, player, card string) Result {
	if err := runValidators(s,
		noDecisionPending,
		isActivePlayer(player),
		cardInHand(player, card),
		cardHasType(h.Catalog, card, catalog.TypeTreasure),
	); err != nil {
		return fail(err)
	}
	if s.Phase != state.PhaseAction && s.Phase != state.PhaseBuy {
		return fail(ErrWrongPhase)
	}

	batch := []events.Event{&events.CardPlayed{Player: player, Card: card}}
	mid := state.ApplyAll(s, batch)
	c, _ := h.Catalog.Lookup(card)
	res := c.Effect(catalog.EffectContext{State: mid, Player: player, Card: card, Shuffle: h.Shuffle, Catalog: h.Catalog})
	batch = append(batch, res.Events...)
	return ok(h.emit(batch, nil))
}

// UnplayTreasure returns a treasure from inPlay to hand and reverses
// its coin value, legal only before any purchase this turn (spec.md §4.6).
func (h *Handler) UnplayTreasure(s *state.GameState, player, card string) Result {
	if err := runValidators(s,
		noDecisionPending,
		isActivePlayer(player),
		cardInPlay(player, card),
		cardHasType(h.Catalog, card, catalog.TypeTreasure),
		noPurchaseYet(player),
	); err != nil {
		return fail(err)
	}

	c, _ := h.Catalog.Lookup(card)
	res := c.Effect(catalog.EffectContext{State: s, Player: player, Card: card, Shuffle: h.Shuffle, Catalog: h.Catalog})

	batch := []events.Event{&events.CardReturnedToHand{Player: player, Card: card, From: "inPlay"}}
	for _, e := range res.Events {
		if cm, isCoins := e.(*events.CoinsModified); isCoins {
			batch = append(batch, &events.CoinsModified{Delta: -cm.Delta})
		}
	}
	return ok(h.emit(batch, nil))
}
