// Package decision resumes a suspended card effect once its pendingDecision
// has been answered (spec.md §4.5). It does not decide whether a decision
// is an attack/reaction prompt — internal/command routes those to
// internal/orchestrator instead — only ordinary card-effect continuations,
// including the Throne Room double-execution special case.
package decision

import (
	"strconv"

	"github.com/dominioneer/dominioneer/internal/catalog"
	"github.com/dominioneer/dominioneer/internal/events"
	"github.com/dominioneer/dominioneer/internal/state"
)

// Resume invokes whatever the pending decision's card-being-played needs
// to produce its continuation events. answeringPlayer is who submitted
// choice, which for an attack-driven decision (Militia) differs from the
// card's original owner.
func Resume(s *state.GameState, cat *catalog.Catalog, pending events.DecisionRequest, choice events.DecisionChoice, answeringPlayer string, shuffle func([]string) []string) []events.Event {
	if pending.CardBeingPlayed == "Throne Room" && pending.Stage == throneRoomChooseStage {
		return resumeThroneRoom(s, cat, pending, choice, answeringPlayer, shuffle)
	}
	if remaining, ok := pending.Metadata["throneRoomExecutionsRemaining"]; ok {
		return resumeThroneRoomInnerDecision(s, cat, pending, choice, answeringPlayer, shuffle, remaining)
	}

	card, ok := cat.Lookup(pending.CardBeingPlayed)
	if !ok {
		return nil
	}
	owner := pending.Player
	if card.HasType(catalog.TypeAttack) {
		owner = findAttacker(pending)
	}

	res := card.Effect(catalog.EffectContext{
		State:          s,
		Player:         owner,
		Card:           pending.CardBeingPlayed,
		Decision:       &choice,
		Stage:          pending.Stage,
		DecidingPlayer: answeringPlayer,
		Metadata:       pending.Metadata,
		Shuffle:        shuffle,
		Catalog:        cat,
	})
	evs := res.Events
	if res.PendingDecision != nil {
		evs = append(evs, &events.DecisionRequired{Decision: *res.PendingDecision})
	}
	return evs
}

const throneRoomChooseStage = "throne_room_choose"

// resumeThroneRoom plays the chosen action card's CARD_PLAYED once, then
// runs its effect twice in sequence, simulating the first execution's
// state change before invoking the second so a card like Smithy doesn't
// read stale hand/deck contents (spec.md §4.5, scenario 6).
func resumeThroneRoom(s *state.GameState, cat *catalog.Catalog, pending events.DecisionRequest, choice events.DecisionChoice, player string, shuffle func([]string) []string) []events.Event {
	if len(choice.SelectedCards) == 0 {
		return nil
	}
	chosen := choice.SelectedCards[0]
	card, ok := cat.Lookup(chosen)
	if !ok {
		return nil
	}

	evs := []events.Event{&events.CardPlayed{Player: player, Card: chosen}}

	first := card.Effect(catalog.EffectContext{State: s, Player: player, Card: chosen, Shuffle: shuffle, Catalog: cat})
	evs = append(evs, first.Events...)

	if first.PendingDecision != nil {
		pd := *first.PendingDecision
		if pd.Metadata == nil {
			pd.Metadata = map[string]string{}
		}
		pd.Metadata["throneRoomTarget"] = chosen
		pd.Metadata["throneRoomExecutionsRemaining"] = "1"
		pd.Metadata["throneRoomPlayer"] = player
		evs = append(evs, &events.DecisionRequired{Decision: pd})
		return evs
	}

	mid := state.ApplyAll(s, evs)
	second := card.Effect(catalog.EffectContext{State: mid, Player: player, Card: chosen, Shuffle: shuffle, Catalog: cat})
	evs = append(evs, second.Events...)
	if second.PendingDecision != nil {
		evs = append(evs, &events.DecisionRequired{Decision: *second.PendingDecision})
	}
	return evs
}

// resumeThroneRoomInnerDecision handles the rarer case where the card
// Throne Room is doubling itself raises a decision on its first
// execution (e.g. a hypothetical Throne-Room-of-Cellar): once that
// inner decision resolves, run the second execution.
func resumeThroneRoomInnerDecision(s *state.GameState, cat *catalog.Catalog, pending events.DecisionRequest, choice events.DecisionChoice, player string, shuffle func([]string) []string, remaining string) []events.Event {
	chosen := pending.Metadata["throneRoomTarget"]
	throneRoomPlayer := pending.Metadata["throneRoomPlayer"]
	card, ok := cat.Lookup(chosen)
	if !ok {
		return nil
	}

	inner := card.Effect(catalog.EffectContext{
		State: s, Player: throneRoomPlayer, Card: chosen,
		Decision: &choice, Stage: pending.Stage, DecidingPlayer: player,
		Shuffle: shuffle, Catalog: cat,
	})
	evs := inner.Events

	left, _ := strconv.Atoi(remaining)
	if left <= 0 || inner.PendingDecision != nil {
		if inner.PendingDecision != nil {
			evs = append(evs, &events.DecisionRequired{Decision: *inner.PendingDecision})
		}
		return evs
	}

	mid := state.ApplyAll(s, evs)
	second := card.Effect(catalog.EffectContext{State: mid, Player: throneRoomPlayer, Card: chosen, Shuffle: shuffle, Catalog: cat})
	evs = append(evs, second.Events...)
	if second.PendingDecision != nil {
		evs = append(evs, &events.DecisionRequired{Decision: *second.PendingDecision})
	}
	return evs
}

// findAttacker recovers who played the attack card behind an
// attack-driven decision (Militia) from its metadata, falling back to
// the decision's own player if absent.
func findAttacker(pending events.DecisionRequest) string {
	if a, ok := pending.Metadata["attacker"]; ok && a != "" {
		return a
	}
	return pending.Player
}
