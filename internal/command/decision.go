package command

import (
	"fmt"

	"github.com/dominioneer/dominioneer/internal/decision"
	"github.com/dominioneer/dominioneer/internal/events"
	"github.com/dominioneer/dominioneer/internal/orchestrator"
	"github.com/dominioneer/dominioneer/internal/state"
)

// SubmitDecision answers the pending decision (spec.md §4.5). Auto-reaction
// prompts (stage == "__auto_reaction__") are routed to the attack
// orchestrator; everything else resumes through internal/decision.
func (h *Handler) SubmitDecision(s *state.GameState, player string, choice events.DecisionChoice) Result {
	if s.PendingDecision == nil {
		return fail(ErrNotPending)
	}
	pending := *s.PendingDecision
	if pending.Player != player {
		return fail(ErrWrongPlayer)
	}
	if err := validateChoice(pending, choice); err != nil {
		return fail(err)
	}

	batch := []events.Event{&events.DecisionResolved{Player: player, Choice: choice}}

	if pending.Stage == orchestrator.AutoReactionStage {
		rs := orchestrator.ParseReactionState(pending.Metadata)
		reveal := len(choice.SelectedCards) > 0
		var revealed string
		if reveal {
			revealed = choice.SelectedCards[0]
		}
		batch = append(batch, orchestrator.Resolve(s, h.Catalog, rs, reveal, revealed, player, h.Shuffle)...)
		return ok(h.emit(batch, nil))
	}

	batch = append(batch, decision.Resume(s, h.Catalog, pending, choice, player, h.Shuffle)...)
	return ok(h.emit(batch, nil))
}

func validateChoice(pending events.DecisionRequest, choice events.DecisionChoice) error {
	if len(choice.SelectedCards) < pending.Min || len(choice.SelectedCards) > pending.Max {
		return fmt.Errorf("selection count %d outside [%d, %d]", len(choice.SelectedCards), pending.Min, pending.Max)
	}
	if pending.CardOptions != nil {
		allowed := make(map[string]int, len(pending.CardOptions))
		for _, c := range pending.CardOptions {
			allowed[c]++
		}
		for _, c := range choice.SelectedCards {
			if allowed[c] == 0 {
				return ErrCardWrongZone
			}
			allowed[c]--
		}
	}
	return nil
}

// RevealReaction answers a pending reaction prompt by revealing card,
// blocking the attack for the caller. Emits DECISION_RESOLVED as its
// root, same as SUBMIT_DECISION, so the pending decision/reaction
// bookkeeping clears the same way regardless of which verb answered it.
func (h *Handler) RevealReaction(s *state.GameState, player, card string) Result {
	rs, err := h.currentReaction(s, player)
	if err != nil {
		return fail(err)
	}
	if !contains(orchestrator.AvailableReactions(s, h.Catalog, player, "on_attack"), card) {
		return fail(ErrCardWrongZone)
	}
	batch := []events.Event{&events.DecisionResolved{Player: player, Choice: events.DecisionChoice{SelectedCards: []string{card}}}}
	batch = append(batch, orchestrator.Resolve(s, h.Catalog, rs, true, card, player, h.Shuffle)...)
	return ok(h.emit(batch, nil))
}

// DeclineReaction answers a pending reaction prompt without blocking.
func (h *Handler) DeclineReaction(s *state.GameState, player string) Result {
	rs, err := h.currentReaction(s, player)
	if err != nil {
		return fail(err)
	}
	batch := []events.Event{&events.DecisionResolved{Player: player}}
	batch = append(batch, orchestrator.Resolve(s, h.Catalog, rs, false, "", player, h.Shuffle)...)
	return ok(h.emit(batch, nil))
}

func (h *Handler) currentReaction(s *state.GameState, player string) (orchestrator.ReactionState, error) {
	if s.PendingDecision == nil || s.PendingDecision.Stage != orchestrator.AutoReactionStage {
		return orchestrator.ReactionState{}, ErrNotPending
	}
	if s.PendingDecision.Player != player {
		return orchestrator.ReactionState{}, ErrWrongPlayer
	}
	return orchestrator.ParseReactionState(s.PendingDecision.Metadata), nil
}

func contains(list []string, v string) bool {
	for _, c := range list {
		if c == v {
			return true
		}
	}
	return false
}
