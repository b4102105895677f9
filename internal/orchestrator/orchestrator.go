// Package orchestrator implements the attack/reaction state machine
// (spec.md §4.4): Declaring -> AskingReaction(i) -> Resolved. It never
// assigns event ids itself — internal/command owns the causality
// tracker and stamps whatever batch this package returns — but it does
// need to know an attack's root id once assigned, so it can stash it
// in a suspended reaction decision's metadata for the resume path to
// read back. PatchOriginalCause bridges that one gap.
package orchestrator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dominioneer/dominioneer/internal/catalog"
	"github.com/dominioneer/dominioneer/internal/events"
	"github.com/dominioneer/dominioneer/internal/state"
)

// AutoReactionStage is the reserved pendingDecision.stage value carried
// by every reaction prompt, whether it is then answered through the
// generic SUBMIT_DECISION path or through REVEAL_REACTION/DECLINE_REACTION
// (spec.md §4.5).
const AutoReactionStage = "__auto_reaction__"

// AvailableReactions returns the cards in player's hand that carry the
// reaction type and so qualify to answer triggerType.
func AvailableReactions(s *state.GameState, cat *catalog.Catalog, player, triggerType string) []string {
	_ = triggerType // only "on_attack" exists in this catalog; kept for future trigger types.
	var out []string
	for _, c := range s.Players[player].Hand {
		if card, ok := cat.Lookup(c); ok && card.HasType(catalog.TypeReaction) {
			out = append(out, c)
		}
	}
	return out
}

func targetsOf(s *state.GameState, attacker string) []string {
	var out []string
	for _, id := range s.PlayerOrder {
		if id != attacker {
			out = append(out, id)
		}
	}
	return out
}

// StartAttack plans the event batch for playing an attack card. The
// returned events carry no ids yet; the caller must run them through
// the causality tracker as a single atomic emission (spec.md §4.6), and
// then call PatchOriginalCause if the batch suspends on a reaction.
func StartAttack(s *state.GameState, cat *catalog.Catalog, attacker, attackCard string, shuffle func([]string) []string) []events.Event {
	targets := targetsOf(s, attacker)
	if len(targets) == 0 {
		return runEffect(s, cat, attacker, attackCard, nil, shuffle)
	}

	declared := &events.AttackDeclared{Attacker: attacker, AttackCard: attackCard, Targets: targets}
	batch := []events.Event{declared}
	return continueFrom(s, cat, attacker, attackCard, targets, 0, nil, batch, shuffle)
}

// PatchOriginalCause fills in the "originalCause" metadata key on a
// trailing auto-reaction decision once the attack's root id is known,
// i.e. immediately after the caller assigns ids to the batch StartAttack
// returned. It is a no-op if the batch didn't suspend on a reaction.
func PatchOriginalCause(batch []events.Event, rootID int) {
	if len(batch) == 0 {
		return
	}
	dr, ok := batch[len(batch)-1].(*events.DecisionRequired)
	if !ok || dr.Decision.Stage != AutoReactionStage {
		return
	}
	if dr.Decision.Metadata == nil {
		dr.Decision.Metadata = map[string]string{}
	}
	dr.Decision.Metadata["originalCause"] = strconv.Itoa(rootID)
}

// continueFrom runs the AskingReaction(i) loop forward, either to
// suspension on the next target with an available reaction, or through
// to the attack card's effect once every target has been asked.
func continueFrom(s *state.GameState, cat *catalog.Catalog, attacker, attackCard string, allTargets []string, i int, blocked []string, batch []events.Event, shuffle func([]string) []string) []events.Event {
	for i < len(allTargets) {
		target := allTargets[i]
		reactions := AvailableReactions(s, cat, target, "on_attack")
		if len(reactions) == 0 {
			batch = append(batch, &events.AttackResolved{Target: target, Blocked: false})
			i++
			continue
		}

		batch = append(batch,
			&events.ReactionOpportunity{
				Player: target, TriggeringCard: attackCard,
				TriggeringPlayerID: attacker, TriggerType: "on_attack",
			},
			&events.DecisionRequired{Decision: events.DecisionRequest{
				Player:          target,
				From:            "hand",
				Prompt:          fmt.Sprintf("%s plays %s. Reveal a reaction?", attacker, attackCard),
				CardOptions:     reactions,
				Min:             0,
				Max:             1,
				CardBeingPlayed: attackCard,
				Stage:           AutoReactionStage,
				Metadata:        buildReactionMetadata(attacker, attackCard, allTargets, i, blocked),
			}},
		)
		return batch
	}

	unblocked := subtract(allTargets, blocked)
	batch = append(batch, runEffect(s, cat, attacker, attackCard, unblocked, shuffle)...)
	return batch
}

func runEffect(s *state.GameState, cat *catalog.Catalog, attacker, attackCard string, targets []string, shuffle func([]string) []string) []events.Event {
	card, ok := cat.Lookup(attackCard)
	if !ok {
		return nil
	}
	res := card.Effect(catalog.EffectContext{
		State: s, Player: attacker, Card: attackCard,
		AttackTargets: targets, Shuffle: shuffle, Catalog: cat,
	})
	evs := res.Events
	if res.PendingDecision != nil {
		evs = append(evs, &events.DecisionRequired{Decision: *res.PendingDecision})
	}
	return evs
}

func subtract(all, remove []string) []string {
	blocked := make(map[string]bool, len(remove))
	for _, r := range remove {
		blocked[r] = true
	}
	var out []string
	for _, id := range all {
		if !blocked[id] {
			out = append(out, id)
		}
	}
	return out
}

// ReactionState is the decoded form of an in-flight attack's
// continuation metadata, as stashed on a DECISION_REQUIRED (stage
// __auto_reaction__).
type ReactionState struct {
	Attacker      string
	AttackCard    string
	AllTargets    []string
	CurrentIndex  int
	Blocked       []string
	OriginalCause int
}

func buildReactionMetadata(attacker, attackCard string, allTargets []string, idx int, blocked []string) map[string]string {
	return map[string]string{
		"attacker":           attacker,
		"attackCard":         attackCard,
		"allTargets":         strings.Join(allTargets, ","),
		"currentTargetIndex": strconv.Itoa(idx),
		"blockedTargets":     strings.Join(blocked, ","),
	}
}

// ParseReactionState decodes the metadata map built by buildReactionMetadata
// (plus whatever PatchOriginalCause later added).
func ParseReactionState(md map[string]string) ReactionState {
	idx, _ := strconv.Atoi(md["currentTargetIndex"])
	cause, _ := strconv.Atoi(md["originalCause"])
	return ReactionState{
		Attacker:      md["attacker"],
		AttackCard:    md["attackCard"],
		AllTargets:    splitNonEmpty(md["allTargets"]),
		CurrentIndex:  idx,
		Blocked:       splitNonEmpty(md["blockedTargets"]),
		OriginalCause: cause,
	}
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Resolve produces the events for answering the current reaction
// prompt — reveal (blocks) or decline (doesn't) — and continues the
// state machine to the next target, or through to the attack's effect.
// The returned batch starts with REACTION_REVEALED/REACTION_PLAYED or
// REACTION_DECLINED and does not include its own root: the caller
// (internal/command) puts a DECISION_RESOLVED in front of it as the root
// of this command's emission.
func Resolve(s *state.GameState, cat *catalog.Catalog, rs ReactionState, reveal bool, revealedCard, revealingPlayer string, shuffle func([]string) []string) []events.Event {
	var batch []events.Event
	blocked := rs.Blocked
	if reveal {
		batch = append(batch,
			&events.ReactionRevealed{Player: revealingPlayer, Card: revealedCard},
			&events.ReactionPlayed{Player: revealingPlayer, Card: revealedCard},
			&events.AttackResolved{Target: revealingPlayer, Blocked: true},
		)
		blocked = append(append([]string(nil), blocked...), revealingPlayer)
	} else {
		batch = append(batch,
			&events.ReactionDeclined{Player: revealingPlayer},
			&events.AttackResolved{Target: revealingPlayer, Blocked: false},
		)
	}

	return continueFrom(s, cat, rs.Attacker, rs.AttackCard, rs.AllTargets, rs.CurrentIndex+1, blocked, batch, shuffle)
}
