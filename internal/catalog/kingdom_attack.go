package catalog

import (
	"fmt"
	"strings"

	"github.com/dominioneer/dominioneer/internal/events"
)

// attackKingdomCards returns the kingdom cards routed through
// internal/orchestrator (spec.md §4.1, §4.4): their Effect is only ever
// invoked with ctx.AttackTargets already narrowed to the players who
// did not block.
func attackKingdomCards() map[string]Card {
	return map[string]Card{
		"Witch": {
			Name: "Witch", Cost: 5, Types: []CardType{TypeAction, TypeAttack},
			Effect: func(ctx EffectContext) EffectResult {
				evs := Draw(ctx, ctx.Player, 2)
				for _, target := range ctx.AttackTargets {
					evs = append(evs, &events.CardGained{Player: target, Card: "Curse", To: "discard"})
				}
				return EffectResult{Events: evs}
			},
		},
		"Moat": {
			Name: "Moat", Cost: 2, Types: []CardType{TypeAction, TypeReaction},
			Effect: func(ctx EffectContext) EffectResult {
				return EffectResult{Events: Draw(ctx, ctx.Player, 2)}
			},
		},
		"Militia": {
			Name: "Militia", Cost: 4, Types: []CardType{TypeAction, TypeAttack},
			Effect: militiaEffect,
		},
	}
}

const militiaDiscardStage = "militia_discard"

func militiaEffect(ctx EffectContext) EffectResult {
	switch ctx.Stage {
	case militiaDiscardStage:
		var evs []events.Event
		for _, c := range ctx.Decision.SelectedCards {
			evs = append(evs, &events.CardDiscarded{Player: ctx.DecidingPlayer, Card: c, From: "hand"})
		}
		remaining := splitCSV(ctx.Metadata["remainingTargets"])
		return militiaContinue(ctx, evs, remaining)
	default:
		evs := []events.Event{&events.CoinsModified{Delta: 2}}
		return militiaContinue(ctx, evs, ctx.AttackTargets)
	}
}

// militiaContinue finds the next target in line who actually holds more
// than 3 cards and raises a discard-down-to-3 decision for them,
// skipping targets who already qualify. Per spec.md §4.5, the remaining
// target list survives in the decision's metadata so each target's
// answer resumes the chain for the next one.
func militiaContinue(ctx EffectContext, evs []events.Event, targets []string) EffectResult {
	for len(targets) > 0 {
		target := targets[0]
		rest := targets[1:]

		hand := ctx.State.Players[target].Hand
		if len(hand) <= 3 {
			targets = rest
			continue
		}

		discardCount := len(hand) - 3
		return EffectResult{
			Events: evs,
			PendingDecision: &events.DecisionRequest{
				Player:          target,
				From:            "hand",
				Prompt:          fmt.Sprintf("Discard %d card(s), down to 3", discardCount),
				CardOptions:     append([]string(nil), hand...),
				Min:             discardCount,
				Max:             discardCount,
				CardBeingPlayed: "Militia",
				Stage:           militiaDiscardStage,
				Metadata:        map[string]string{"remainingTargets": strings.Join(rest, ",")},
			},
		}
	}
	return EffectResult{Events: evs}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
