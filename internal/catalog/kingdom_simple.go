package catalog

import "github.com/dominioneer/dominioneer/internal/events"

// simpleKingdomCards returns the kingdom cards whose effect is a fixed
// batch of resource/draw events with no further decision (spec.md §4.1:
// "events that apply immediately" with no pendingDecision).
func simpleKingdomCards() map[string]Card {
	return map[string]Card{
		"Village": {
			Name: "Village", Cost: 3, Types: []CardType{TypeAction},
			Effect: func(ctx EffectContext) EffectResult {
				evs := Draw(ctx, ctx.Player, 1)
				evs = append(evs, &events.ActionsModified{Delta: 2})
				return EffectResult{Events: evs}
			},
		},
		"Smithy": {
			Name: "Smithy", Cost: 4, Types: []CardType{TypeAction},
			Effect: func(ctx EffectContext) EffectResult {
				return EffectResult{Events: Draw(ctx, ctx.Player, 3)}
			},
		},
		"Market": {
			Name: "Market", Cost: 5, Types: []CardType{TypeAction},
			Effect: func(ctx EffectContext) EffectResult {
				evs := Draw(ctx, ctx.Player, 1)
				evs = append(evs,
					&events.ActionsModified{Delta: 1},
					&events.BuysModified{Delta: 1},
					&events.CoinsModified{Delta: 1},
				)
				return EffectResult{Events: evs}
			},
		},
		"Festival": {
			Name: "Festival", Cost: 5, Types: []CardType{TypeAction},
			Effect: func(ctx EffectContext) EffectResult {
				return EffectResult{Events: []events.Event{
					&events.ActionsModified{Delta: 2},
					&events.BuysModified{Delta: 1},
					&events.CoinsModified{Delta: 2},
				}}
			},
		},
		"Laboratory": {
			Name: "Laboratory", Cost: 5, Types: []CardType{TypeAction},
			Effect: func(ctx EffectContext) EffectResult {
				evs := Draw(ctx, ctx.Player, 2)
				evs = append(evs, &events.ActionsModified{Delta: 1})
				return EffectResult{Events: evs}
			},
		},
		"Council Room": {
			Name: "Council Room", Cost: 5, Types: []CardType{TypeAction},
			Effect: func(ctx EffectContext) EffectResult {
				evs := Draw(ctx, ctx.Player, 4)
				evs = append(evs, &events.BuysModified{Delta: 1})
				for _, opp := range otherPlayers(ctx) {
					evs = append(evs, Draw(ctx, opp, 1)...)
				}
				return EffectResult{Events: evs}
			},
		},
		"Gardens": {
			Name: "Gardens", Cost: 4, Types: []CardType{TypeVictory}, VP: VariableVP,
		},
		"Bridge": {
			Name: "Bridge", Cost: 4, Types: []CardType{TypeAction},
			Effect: func(ctx EffectContext) EffectResult {
				return EffectResult{Events: []events.Event{
					&events.BuysModified{Delta: 1},
					&events.CoinsModified{Delta: 1},
					&events.EffectRegistered{
						Player:     ctx.Player,
						EffectType: "cost_reduction",
						Source:     "Bridge",
						Parameters: map[string]string{"amount": "1"},
					},
				}}
			},
		},
	}
}

// otherPlayers returns every player id except ctx.Player, in turn order.
func otherPlayers(ctx EffectContext) []string {
	var others []string
	for _, id := range ctx.State.PlayerOrder {
		if id != ctx.Player {
			others = append(others, id)
		}
	}
	return others
}
