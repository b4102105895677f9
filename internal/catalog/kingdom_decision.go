package catalog

import "github.com/dominioneer/dominioneer/internal/events"

// decisionKingdomCards returns the kingdom cards whose effect suspends
// on a PendingDecision and resumes via internal/decision (spec.md §4.5).
// Each Effect is invoked once with ctx.Stage == "" to raise its first
// decision, then again with ctx.Stage set to whatever it put on that
// decision's Stage field, this time carrying the player's answer.
func decisionKingdomCards() map[string]Card {
	return map[string]Card{
		"Chapel": {
			Name: "Chapel", Cost: 2, Types: []CardType{TypeAction},
			Effect: chapelEffect,
		},
		"Cellar": {
			Name: "Cellar", Cost: 2, Types: []CardType{TypeAction},
			Effect: cellarEffect,
		},
		"Workshop": {
			Name: "Workshop", Cost: 3, Types: []CardType{TypeAction},
			Effect: workshopEffect,
		},
		"Throne Room": {
			Name: "Throne Room", Cost: 4, Types: []CardType{TypeAction},
			Effect: throneRoomEffect,
		},
	}
}

const (
	chapelTrashStage  = "chapel_trash"
	cellarDiscard     = "cellar_discard"
	workshopGainStage = "workshop_gain"
	throneRoomChoose  = "throne_room_choose"
)

func chapelEffect(ctx EffectContext) EffectResult {
	if ctx.Stage != chapelTrashStage {
		hand := ctx.State.Players[ctx.Player].Hand
		return EffectResult{PendingDecision: &events.DecisionRequest{
			Player:          ctx.Player,
			From:            "hand",
			Prompt:          "Trash up to 4 cards",
			CardOptions:     append([]string(nil), hand...),
			Min:             0,
			Max:             4,
			CardBeingPlayed: "Chapel",
			Stage:           chapelTrashStage,
		}}
	}

	var evs []events.Event
	for _, c := range ctx.Decision.SelectedCards {
		evs = append(evs, &events.CardTrashed{Player: ctx.Player, Card: c, From: "hand"})
	}
	return EffectResult{Events: evs}
}

func cellarEffect(ctx EffectContext) EffectResult {
	if ctx.Stage != cellarDiscard {
		hand := ctx.State.Players[ctx.Player].Hand
		return EffectResult{
			Events: []events.Event{&events.ActionsModified{Delta: 1}},
			PendingDecision: &events.DecisionRequest{
				Player:          ctx.Player,
				From:            "hand",
				Prompt:          "Discard any number of cards, then draw that many",
				CardOptions:     append([]string(nil), hand...),
				Min:             0,
				Max:             len(hand),
				CardBeingPlayed: "Cellar",
				Stage:           cellarDiscard,
			},
		}
	}

	var evs []events.Event
	for _, c := range ctx.Decision.SelectedCards {
		evs = append(evs, &events.CardDiscarded{Player: ctx.Player, Card: c, From: "hand"})
	}
	evs = append(evs, Draw(ctx, ctx.Player, len(ctx.Decision.SelectedCards))...)
	return EffectResult{Events: evs}
}

func workshopEffect(ctx EffectContext) EffectResult {
	if ctx.Stage != workshopGainStage {
		var affordable []string
		for name, remaining := range ctx.State.Supply {
			if remaining == 0 {
				continue
			}
			card, ok := ctx.Catalog.Lookup(name)
			if !ok {
				continue
			}
			if card.Cost <= 4 {
				affordable = append(affordable, name)
			}
		}
		return EffectResult{PendingDecision: &events.DecisionRequest{
			Player:          ctx.Player,
			From:            "supply",
			Prompt:          "Gain a card costing up to 4",
			CardOptions:     affordable,
			Min:             1,
			Max:             1,
			CardBeingPlayed: "Workshop",
			Stage:           workshopGainStage,
		}}
	}

	if len(ctx.Decision.SelectedCards) == 0 {
		return EffectResult{}
	}
	gained := ctx.Decision.SelectedCards[0]
	return EffectResult{Events: []events.Event{
		&events.CardGained{Player: ctx.Player, Card: gained, To: "discard"},
	}}
}

// throneRoomEffect only manages the choice of which action card to
// replay; the double execution itself is driven by internal/decision,
// which owns invoking the chosen card's own Effect twice. internal/command
// emits both batches under the DECISION_RESOLVED root of the command
// that answered the choice (spec.md §4.5, scenario 6).
func throneRoomEffect(ctx EffectContext) EffectResult {
	if ctx.Stage == throneRoomChoose {
		return EffectResult{}
	}

	var actionCards []string
	for _, c := range ctx.State.Players[ctx.Player].Hand {
		if card, ok := ctx.Catalog.Lookup(c); ok && card.HasType(TypeAction) {
			actionCards = append(actionCards, c)
		}
	}
	return EffectResult{PendingDecision: &events.DecisionRequest{
		Player:          ctx.Player,
		From:            "hand",
		Prompt:          "Choose an action card to play twice",
		CardOptions:     actionCards,
		Min:             1,
		Max:             1,
		CardBeingPlayed: "Throne Room",
		Stage:           throneRoomChoose,
	}}
}
