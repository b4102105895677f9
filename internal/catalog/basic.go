package catalog

import "github.com/dominioneer/dominioneer/internal/events"

func treasureEffect(coins int) Effect {
	return func(ctx EffectContext) EffectResult {
		return EffectResult{Events: []events.Event{
			&events.CoinsModified{Delta: coins},
		}}
	}
}

func basicCards() map[string]Card {
	cards := map[string]Card{
		"Copper": {Name: "Copper", Cost: 0, Types: []CardType{TypeTreasure}, VP: 0, Effect: treasureEffect(1)},
		"Silver": {Name: "Silver", Cost: 3, Types: []CardType{TypeTreasure}, VP: 0, Effect: treasureEffect(2)},
		"Gold":   {Name: "Gold", Cost: 6, Types: []CardType{TypeTreasure}, VP: 0, Effect: treasureEffect(3)},

		"Estate":   {Name: "Estate", Cost: 2, Types: []CardType{TypeVictory}, VP: 1},
		"Duchy":    {Name: "Duchy", Cost: 5, Types: []CardType{TypeVictory}, VP: 3},
		"Province": {Name: "Province", Cost: 8, Types: []CardType{TypeVictory}, VP: 6},

		"Curse": {Name: "Curse", Cost: 0, Types: []CardType{TypeCurse}, VP: -1},
	}
	return cards
}

// BasicSupplyCount returns the standard starting count for a basic
// card pile given the number of players, per spec.md §6.
func BasicSupplyCount(card string, numPlayers int) int {
	switch card {
	case "Copper":
		return 60 - 7*numPlayers
	case "Silver":
		return 40
	case "Gold":
		return 30
	case "Curse":
		return (numPlayers - 1) * 10
	case "Estate", "Duchy", "Province":
		if numPlayers <= 2 {
			return 8
		}
		return 12
	default:
		return 0
	}
}

// KingdomSupplyCount returns the standard starting count for a kingdom
// (non-basic) card pile given the number of players: 10 normally, 8 for
// cards worth victory points (Gardens) to match the victory-pile sizing
// convention, scaled by numPlayers the way BasicSupplyCount scales the
// Estate/Duchy/Province piles.
func KingdomSupplyCount(card string, numPlayers int) int {
	if card == "Gardens" {
		if numPlayers <= 2 {
			return 8
		}
		return 12
	}
	return 10
}
