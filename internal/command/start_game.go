package command

import (
	"sort"

	"github.com/dominioneer/dominioneer/internal/catalog"
	"github.com/dominioneer/dominioneer/internal/events"
)

// StartGameParams mirrors the config surface of spec.md §6. Zero-value
// fields fall back to standard-rules defaults.
type StartGameParams struct {
	Players            []string
	KingdomCards       []string // defaults to the first ten catalog kingdom cards, alphabetically
	Supply             map[string]int
	Seed               *uint64
	StartingDeckRecipe []string // defaults to 7 Copper + 3 Estate
}

var defaultStartingDeck = []string{
	"Copper", "Copper", "Copper", "Copper", "Copper", "Copper", "Copper",
	"Estate", "Estate", "Estate",
}

// StartGame begins a new session: deals starting decks, draws opening
// hands, and enters turn 1 for the first player (spec.md §4.6, §6).
func (h *Handler) StartGame(p StartGameParams) Result {
	if len(p.Players) == 0 {
		return failf("at least one player is required")
	}

	kingdom := p.KingdomCards
	if len(kingdom) == 0 {
		kingdom = defaultKingdom(h.Catalog)
	}

	supply := p.Supply
	if supply == nil {
		supply = defaultSupply(kingdom, len(p.Players))
	}

	recipe := p.StartingDeckRecipe
	if recipe == nil {
		recipe = defaultStartingDeck
	}

	var batch []events.Event
	batch = append(batch, &events.GameInitialized{
		Players:      append([]string(nil), p.Players...),
		KingdomCards: kingdom,
		Supply:       supply,
		Seed:         p.Seed,
	})

	for _, player := range p.Players {
		deck := h.Shuffle(append([]string(nil), recipe...))
		batch = append(batch, &events.InitialDeckDealt{Player: player, Cards: deck})
		batch = append(batch, &events.InitialHandDrawn{Player: player, Cards: lastN(deck, 5)})
	}

	batch = append(batch, &events.TurnStarted{Turn: 1, Player: p.Players[0]})

	return ok(h.emit(batch, nil))
}

func defaultKingdom(cat *catalog.Catalog) []string {
	names := cat.KingdomCardNames()
	sort.Strings(names)
	if len(names) > 10 {
		names = names[:10]
	}
	return names
}

func defaultSupply(kingdom []string, numPlayers int) map[string]int {
	supply := map[string]int{
		"Copper":   catalog.BasicSupplyCount("Copper", numPlayers),
		"Silver":   catalog.BasicSupplyCount("Silver", numPlayers),
		"Gold":     catalog.BasicSupplyCount("Gold", numPlayers),
		"Estate":   catalog.BasicSupplyCount("Estate", numPlayers),
		"Duchy":    catalog.BasicSupplyCount("Duchy", numPlayers),
		"Province": catalog.BasicSupplyCount("Province", numPlayers),
		"Curse":    catalog.BasicSupplyCount("Curse", numPlayers),
	}
	for _, card := range kingdom {
		supply[card] = catalog.KingdomSupplyCount(card, numPlayers)
	}
	return supply
}

// lastN returns the last n elements of cards in order, matching how
// InitialHandDrawn draws from the freshly dealt (already shuffled)
// deck's tail, the same convention removeTop uses elsewhere.
func lastN(cards []string, n int) []string {
	if len(cards) <= n {
		return append([]string(nil), cards...)
	}
	return append([]string(nil), cards[len(cards)-n:]...)
}
