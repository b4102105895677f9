package catalog

// New assembles the full static card table: the seven basic cards
// every game uses, plus the kingdom cards this module ships (a subset
// of the full 25/set-per-expansion Dominion card pool, chosen to cover
// every effect shape named in spec.md §4.1 — immediate, attack,
// reaction, and decision-continuation).
func New() *Catalog {
	cards := make(map[string]Card)
	for name, card := range basicCards() {
		cards[name] = card
	}
	for name, card := range simpleKingdomCards() {
		cards[name] = card
	}
	for name, card := range attackKingdomCards() {
		cards[name] = card
	}
	for name, card := range decisionKingdomCards() {
		cards[name] = card
	}
	return &Catalog{cards: cards}
}

// KingdomCardNames returns the kingdom (non-basic, non-curse) cards in
// this catalog, used to pick the ten piles for a new session.
func (c *Catalog) KingdomCardNames() []string {
	basic := map[string]bool{
		"Copper": true, "Silver": true, "Gold": true,
		"Estate": true, "Duchy": true, "Province": true, "Curse": true,
	}
	var names []string
	for name := range c.cards {
		if !basic[name] {
			names = append(names, name)
		}
	}
	return names
}
