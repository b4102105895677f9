// Package catalog is the static card table: per spec.md §1, a
// read-only data source consumed by the rest of the engine. It also
// hosts the card effect protocol (spec.md §4.1): each card's effect is
// a pure function of (state, context) to events-plus-optional-decision.
package catalog

import (
	"github.com/dominioneer/dominioneer/internal/events"
	"github.com/dominioneer/dominioneer/internal/state"
)

// CardType is one of the tags a card can carry; a card may have several
// (e.g. Witch is both "action" and "attack").
type CardType string

const (
	TypeAction    CardType = "action"
	TypeTreasure  CardType = "treasure"
	TypeVictory   CardType = "victory"
	TypeCurse     CardType = "curse"
	TypeAttack    CardType = "attack"
	TypeReaction  CardType = "reaction"
	TypeDuration  CardType = "duration"
)

// VariableVP is the sentinel victory-point value for cards like
// Gardens whose value depends on deck size rather than being fixed.
const VariableVP = -1

// EffectContext is everything a card's effect function may read.
// It never reads or writes the log directly: internal/command and
// internal/orchestrator supply ctx, collect the result, and stamp ids.
type EffectContext struct {
	State         *state.GameState
	Player        string
	Card          string
	Decision      *events.DecisionChoice
	Stage         string
	AttackTargets []string

	// DecidingPlayer is who actually answered the pending decision.
	// For most cards it equals Player (the card's owner decides their
	// own Chapel trash, say), but for attack-driven decisions like
	// Militia's discard it is the target, not the attacker.
	DecidingPlayer string

	// Metadata carries forward whatever the card's own prior
	// PendingDecision stashed there (spec.md §4.5), so a multi-step
	// effect can resume exactly where it suspended.
	Metadata map[string]string

	// Catalog lets an effect look up another card's cost or types
	// (Workshop's affordability filter, Throne Room's action-card
	// filter) without the catalog package depending on itself through
	// an import. Supplied by internal/command, which always holds one.
	Catalog *Catalog

	// Shuffle deterministically reorders a discard pile into a new deck
	// order when a draw runs the deck dry. Supplied by internal/command,
	// seeded from the session seed, so two engines replaying the same
	// command stream produce the same DECK_SHUFFLED events (spec.md §5).
	Shuffle func(cards []string) []string
}

// EffectResult is what a card effect hands back: events to append
// (without id/causedBy, filled in by the caller) and, optionally, a
// decision to suspend on.
type EffectResult struct {
	Events          []events.Event
	PendingDecision *events.DecisionRequest
}

// Effect is the card effect protocol: a pure function over ctx.
// Implementations must be deterministic given ctx; any randomness must
// already have been resolved into an explicit event (e.g. DeckShuffled
// carrying NewDeckOrder) before the effect runs.
type Effect func(ctx EffectContext) EffectResult

// Card is one static catalog entry.
type Card struct {
	Name   string
	Cost   int
	Types  []CardType
	VP     int // VariableVP for Gardens-style cards
	Effect Effect
}

// HasType reports whether the card carries the given type tag.
func (c Card) HasType(t CardType) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// Catalog is the full static card table, keyed by name.
type Catalog struct {
	cards map[string]Card
}

// Lookup returns the catalog entry for name, or false if it's not a
// recognised card (spec.md §7: "unknown card / not in catalog").
func (c *Catalog) Lookup(name string) (Card, bool) {
	card, ok := c.cards[name]
	return card, ok
}

// All returns every card name in the catalog.
func (c *Catalog) All() []string {
	names := make([]string, 0, len(c.cards))
	for name := range c.cards {
		names = append(names, name)
	}
	return names
}

// CountVP sums a player's victory points across the given cards,
// resolving VariableVP (Gardens: floor(deckSize/10)) against the total
// card count passed in deckSize.
func (c *Catalog) CountVP(cards []string, deckSize int) int {
	total := 0
	for _, name := range cards {
		card, ok := c.cards[name]
		if !ok {
			continue
		}
		if card.VP == VariableVP {
			total += deckSize / 10
			continue
		}
		total += card.VP
	}
	return total
}
