// Package command is the engine's single entry point (spec.md §4.6): one
// exported verb per legal player action, each validated and then either
// rejected or turned into a flat, causally-linked batch of events that
// the reducer folds into the next state.
package command

import (
	"fmt"

	"github.com/dominioneer/dominioneer/internal/catalog"
	"github.com/dominioneer/dominioneer/internal/causality"
	"github.com/dominioneer/dominioneer/internal/events"
	"github.com/dominioneer/dominioneer/internal/state"
	"go.uber.org/zap"
)

// Result is what every command returns: either a non-empty Events batch
// on success, or Err on rejection. Never both.
type Result struct {
	OK     bool
	Events []events.Event
	Err    error
}

func ok(evs []events.Event) Result   { return Result{OK: true, Events: evs} }
func fail(err error) Result          { return Result{OK: false, Err: err} }
func failf(f string, a ...any) Result { return fail(fmt.Errorf(f, a...)) }

// Handler threads the pieces every command needs: the static catalog,
// the causality tracker (so every emission gets ids stamped the same
// way), a deterministic shuffle function seeded from the session seed,
// and a logger for the handler's own operational log — never the game's
// display log, which internal/logbuilder derives from events alone.
type Handler struct {
	Catalog *catalog.Catalog
	Tracker *causality.Tracker
	Shuffle func(cards []string) []string
	Log     *zap.Logger
}

// New returns a Handler wired to cat, logging through log. shuffle
// should be a deterministic permutation seeded by the session's seed;
// see cmd/dominioneerd for how a session derives one.
func New(cat *catalog.Catalog, shuffle func([]string) []string, log *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Tracker: causality.New(),
		Shuffle: shuffle,
		Log:     log,
	}
}

// emit stamps ids on batch as one atomic emission rooted at rootCause
// (nil for a fresh command, per spec.md §4.5: every decision resolution
// is its own root) and logs the kinds emitted.
func (h *Handler) emit(batch []events.Event, rootCause *int) []events.Event {
	h.Tracker.Assign(batch, rootCause)
	if h.Log != nil {
		kinds := make([]string, len(batch))
		for i, e := range batch {
			kinds[i] = e.Kind()
		}
		h.Log.Debug("emitted events", zap.Strings("kinds", kinds))
	}
	return batch
}

func playerExists(s *state.GameState, player string) bool {
	_, ok := s.Players[player]
	return ok
}

// draw plans n CARD_DRAWN (and, if the deck runs dry, DECK_SHUFFLED)
// events for player against s, via the shared catalog.Draw planner.
func draw(h *Handler, s *state.GameState, player string, n int) []events.Event {
	return catalog.Draw(catalog.EffectContext{
		State: s, Player: player, Shuffle: h.Shuffle, Catalog: h.Catalog,
	}, player, n)
}

func handCount(s *state.GameState, player, card string) int {
	n := 0
	for _, c := range s.Players[player].Hand {
		if c == card {
			n++
		}
	}
	return n
}
