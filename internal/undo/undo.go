// Package undo implements the undo engine (spec.md §4.8): finding valid
// undo checkpoints and truncating the log atomically once a cooperative
// request has been approved.
package undo

import (
	"github.com/dominioneer/dominioneer/internal/causality"
	"github.com/dominioneer/dominioneer/internal/events"
)

// Checkpoints returns every root event in log, in order — the only
// valid targets for REQUEST_UNDO (spec.md §4.8).
func Checkpoints(log []events.Event) []events.Event {
	var roots []events.Event
	for _, e := range log {
		if e.IsRoot() {
			roots = append(roots, e)
		}
	}
	return roots
}

// Execute truncates log back to toEventID's causal chain and re-syncs
// tracker so the next assigned id doesn't collide with anything still
// present. It returns the truncated log; the caller re-derives state by
// replaying it from scratch (state.ApplyAll(state.New(), truncated)).
func Execute(tracker *causality.Tracker, log []events.Event, toEventID int) []events.Event {
	truncated := causality.RemoveEventChain(toEventID, log)
	tracker.Rewind(causality.MaxEventID(truncated))
	return truncated
}
