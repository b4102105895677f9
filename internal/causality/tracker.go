// Package causality assigns ids to newly emitted events and answers
// questions about the causedBy forest over the event log: which events
// are root causes (valid undo checkpoints), which events descend from
// a given one, and how to truncate a log back to one.
package causality

import "github.com/dominioneer/dominioneer/internal/events"

// Tracker is a process-wide monotone id counter. It is not safe for
// concurrent use without external synchronization; spec.md §5 requires
// command handling to be serialized, which the command handler's
// caller is responsible for.
type Tracker struct {
	next int
}

// New returns a tracker starting at id 1.
func New() *Tracker {
	return &Tracker{next: 1}
}

// SyncTo resets the counter so the next assigned id is maxID+1,
// matching spec.md §6: "an id counter must be re-synced to
// max(eventId) + 1 on load."
func (t *Tracker) SyncTo(maxID int) {
	if maxID+1 > t.next {
		t.next = maxID + 1
	}
}

// Reset returns the counter to its starting value, used at session
// boundaries.
func (t *Tracker) Reset() {
	t.next = 1
}

// Rewind sets the counter to maxID+1 unconditionally, used after an
// undo truncates the log: unlike SyncTo, it may move the counter
// backward, since the events that pushed it forward no longer exist
// (spec.md §4.8: "reset the id counter to sync with log'").
func (t *Tracker) Rewind(maxID int) {
	t.next = maxID + 1
}

// Assign stamps ids onto a freshly built batch of events, all sharing
// one causal root. The first event becomes the root (its CausedBy is
// whatever the caller passed as rootCause, typically nil for a
// player-issued command, or an existing event id when continuing a
// decision); every subsequent event in the batch points at the first
// event's id, per spec.md §4.3: "The first event in a logically atomic
// emission is the root... all subsequent events in that emission point
// at the root."
func (t *Tracker) Assign(batch []events.Event, rootCause *int) {
	if len(batch) == 0 {
		return
	}

	rootID := t.next
	t.next++
	batch[0].SetMeta(events.Meta{ID: rootID, CausedBy: rootCause})

	for _, e := range batch[1:] {
		id := t.next
		t.next++
		root := rootID
		e.SetMeta(events.Meta{ID: id, CausedBy: &root})
	}
}

// IsRoot reports whether e has no cause.
func IsRoot(e events.Event) bool {
	return e.IsRoot()
}

// CausalChain returns the set of event ids that are id itself, plus
// every event transitively caused by it (spec.md §4.3).
func CausalChain(id int, log []events.Event) map[int]bool {
	chain := map[int]bool{id: true}
	// causedBy always precedes its effects in log order, but we scan
	// repeatedly until a fixed point so order assumptions aren't load
	// bearing here.
	changed := true
	for changed {
		changed = false
		for _, e := range log {
			if chain[e.EventID()] {
				continue
			}
			if cause := e.Cause(); cause != nil && chain[*cause] {
				chain[e.EventID()] = true
				changed = true
			}
		}
	}
	return chain
}

// RemoveEventChain implements "undo to event id": it returns the
// prefix of log up to and including the last event in id's causal
// chain, dropping everything after. If id is not present in log, log
// is returned unchanged (spec.md §4.3, §9: prefix-truncation, not
// set-subtraction).
func RemoveEventChain(id int, log []events.Event) []events.Event {
	found := false
	for _, e := range log {
		if e.EventID() == id {
			found = true
			break
		}
	}
	if !found {
		return log
	}

	chain := CausalChain(id, log)

	lastIdx := -1
	for i, e := range log {
		if chain[e.EventID()] {
			lastIdx = i
		}
	}
	if lastIdx < 0 {
		return log
	}
	return append([]events.Event(nil), log[:lastIdx+1]...)
}

// MaxEventID returns the highest event id present in log, or 0 if log
// is empty. Used to re-sync a Tracker after loading a persisted log.
func MaxEventID(log []events.Event) int {
	max := 0
	for _, e := range log {
		if e.EventID() > max {
			max = e.EventID()
		}
	}
	return max
}
