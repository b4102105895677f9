package command

import (
	"github.com/dominioneer/dominioneer/internal/events"
	"github.com/dominioneer/dominioneer/internal/state"
	"github.com/dominioneer/dominioneer/internal/undo"
)

// RequestUndo starts the cooperative undo protocol: any player may ask
// to roll the log back to a root event (spec.md §4.8).
func (h *Handler) RequestUndo(s *state.GameState, requestedBy string, toEventID int) Result {
	if !playerExists(s, requestedBy) {
		return fail(ErrWrongPlayer)
	}
	return ok(h.emit([]events.Event{
		&events.UndoRequested{RequestedBy: requestedBy, ToEventID: toEventID},
	}, nil))
}

// ApproveUndo records the other player's consent. Truncation is
// performed by the caller (see Undo below), since it operates on the
// log itself, not on projected state.
func (h *Handler) ApproveUndo(s *state.GameState, approvedBy string) Result {
	return ok(h.emit([]events.Event{&events.UndoApproved{ApprovedBy: approvedBy}}, nil))
}

// DenyUndo rejects a pending undo request; the log is left untouched.
func (h *Handler) DenyUndo(s *state.GameState, deniedBy string) Result {
	return ok(h.emit([]events.Event{&events.UndoDenied{DeniedBy: deniedBy}}, nil))
}

// Undo performs the actual truncation once an undo has been approved
// (or, in a single-player session, immediately): it truncates the log
// to the prefix ending at toEventID's causal chain, then appends
// UNDO_EXECUTED to record the rollback (spec.md §4.8). It returns the
// new, truncated log; callers re-derive state with state.ApplyAll from
// the empty state.
func (h *Handler) Undo(log []events.Event, toEventID int) []events.Event {
	truncated := undo.Execute(h.Tracker, log, toEventID)

	executed := &events.UndoExecuted{ToEventID: toEventID}
	h.Tracker.Assign([]events.Event{executed}, nil)

	return append(truncated, executed)
}
