// Package persist is the gob-based event-log codec (spec.md §6:
// "the canonical persisted form is the event log. A session resumes by
// replaying it from the empty state."). It performs no disk or network
// I/O itself — callers supply an io.Writer/io.Reader — following the
// teacher's SerializeToBytes/DeserializeFromBytes split between codec
// and storage.
package persist

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/dominioneer/dominioneer/internal/events"
)

func init() {
	gob.Register(&events.GameInitialized{})
	gob.Register(&events.InitialDeckDealt{})
	gob.Register(&events.InitialHandDrawn{})
	gob.Register(&events.TurnStarted{})
	gob.Register(&events.TurnEnded{})
	gob.Register(&events.PhaseChanged{})
	gob.Register(&events.CardDrawn{})
	gob.Register(&events.CardPlayed{})
	gob.Register(&events.CardDiscarded{})
	gob.Register(&events.CardTrashed{})
	gob.Register(&events.CardGained{})
	gob.Register(&events.CardRevealed{})
	gob.Register(&events.CardPeeked{})
	gob.Register(&events.CardPutOnDeck{})
	gob.Register(&events.CardReturnedToHand{})
	gob.Register(&events.DeckShuffled{})
	gob.Register(&events.ActionsModified{})
	gob.Register(&events.BuysModified{})
	gob.Register(&events.CoinsModified{})
	gob.Register(&events.EffectRegistered{})
	gob.Register(&events.CostModified{})
	gob.Register(&events.AttackDeclared{})
	gob.Register(&events.AttackResolved{})
	gob.Register(&events.ReactionOpportunity{})
	gob.Register(&events.ReactionRevealed{})
	gob.Register(&events.ReactionPlayed{})
	gob.Register(&events.ReactionDeclined{})
	gob.Register(&events.DecisionRequired{})
	gob.Register(&events.DecisionResolved{})
	gob.Register(&events.DecisionSkipped{})
	gob.Register(&events.UndoRequested{})
	gob.Register(&events.UndoApproved{})
	gob.Register(&events.UndoDenied{})
	gob.Register(&events.UndoExecuted{})
	gob.Register(&events.GameEnded{})
}

// Snapshot is the on-wire form of a persisted session: the full event
// log, nothing else — state is always re-derived by replay.
type Snapshot struct {
	Log []events.Event
}

// Encode writes log to w as a gob-encoded Snapshot.
func Encode(w io.Writer, log []events.Event) error {
	if err := gob.NewEncoder(w).Encode(Snapshot{Log: log}); err != nil {
		return fmt.Errorf("persist: encoding snapshot: %w", err)
	}
	return nil
}

// Decode reads a gob-encoded Snapshot from r and returns its event log.
func Decode(r io.Reader) ([]events.Event, error) {
	var snap Snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("persist: decoding snapshot: %w", err)
	}
	return snap.Log, nil
}

// ToBytes and FromBytes are the in-memory convenience wrappers the
// teacher's SerializeToBytes/DeserializeFromBytes pair offers.
func ToBytes(log []events.Event) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, log); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func FromBytes(data []byte) ([]events.Event, error) {
	return Decode(bytes.NewReader(data))
}
