// Package state holds the game state shape and the pure reducer that
// folds the event log into it. Nothing here performs I/O or logging;
// see internal/command for the orchestration layer that does.
package state

import "github.com/dominioneer/dominioneer/internal/events"

// Phase is one of the three phases a turn passes through.
type Phase string

const (
	PhaseAction  Phase = "action"
	PhaseBuy     Phase = "buy"
	PhaseCleanup Phase = "cleanup"
)

// SubPhase distinguishes the two kinds of external-input wait states
// from the ordinary in-turn flow.
type SubPhase string

const (
	SubPhaseNone             SubPhase = ""
	SubPhaseAwaitingReaction SubPhase = "awaiting_reaction"
	SubPhaseOpponentDecision SubPhase = "opponent_decision"
)

// TurnHistoryEntry records one action taken during the current turn,
// used to forbid un-playing a treasure after a purchase has happened.
type TurnHistoryEntry struct {
	Type string // "buy_card" | "end_phase"
	Card string // set when Type == "buy_card"
}

// ActiveEffect is a turn-scoped modifier registered by a card (e.g. a
// cost reduction), cleared on TURN_ENDED.
type ActiveEffect struct {
	Player     string
	EffectType string
	Source     string
	Parameters map[string]string
}

// ReactionContext records the reaction opportunity currently pending.
// The reducer fills only TriggeringCard, TriggeringPlayerID and
// TriggerType (from REACTION_OPPORTUNITY); the remaining fields are not
// set by the reducer, and internal/orchestrator keeps per-target progress
// in the pending decision's metadata instead.
type ReactionContext struct {
	TriggeringCard     string
	TriggeringPlayerID string
	TriggerType        string
	AllTargets         []string
	CurrentTargetIndex int
	BlockedTargets     []string
	OriginalCause      int
}

// LogEntry is one node of a nested display log, shaped like
// internal/logbuilder's Entry. It lives here so GameState can hold it
// directly without an import cycle; logbuilder.Build returns its own
// Entry type and nothing in this module fills GameState.Log.
type LogEntry struct {
	Kind     string // e.g. "play-card", "buy-card", "draw-card", "reveal-card"
	Player   string
	Cards    []string
	Count    int
	Children []*LogEntry
	CausedBy *int // the source event id this entry nests under, for bookkeeping
	EventID  int
}

// PlayerState is one player's zones and bookkeeping.
type PlayerState struct {
	Deck                []string
	Hand                []string
	Discard             []string
	InPlay              []string
	InPlaySourceIndices []int
	DeckTopRevealed     bool
}

func newPlayerState() *PlayerState {
	return &PlayerState{}
}

func (p *PlayerState) clone() *PlayerState {
	cp := *p
	cp.Deck = append([]string(nil), p.Deck...)
	cp.Hand = append([]string(nil), p.Hand...)
	cp.Discard = append([]string(nil), p.Discard...)
	cp.InPlay = append([]string(nil), p.InPlay...)
	cp.InPlaySourceIndices = append([]int(nil), p.InPlaySourceIndices...)
	return &cp
}

// AllCards returns every card the player owns, across all zones,
// hand+deck+discard+inPlay, for VP counting and conservation checks.
func (p *PlayerState) AllCards() []string {
	all := make([]string, 0, len(p.Deck)+len(p.Hand)+len(p.Discard)+len(p.InPlay))
	all = append(all, p.Deck...)
	all = append(all, p.Hand...)
	all = append(all, p.Discard...)
	all = append(all, p.InPlay...)
	return all
}

// GameState is the full projection of the event log at some point in
// time. It is never mutated in place; Apply returns a new value.
type GameState struct {
	PlayerOrder []string
	Players     map[string]*PlayerState

	Supply       map[string]int
	Trash        []string
	KingdomCards []string

	Turn         int
	Phase        Phase
	SubPhase     SubPhase
	ActivePlayer string

	Actions int
	Buys    int
	Coins   int

	PendingDecision      *events.DecisionRequest
	PendingChoiceEventID *int
	PendingReaction      *ReactionContext

	TurnHistory map[string][]TurnHistoryEntry

	ActiveEffects []ActiveEffect

	GameOver bool
	Winner   string
	Scores   map[string]int

	Seed *uint64

	Log []*LogEntry
}

// New returns an empty initial state, before GAME_INITIALIZED has been
// applied. Replaying a log from this value must reproduce the live
// state exactly (spec.md §3, replay equivalence).
func New() *GameState {
	return &GameState{
		Players:     make(map[string]*PlayerState),
		Supply:      make(map[string]int),
		TurnHistory: make(map[string][]TurnHistoryEntry),
	}
}

// clone performs a copy-on-write snapshot: every slice/map that Apply
// might mutate is deep-copied, every other field copied by value.
func (s *GameState) clone() *GameState {
	cp := *s
	cp.PlayerOrder = append([]string(nil), s.PlayerOrder...)
	cp.Players = make(map[string]*PlayerState, len(s.Players))
	for id, p := range s.Players {
		cp.Players[id] = p.clone()
	}
	cp.Supply = make(map[string]int, len(s.Supply))
	for k, v := range s.Supply {
		cp.Supply[k] = v
	}
	cp.Trash = append([]string(nil), s.Trash...)
	cp.KingdomCards = append([]string(nil), s.KingdomCards...)
	cp.TurnHistory = make(map[string][]TurnHistoryEntry, len(s.TurnHistory))
	for k, v := range s.TurnHistory {
		cp.TurnHistory[k] = append([]TurnHistoryEntry(nil), v...)
	}
	cp.ActiveEffects = append([]ActiveEffect(nil), s.ActiveEffects...)
	if s.PendingChoiceEventID != nil {
		id := *s.PendingChoiceEventID
		cp.PendingChoiceEventID = &id
	}
	if s.PendingReaction != nil {
		rc := *s.PendingReaction
		rc.AllTargets = append([]string(nil), s.PendingReaction.AllTargets...)
		rc.BlockedTargets = append([]string(nil), s.PendingReaction.BlockedTargets...)
		cp.PendingReaction = &rc
	}
	if s.Scores != nil {
		cp.Scores = make(map[string]int, len(s.Scores))
		for k, v := range s.Scores {
			cp.Scores[k] = v
		}
	}
	// Log entries are append-only and never mutated after creation, so a
	// shallow copy of the slice header is safe.
	cp.Log = append([]*LogEntry(nil), s.Log...)
	return &cp
}

// EmptySupplyPileCount returns how many of the kingdom-or-basic piles
// that exist in this session's supply have been fully depleted, used
// for the three-pile game-end rule.
func (s *GameState) EmptySupplyPileCount() int {
	count := 0
	for _, remaining := range s.Supply {
		if remaining == 0 {
			count++
		}
	}
	return count
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func removeFirst(slice []string, card string) ([]string, bool) {
	for i, c := range slice {
		if c == card {
			out := append([]string(nil), slice[:i]...)
			out = append(out, slice[i+1:]...)
			return out, true
		}
	}
	return slice, false
}

// removeTop removes and returns the last element ("top of deck") of
// slice, per spec.md §3: for the deck, the top is the tail.
func removeTop(slice []string) ([]string, string, bool) {
	if len(slice) == 0 {
		return slice, "", false
	}
	n := len(slice)
	return slice[:n-1], slice[n-1], true
}
