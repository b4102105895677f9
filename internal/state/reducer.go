package state

import "github.com/dominioneer/dominioneer/internal/events"

// Apply folds a single event into state, returning the next state.
// It never mutates its input. The switch is exhaustive over every
// event type in internal/events; the default branch panics so that
// adding a new event kind without a matching case fails loudly instead
// of silently no-opping (spec.md §9: "the reducer's exhaustiveness
// check is load-bearing").
func Apply(s *GameState, e events.Event) *GameState {
	next := s.clone()

	switch ev := e.(type) {
	case *events.GameInitialized:
		applyGameInitialized(next, ev)
	case *events.InitialDeckDealt:
		p := next.Players[ev.Player]
		p.Deck = append([]string(nil), ev.Cards...)
	case *events.InitialHandDrawn:
		p := next.Players[ev.Player]
		p.Deck = p.Deck[:len(p.Deck)-len(ev.Cards)]
		p.Hand = append(p.Hand, ev.Cards...)
	case *events.TurnStarted:
		next.Turn = ev.Turn
		next.ActivePlayer = ev.Player
		next.Phase = PhaseAction
		next.SubPhase = SubPhaseNone
		next.Actions = 1
		next.Buys = 1
		next.Coins = 0
		next.TurnHistory[ev.Player] = nil
	case *events.TurnEnded:
		next.ActiveEffects = nil
		next.TurnHistory[ev.Player] = nil
	case *events.PhaseChanged:
		next.Phase = Phase(ev.Phase)
		appendHistory(next, next.ActivePlayer, TurnHistoryEntry{Type: "end_phase"})
	case *events.CardDrawn:
		p := next.Players[ev.Player]
		p.Deck, _, _ = removeTop(p.Deck)
		p.Hand = append(p.Hand, ev.Card)
	case *events.CardPlayed:
		p := next.Players[ev.Player]
		idx := indexOf(p.Hand, ev.Card)
		if idx >= 0 {
			p.Hand = append(append([]string(nil), p.Hand[:idx]...), p.Hand[idx+1:]...)
		}
		p.InPlay = append(p.InPlay, ev.Card)
		p.InPlaySourceIndices = append(p.InPlaySourceIndices, idx)
	case *events.CardDiscarded:
		p := next.Players[ev.Player]
		switch ev.From {
		case "deck":
			p.Deck, _, _ = removeTop(p.Deck)
			p.Discard = append(p.Discard, ev.Card)
		case "inPlay":
			removeFromInPlay(p, ev.Card)
			p.Discard = append(p.Discard, ev.Card)
		default: // "hand"
			if removed, ok := removeFirst(p.Hand, ev.Card); ok {
				p.Hand = removed
			}
			p.Discard = append(p.Discard, ev.Card)
		}
	case *events.CardTrashed:
		p := next.Players[ev.Player]
		switch ev.From {
		case "deck":
			p.Deck, _, _ = removeTop(p.Deck)
		case "inPlay":
			removeFromInPlay(p, ev.Card)
		default:
			if removed, ok := removeFirst(p.Hand, ev.Card); ok {
				p.Hand = removed
			}
		}
		next.Trash = append(next.Trash, ev.Card)
	case *events.CardGained:
		if next.Supply[ev.Card] <= 0 {
			// Centralised depletion: a no-op, per spec.md §4.2.
			break
		}
		next.Supply[ev.Card]--
		p := next.Players[ev.Player]
		switch ev.To {
		case "deck":
			p.Deck = append(p.Deck, ev.Card)
		case "hand":
			p.Hand = append(p.Hand, ev.Card)
		case "trash":
			next.Trash = append(next.Trash, ev.Card)
		default: // "discard"
			p.Discard = append(p.Discard, ev.Card)
			appendHistory(next, ev.Player, TurnHistoryEntry{Type: "buy_card", Card: ev.Card})
		}
	case *events.CardRevealed:
		// Informational; no zone change.
	case *events.CardPeeked:
		// Informational; no zone change.
	case *events.CardPutOnDeck:
		p := next.Players[ev.Player]
		switch ev.From {
		case "hand":
			if removed, ok := removeFirst(p.Hand, ev.Card); ok {
				p.Hand = removed
			}
		case "discard":
			if removed, ok := removeFirst(p.Discard, ev.Card); ok {
				p.Discard = removed
			}
		}
		p.Deck = append(p.Deck, ev.Card)
		p.DeckTopRevealed = true
	case *events.CardReturnedToHand:
		p := next.Players[ev.Player]
		switch ev.From {
		case "inPlay":
			removeFromInPlay(p, ev.Card)
		case "discard":
			if removed, ok := removeFirst(p.Discard, ev.Card); ok {
				p.Discard = removed
			}
		}
		p.Hand = append(p.Hand, ev.Card)
	case *events.DeckShuffled:
		p := next.Players[ev.Player]
		p.Deck = append([]string(nil), ev.NewDeckOrder...)
		p.Discard = nil
		p.DeckTopRevealed = false
	case *events.ActionsModified:
		next.Actions = clampZero(next.Actions + ev.Delta)
	case *events.BuysModified:
		next.Buys = clampZero(next.Buys + ev.Delta)
	case *events.CoinsModified:
		next.Coins = clampZero(next.Coins + ev.Delta)
	case *events.EffectRegistered:
		next.ActiveEffects = append(next.ActiveEffects, ActiveEffect{
			Player:     ev.Player,
			EffectType: ev.EffectType,
			Source:     ev.Source,
			Parameters: ev.Parameters,
		})
	case *events.CostModified:
		// Informational only.
	case *events.AttackDeclared:
		// No direct state change; the attack's continuation state travels
		// in the metadata of the DECISION_REQUIRED that suspends it.
	case *events.AttackResolved:
		// Informational; blocked/unblocked bookkeeping lives in the
		// reaction decision's "blockedTargets" metadata.
	case *events.ReactionOpportunity:
		next.PendingReaction = &ReactionContext{
			TriggeringCard:     ev.TriggeringCard,
			TriggeringPlayerID: ev.TriggeringPlayerID,
			TriggerType:        ev.TriggerType,
		}
		next.SubPhase = SubPhaseAwaitingReaction
	case *events.ReactionRevealed:
		// Informational; PendingReaction is set by REACTION_OPPORTUNITY
		// and cleared by the DECISION_RESOLVED that answers it.
	case *events.ReactionPlayed:
		// Informational.
	case *events.ReactionDeclined:
		// Informational.
	case *events.DecisionRequired:
		d := ev.Decision
		next.PendingDecision = &d
		id := ev.ID
		next.PendingChoiceEventID = &id
		if d.Player != next.ActivePlayer {
			next.SubPhase = SubPhaseOpponentDecision
		}
	case *events.DecisionResolved:
		next.PendingDecision = nil
		next.PendingChoiceEventID = nil
		next.PendingReaction = nil
		if next.SubPhase == SubPhaseOpponentDecision {
			next.SubPhase = SubPhaseNone
		}
	case *events.DecisionSkipped:
		next.PendingDecision = nil
		next.PendingChoiceEventID = nil
		next.PendingReaction = nil
		next.SubPhase = SubPhaseNone
	case *events.UndoRequested, *events.UndoApproved, *events.UndoDenied, *events.UndoExecuted:
		// Meta-events the reducer treats as no-ops; they exist for audit
		// per spec.md §4.2.
	case *events.GameEnded:
		next.GameOver = true
		next.Winner = ev.Winner
		next.Scores = make(map[string]int, len(ev.Scores))
		for k, v := range ev.Scores {
			next.Scores[k] = v
		}
	default:
		panic("state.Apply: unhandled event type")
	}

	return next
}

// ApplyAll folds a sequence of events into state in order.
func ApplyAll(s *GameState, evs []events.Event) *GameState {
	for _, e := range evs {
		s = Apply(s, e)
	}
	return s
}

func applyGameInitialized(next *GameState, ev *events.GameInitialized) {
	next.PlayerOrder = append([]string(nil), ev.Players...)
	next.Players = make(map[string]*PlayerState, len(ev.Players))
	for _, id := range ev.Players {
		next.Players[id] = newPlayerState()
	}
	next.Supply = make(map[string]int, len(ev.Supply))
	for k, v := range ev.Supply {
		next.Supply[k] = v
	}
	next.KingdomCards = append([]string(nil), ev.KingdomCards...)
	next.Seed = ev.Seed
	next.TurnHistory = make(map[string][]TurnHistoryEntry, len(ev.Players))
	next.Phase = PhaseAction
}

func appendHistory(s *GameState, player string, entry TurnHistoryEntry) {
	s.TurnHistory[player] = append(s.TurnHistory[player], entry)
}

// removeFromInPlay removes the first occurrence of card from p.InPlay,
// keeping InPlaySourceIndices the same length (spec.md §3 invariant:
// inPlay.length == inPlaySourceIndices.length).
func removeFromInPlay(p *PlayerState, card string) {
	idx := indexOf(p.InPlay, card)
	if idx < 0 {
		return
	}
	p.InPlay = append(append([]string(nil), p.InPlay[:idx]...), p.InPlay[idx+1:]...)
	p.InPlaySourceIndices = append(append([]int(nil), p.InPlaySourceIndices[:idx]...), p.InPlaySourceIndices[idx+1:]...)
}

func indexOf(slice []string, card string) int {
	for i, c := range slice {
		if c == card {
			return i
		}
	}
	return -1
}
