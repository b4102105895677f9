package command

import (
	"github.com/dominioneer/dominioneer/internal/events"
	"github.com/dominioneer/dominioneer/internal/state"
)

// EndPhase advances action -> buy -> cleanup. Cleanup is handled by
// EndTurn directly (discard hand and in-play, draw a fresh hand), so
// EndPhase only ever moves action -> buy.
func (h *Handler) EndPhase(s *state.GameState, player string) Result {
	if err := runValidators(s, noDecisionPending, isActivePlayer(player)); err != nil {
		return fail(err)
	}
	if s.Phase != state.PhaseAction {
		return fail(ErrWrongPhase)
	}
	return ok(h.emit([]events.Event{&events.PhaseChanged{Phase: string(state.PhaseBuy)}}, nil))
}

// EndTurn discards the active player's hand and in-play area, draws a
// fresh hand of five, and starts the next player's turn — or, if the
// three-pile or Province-empty condition now holds, ends the game
// instead (spec.md §8, scenario 5: checked "at the end of the buying
// player's turn").
func (h *Handler) EndTurn(s *state.GameState, player string) Result {
	if err := runValidators(s, noDecisionPending, isActivePlayer(player)); err != nil {
		return fail(err)
	}

	var batch []events.Event
	batch = append(batch, &events.TurnEnded{Player: player, Turn: s.Turn})

	p := s.Players[player]
	for _, c := range p.InPlay {
		batch = append(batch, &events.CardDiscarded{Player: player, Card: c, From: "inPlay"})
	}
	for _, c := range p.Hand {
		batch = append(batch, &events.CardDiscarded{Player: player, Card: c, From: "hand"})
	}
	mid := state.ApplyAll(s, batch)
	batch = append(batch, draw(h, mid, player, 5)...)

	mid = state.ApplyAll(s, batch)

	if mid.Supply["Province"] == 0 || mid.EmptySupplyPileCount() >= 3 {
		reason := "three_piles_empty"
		if mid.Supply["Province"] == 0 {
			reason = "provinces_empty"
		}
		batch = append(batch, &events.GameEnded{
			Winner: winner(mid, h),
			Scores: scores(mid, h),
			Reason: reason,
		})
		return ok(h.emit(batch, nil))
	}

	next := nextPlayer(s, player)
	batch = append(batch, &events.TurnStarted{Turn: s.Turn + 1, Player: next})
	return ok(h.emit(batch, nil))
}

func nextPlayer(s *state.GameState, current string) string {
	for i, id := range s.PlayerOrder {
		if id == current {
			return s.PlayerOrder[(i+1)%len(s.PlayerOrder)]
		}
	}
	return current
}

func winner(s *state.GameState, h *Handler) string {
	sc := scores(s, h)
	best := ""
	bestScore := -1 << 31
	for _, id := range s.PlayerOrder {
		if sc[id] > bestScore {
			bestScore = sc[id]
			best = id
		}
	}
	return best
}

func scores(s *state.GameState, h *Handler) map[string]int {
	out := make(map[string]int, len(s.PlayerOrder))
	for _, id := range s.PlayerOrder {
		cards := s.Players[id].AllCards()
		out[id] = h.Catalog.CountVP(cards, len(cards))
	}
	return out
}
