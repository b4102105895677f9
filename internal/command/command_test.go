package command

import (
	"testing"

	"github.com/dominioneer/dominioneer/internal/catalog"
	"github.com/dominioneer/dominioneer/internal/state"
	"go.uber.org/zap"
)

// deterministicShuffle reverses the slice, a fixed, order-sensitive
// permutation that's enough to exercise reshuffle code paths without
// needing real randomness in a test.
func deterministicShuffle(cards []string) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[len(cards)-1-i] = c
	}
	return out
}

func newHandler(t *testing.T) *Handler {
	t.Helper()
	return New(catalog.New(), deterministicShuffle, zap.NewNop())
}

func startedTwoPlayerGame(t *testing.T) (*Handler, *state.GameState) {
	t.Helper()
	h := newHandler(t)
	res := h.StartGame(StartGameParams{Players: []string{"alice", "bob"}})
	if !res.OK {
		t.Fatalf("StartGame failed: %v", res.Err)
	}
	s := state.ApplyAll(state.New(), res.Events)
	return h, s
}

func TestStartGameDealsOpeningHandsAndFirstTurn(t *testing.T) {
	h, s := startedTwoPlayerGame(t)
	_ = h

	if s.Turn != 1 || s.ActivePlayer != "alice" {
		t.Fatalf("expected turn 1 with alice active, got turn=%d active=%q", s.Turn, s.ActivePlayer)
	}
	for _, id := range []string{"alice", "bob"} {
		p := s.Players[id]
		if len(p.Hand) != 5 {
			t.Fatalf("expected %s to have a 5-card opening hand, got %d", id, len(p.Hand))
		}
		if len(p.Deck) != 5 {
			t.Fatalf("expected %s to have 5 cards left in deck, got %d", id, len(p.Deck))
		}
	}
}

func TestStartGameRejectsNoPlayers(t *testing.T) {
	h := newHandler(t)
	res := h.StartGame(StartGameParams{})
	if res.OK {
		t.Fatalf("expected StartGame to reject an empty player list")
	}
}

func TestPlayActionRejectsWrongPhase(t *testing.T) {
	h, s := startedTwoPlayerGame(t)
	s.Phase = state.PhaseBuy
	s.Players["alice"].Hand = []string{"Village"}

	res := h.PlayAction(s, "alice", "Village")
	if res.OK {
		t.Fatalf("expected PlayAction to reject during the buy phase")
	}
	if res.Err != ErrWrongPhase {
		t.Fatalf("expected ErrWrongPhase, got %v", res.Err)
	}
}

func TestPlayActionVillageDrawsAndGrantsActions(t *testing.T) {
	h, s := startedTwoPlayerGame(t)
	s.Players["alice"].Hand = []string{"Village"}
	s.Players["alice"].Deck = []string{"Copper"}

	res := h.PlayAction(s, "alice", "Village")
	if !res.OK {
		t.Fatalf("PlayAction(Village) failed: %v", res.Err)
	}
	next := state.ApplyAll(s, res.Events)
	if next.Actions != 2 { // 1 (turn start) - 1 (play) + 2 (village) = 2
		t.Fatalf("expected 2 actions remaining, got %d", next.Actions)
	}
	if len(next.Players["alice"].Hand) != 1 || next.Players["alice"].Hand[0] != "Copper" {
		t.Fatalf("expected alice to have drawn Copper into hand, got %v", next.Players["alice"].Hand)
	}
}

func TestBuyCardSpendsCoinsAndBuys(t *testing.T) {
	h, s := startedTwoPlayerGame(t)
	s.Phase = state.PhaseBuy
	s.Coins = 3
	s.Buys = 1

	res := h.BuyCard(s, "alice", "Silver")
	if !res.OK {
		t.Fatalf("BuyCard(Silver) failed: %v", res.Err)
	}
	next := state.ApplyAll(s, res.Events)
	if next.Coins != 0 || next.Buys != 0 {
		t.Fatalf("expected coins and buys spent, got coins=%d buys=%d", next.Coins, next.Buys)
	}
	if len(next.Players["alice"].Discard) != 1 || next.Players["alice"].Discard[0] != "Silver" {
		t.Fatalf("expected Silver gained to discard, got %v", next.Players["alice"].Discard)
	}
}

func TestBuyCardRejectsWhenUnaffordable(t *testing.T) {
	h, s := startedTwoPlayerGame(t)
	s.Phase = state.PhaseBuy
	s.Coins = 1
	s.Buys = 1

	res := h.BuyCard(s, "alice", "Silver")
	if res.OK {
		t.Fatalf("expected BuyCard to reject when coins are insufficient")
	}
	if res.Err != ErrInsufficient {
		t.Fatalf("expected ErrInsufficient, got %v", res.Err)
	}
}

func TestEndPhaseThenEndTurnCyclesActivePlayer(t *testing.T) {
	h, s := startedTwoPlayerGame(t)

	res := h.EndPhase(s, "alice")
	if !res.OK {
		t.Fatalf("EndPhase failed: %v", res.Err)
	}
	s = state.ApplyAll(s, res.Events)
	if s.Phase != state.PhaseBuy {
		t.Fatalf("expected buy phase, got %q", s.Phase)
	}

	res = h.EndTurn(s, "alice")
	if !res.OK {
		t.Fatalf("EndTurn failed: %v", res.Err)
	}
	s = state.ApplyAll(s, res.Events)
	if s.ActivePlayer != "bob" || s.Turn != 2 {
		t.Fatalf("expected bob's turn 2, got active=%q turn=%d", s.ActivePlayer, s.Turn)
	}
	if len(s.Players["alice"].Hand) != 5 {
		t.Fatalf("expected alice to draw a fresh 5-card hand, got %d", len(s.Players["alice"].Hand))
	}
}

func TestSupplyDepletionEndsGame(t *testing.T) {
	h, s := startedTwoPlayerGame(t)
	s.Supply["Province"] = 0

	res := h.EndTurn(s, "alice")
	if !res.OK {
		t.Fatalf("EndTurn failed: %v", res.Err)
	}
	next := state.ApplyAll(s, res.Events)
	if !next.GameOver {
		t.Fatalf("expected game to end once provinces are depleted")
	}
	if next.Winner == "" {
		t.Fatalf("expected a winner to be recorded")
	}
}

func TestWitchAttackSuspendsOnMoatThenResolves(t *testing.T) {
	h, s := startedTwoPlayerGame(t)
	s.Players["alice"].Hand = []string{"Witch"}
	s.Players["bob"].Hand = []string{"Moat"}
	s.Players["alice"].Deck = []string{"Copper", "Copper"}

	res := h.PlayAction(s, "alice", "Witch")
	if !res.OK {
		t.Fatalf("PlayAction(Witch) failed: %v", res.Err)
	}
	s = state.ApplyAll(s, res.Events)
	if s.PendingDecision == nil || s.PendingDecision.Player != "bob" {
		t.Fatalf("expected a pending reaction decision for bob, got %+v", s.PendingDecision)
	}

	revealRes := h.RevealReaction(s, "bob", "Moat")
	if !revealRes.OK {
		t.Fatalf("RevealReaction failed: %v", revealRes.Err)
	}
	s = state.ApplyAll(s, revealRes.Events)

	if s.Supply["Curse"] != 10 { // bob blocked, no curse gained
		t.Fatalf("expected bob's curse pile undisturbed after blocking, got %d", s.Supply["Curse"])
	}
	if s.PendingDecision != nil {
		t.Fatalf("expected no decision left pending once the only target resolved, got %+v", s.PendingDecision)
	}
}
