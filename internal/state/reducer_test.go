package state

import (
	"testing"

	"github.com/dominioneer/dominioneer/internal/events"
)

func initialized(t *testing.T) *GameState {
	t.Helper()
	ev := &events.GameInitialized{
		Players:      []string{"alice", "bob"},
		Supply:       map[string]int{"Copper": 46, "Estate": 8, "Village": 10},
		KingdomCards: []string{"Village"},
	}
	return Apply(New(), ev)
}

func TestApplyGameInitializedSeedsPlayers(t *testing.T) {
	s := initialized(t)
	if len(s.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(s.Players))
	}
	if s.Phase != PhaseAction {
		t.Fatalf("expected initial phase to be action, got %q", s.Phase)
	}
	if s.Supply["Copper"] != 46 {
		t.Fatalf("expected supply copper 46, got %d", s.Supply["Copper"])
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := initialized(t)
	beforeActions := before.Actions

	after := Apply(before, &events.ActionsModified{Delta: 3})

	if before.Actions != beforeActions {
		t.Fatalf("expected Apply not to mutate its input, original actions changed to %d", before.Actions)
	}
	if after.Actions != beforeActions+3 {
		t.Fatalf("expected new state actions to be %d, got %d", beforeActions+3, after.Actions)
	}
}

func TestInitialDeckAndHandDrawConsistent(t *testing.T) {
	s := initialized(t)
	deck := []string{"Copper", "Copper", "Copper", "Copper", "Copper", "Copper", "Copper", "Estate", "Estate", "Estate"}
	s = Apply(s, &events.InitialDeckDealt{Player: "alice", Cards: deck})
	hand := deck[len(deck)-5:]
	s = Apply(s, &events.InitialHandDrawn{Player: "alice", Cards: hand})

	p := s.Players["alice"]
	if len(p.Deck) != 5 {
		t.Fatalf("expected 5 cards left in deck after drawing opening hand, got %d", len(p.Deck))
	}
	if len(p.Hand) != 5 {
		t.Fatalf("expected opening hand of 5 cards, got %d", len(p.Hand))
	}
}

func TestCardPlayedMovesHandToInPlayKeepingParallelIndices(t *testing.T) {
	s := initialized(t)
	s.Players["alice"].Hand = []string{"Village", "Copper"}

	s = Apply(s, &events.CardPlayed{Player: "alice", Card: "Village"})

	p := s.Players["alice"]
	if len(p.Hand) != 1 || p.Hand[0] != "Copper" {
		t.Fatalf("expected Village removed from hand, got %v", p.Hand)
	}
	if len(p.InPlay) != 1 || p.InPlay[0] != "Village" {
		t.Fatalf("expected Village in play, got %v", p.InPlay)
	}
	if len(p.InPlaySourceIndices) != len(p.InPlay) {
		t.Fatalf("expected inPlaySourceIndices to stay parallel to inPlay, got %d vs %d",
			len(p.InPlaySourceIndices), len(p.InPlay))
	}
}

func TestCardDiscardedFromInPlayKeepsParallelSlices(t *testing.T) {
	s := initialized(t)
	s.Players["alice"].Hand = []string{"Village", "Smithy"}
	s = Apply(s, &events.CardPlayed{Player: "alice", Card: "Village"})
	s = Apply(s, &events.CardPlayed{Player: "alice", Card: "Smithy"})

	s = Apply(s, &events.CardDiscarded{Player: "alice", Card: "Village", From: "inPlay"})

	p := s.Players["alice"]
	if len(p.InPlay) != 1 || p.InPlay[0] != "Smithy" {
		t.Fatalf("expected only Smithy left in play, got %v", p.InPlay)
	}
	if len(p.InPlaySourceIndices) != len(p.InPlay) {
		t.Fatalf("expected inPlaySourceIndices to stay parallel after discard, got %d vs %d",
			len(p.InPlaySourceIndices), len(p.InPlay))
	}
	if len(p.Discard) != 1 || p.Discard[0] != "Village" {
		t.Fatalf("expected Village in discard, got %v", p.Discard)
	}
}

func TestCardGainedDecrementsSupplyAndNoOpsWhenDepleted(t *testing.T) {
	s := initialized(t)
	s.Supply["Village"] = 1

	s = Apply(s, &events.CardGained{Player: "alice", Card: "Village", To: "discard"})
	if s.Supply["Village"] != 0 {
		t.Fatalf("expected supply to drop to 0, got %d", s.Supply["Village"])
	}
	if len(s.Players["alice"].Discard) != 1 {
		t.Fatalf("expected Village gained to discard, got %v", s.Players["alice"].Discard)
	}

	s2 := Apply(s, &events.CardGained{Player: "bob", Card: "Village", To: "discard"})
	if len(s2.Players["bob"].Discard) != 0 {
		t.Fatalf("expected gain from an empty pile to be a no-op, got %v", s2.Players["bob"].Discard)
	}
}

func TestActionsBuysCoinsClampAtZero(t *testing.T) {
	s := initialized(t)
	s.Actions = 1
	s = Apply(s, &events.ActionsModified{Delta: -5})
	if s.Actions != 0 {
		t.Fatalf("expected actions clamped to 0, got %d", s.Actions)
	}
}

func TestDecisionRequiredSetsOpponentSubPhase(t *testing.T) {
	s := initialized(t)
	s.ActivePlayer = "alice"
	id := 7
	dr := &events.DecisionRequired{Decision: events.DecisionRequest{Player: "bob", Stage: "militia_discard"}}
	dr.SetMeta(events.Meta{ID: id})

	s = Apply(s, dr)
	if s.SubPhase != SubPhaseOpponentDecision {
		t.Fatalf("expected opponent_decision sub-phase when decision player != active player, got %q", s.SubPhase)
	}
	if s.PendingDecision == nil || s.PendingDecision.Player != "bob" {
		t.Fatalf("expected pending decision for bob, got %+v", s.PendingDecision)
	}
}

func TestGameEndedRecordsWinnerAndScores(t *testing.T) {
	s := initialized(t)
	s = Apply(s, &events.GameEnded{Winner: "alice", Scores: map[string]int{"alice": 10, "bob": 6}, Reason: "provinces_empty"})
	if !s.GameOver || s.Winner != "alice" {
		t.Fatalf("expected game over with alice winning, got over=%v winner=%q", s.GameOver, s.Winner)
	}
	if s.Scores["bob"] != 6 {
		t.Fatalf("expected bob's score to be 6, got %d", s.Scores["bob"])
	}
}
