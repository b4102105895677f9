package catalog

import (
	"testing"

	"github.com/dominioneer/dominioneer/internal/events"
	"github.com/dominioneer/dominioneer/internal/state"
)

func newState(t *testing.T) *state.GameState {
	t.Helper()
	s := state.Apply(state.New(), &events.GameInitialized{
		Players: []string{"alice", "bob"},
		Supply: map[string]int{
			"Copper": 46, "Silver": 40, "Gold": 30,
			"Estate": 8, "Duchy": 8, "Province": 8, "Curse": 10,
			"Village": 10, "Workshop": 10, "Gardens": 8,
		},
	})
	return s
}

func noShuffle(cards []string) []string {
	out := append([]string(nil), cards...)
	return out
}

func TestLookupKnownAndUnknownCard(t *testing.T) {
	cat := New()
	if _, ok := cat.Lookup("Village"); !ok {
		t.Fatalf("expected Village to be a known card")
	}
	if _, ok := cat.Lookup("Nonexistent"); ok {
		t.Fatalf("expected Nonexistent to be unknown")
	}
}

func TestCountVPResolvesGardensAgainstDeckSize(t *testing.T) {
	cat := New()
	vp := cat.CountVP([]string{"Estate", "Duchy", "Gardens"}, 23)
	// Estate 1 + Duchy 3 + Gardens floor(23/10)=2 = 6
	if vp != 6 {
		t.Fatalf("expected 6 total VP, got %d", vp)
	}
}

func TestKingdomCardNamesExcludesBasics(t *testing.T) {
	cat := New()
	for _, name := range cat.KingdomCardNames() {
		if name == "Copper" || name == "Estate" || name == "Curse" {
			t.Fatalf("expected basic card %q excluded from kingdom names", name)
		}
	}
}

func TestDrawReshufflesDiscardWhenDeckEmpty(t *testing.T) {
	s := newState(t)
	s.Players["alice"].Deck = []string{"Copper"}
	s.Players["alice"].Discard = []string{"Silver", "Estate"}

	ctx := EffectContext{State: s, Player: "alice", Shuffle: noShuffle}
	evs := Draw(ctx, "alice", 3)

	var shuffled, drawn int
	for _, e := range evs {
		switch e.(type) {
		case *events.DeckShuffled:
			shuffled++
		case *events.CardDrawn:
			drawn++
		}
	}
	if shuffled != 1 {
		t.Fatalf("expected exactly one reshuffle, got %d", shuffled)
	}
	if drawn != 3 {
		t.Fatalf("expected 3 cards drawn, got %d", drawn)
	}
}

func TestDrawStopsShortWhenNothingLeft(t *testing.T) {
	s := newState(t)
	s.Players["alice"].Deck = nil
	s.Players["alice"].Discard = nil

	ctx := EffectContext{State: s, Player: "alice", Shuffle: noShuffle}
	evs := Draw(ctx, "alice", 3)
	if len(evs) != 0 {
		t.Fatalf("expected no events when both deck and discard are empty, got %d", len(evs))
	}
}

func TestVillageDrawsAndGrantsActions(t *testing.T) {
	cat := New()
	s := newState(t)
	s.Players["alice"].Deck = []string{"Copper"}
	c, _ := cat.Lookup("Village")

	res := c.Effect(EffectContext{State: s, Player: "alice", Card: "Village", Shuffle: noShuffle})
	var drew, actionsDelta bool
	for _, e := range res.Events {
		if _, ok := e.(*events.CardDrawn); ok {
			drew = true
		}
		if am, ok := e.(*events.ActionsModified); ok && am.Delta == 2 {
			actionsDelta = true
		}
	}
	if !drew || !actionsDelta {
		t.Fatalf("expected Village to draw a card and grant +2 actions, got %+v", res.Events)
	}
}

func TestWitchDrawsAndCursesEachAttackTarget(t *testing.T) {
	cat := New()
	s := newState(t)
	s.Players["alice"].Deck = []string{"Copper", "Silver"}
	c, _ := cat.Lookup("Witch")

	res := c.Effect(EffectContext{
		State: s, Player: "alice", Card: "Witch",
		AttackTargets: []string{"bob"}, Shuffle: noShuffle,
	})

	cursed := false
	for _, e := range res.Events {
		if g, ok := e.(*events.CardGained); ok && g.Player == "bob" && g.Card == "Curse" {
			cursed = true
		}
	}
	if !cursed {
		t.Fatalf("expected bob to gain a Curse, got %+v", res.Events)
	}
}

func TestChapelSuspendsThenTrashesSelection(t *testing.T) {
	cat := New()
	s := newState(t)
	s.Players["alice"].Hand = []string{"Estate", "Estate", "Copper"}
	c, _ := cat.Lookup("Chapel")

	first := c.Effect(EffectContext{State: s, Player: "alice", Card: "Chapel", Catalog: cat})
	if first.PendingDecision == nil || first.PendingDecision.Stage != chapelTrashStage {
		t.Fatalf("expected Chapel to suspend on a trash decision, got %+v", first)
	}

	second := c.Effect(EffectContext{
		State: s, Player: "alice", Card: "Chapel", Catalog: cat,
		Stage:    chapelTrashStage,
		Decision: &events.DecisionChoice{SelectedCards: []string{"Estate", "Estate"}},
	})
	if len(second.Events) != 2 {
		t.Fatalf("expected 2 trash events, got %d", len(second.Events))
	}
	for _, e := range second.Events {
		if _, ok := e.(*events.CardTrashed); !ok {
			t.Fatalf("expected only CardTrashed events, got %T", e)
		}
	}
}

func TestWorkshopOffersOnlyAffordableCards(t *testing.T) {
	cat := New()
	s := newState(t)
	c, _ := cat.Lookup("Workshop")

	first := c.Effect(EffectContext{State: s, Player: "alice", Card: "Workshop", Catalog: cat})
	if first.PendingDecision == nil {
		t.Fatalf("expected Workshop to raise a gain decision")
	}
	for _, name := range first.PendingDecision.CardOptions {
		card, ok := cat.Lookup(name)
		if !ok || card.Cost > 4 {
			t.Fatalf("expected only cards costing <=4 offered, got %q costing %d", name, card.Cost)
		}
	}

	second := c.Effect(EffectContext{
		State: s, Player: "alice", Card: "Workshop", Catalog: cat,
		Stage:    workshopGainStage,
		Decision: &events.DecisionChoice{SelectedCards: []string{"Village"}},
	})
	if len(second.Events) != 1 {
		t.Fatalf("expected one gain event, got %d", len(second.Events))
	}
	gain, ok := second.Events[0].(*events.CardGained)
	if !ok || gain.Card != "Village" {
		t.Fatalf("expected Village gained, got %+v", second.Events[0])
	}
}

func TestThroneRoomOffersOnlyActionCards(t *testing.T) {
	cat := New()
	s := newState(t)
	s.Players["alice"].Hand = []string{"Village", "Copper", "Estate"}
	c, _ := cat.Lookup("Throne Room")

	res := c.Effect(EffectContext{State: s, Player: "alice", Card: "Throne Room", Catalog: cat})
	if res.PendingDecision == nil {
		t.Fatalf("expected Throne Room to raise a choose decision")
	}
	if len(res.PendingDecision.CardOptions) != 1 || res.PendingDecision.CardOptions[0] != "Village" {
		t.Fatalf("expected only Village offered, got %v", res.PendingDecision.CardOptions)
	}
}

func TestMilitiaSkipsTargetsAtOrBelowThreeCards(t *testing.T) {
	cat := New()
	s := newState(t)
	s.Players["bob"].Hand = []string{"Copper", "Copper", "Copper"}
	c, _ := cat.Lookup("Militia")

	res := c.Effect(EffectContext{
		State: s, Player: "alice", Card: "Militia",
		AttackTargets: []string{"bob"},
	})
	if res.PendingDecision != nil {
		t.Fatalf("expected no discard decision for a target already at 3 cards, got %+v", res.PendingDecision)
	}
	foundCoins := false
	for _, e := range res.Events {
		if cm, ok := e.(*events.CoinsModified); ok && cm.Delta == 2 {
			foundCoins = true
		}
	}
	if !foundCoins {
		t.Fatalf("expected Militia to still grant +2 coins, got %+v", res.Events)
	}
}

func TestMilitiaQueuesDiscardForTargetAboveThreeCards(t *testing.T) {
	cat := New()
	s := newState(t)
	s.Players["bob"].Hand = []string{"Copper", "Copper", "Copper", "Copper", "Copper"}
	c, _ := cat.Lookup("Militia")

	res := c.Effect(EffectContext{
		State: s, Player: "alice", Card: "Militia",
		AttackTargets: []string{"bob"},
	})
	if res.PendingDecision == nil || res.PendingDecision.Player != "bob" {
		t.Fatalf("expected a discard decision targeting bob, got %+v", res.PendingDecision)
	}
	if res.PendingDecision.Min != 2 || res.PendingDecision.Max != 2 {
		t.Fatalf("expected bob forced to discard exactly 2, got min=%d max=%d",
			res.PendingDecision.Min, res.PendingDecision.Max)
	}
}
