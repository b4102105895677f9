package command

import (
	"errors"

	"github.com/dominioneer/dominioneer/internal/catalog"
	"github.com/dominioneer/dominioneer/internal/state"
)

// Error kinds, per spec.md §7. Validator rejections carry one of these so
// a caller can branch on Is() without parsing the message. Two
// rejections return plain errors instead: StartGame with no players, and
// SubmitDecision with a selection count outside the decision's [Min, Max].
var (
	ErrWrongPhase       = errors.New("wrong phase")
	ErrWrongSubPhase    = errors.New("a decision or reaction is pending")
	ErrInsufficient     = errors.New("insufficient resource")
	ErrCardWrongZone    = errors.New("card not in the expected zone")
	ErrUnknownCard      = errors.New("unknown card")
	ErrWrongPlayer      = errors.New("not your turn, decision, or reaction")
	ErrStaleDecision    = errors.New("a decision is pending; only SUBMIT_DECISION or a reaction command may run")
	ErrAlreadyPurchased = errors.New("a purchase has already been made this turn")
	ErrNotPending       = errors.New("nothing is pending")
)

// validator is one composable precondition check; handlers run a
// sequence of them and stop at the first failure (spec.md §4.6).
type validator func(s *state.GameState) error

func runValidators(s *state.GameState, vs ...validator) error {
	for _, v := range vs {
		if err := v(s); err != nil {
			return err
		}
	}
	return nil
}

// noDecisionPending rejects any command besides SUBMIT_DECISION and the
// reaction commands while the engine is awaiting external input.
func noDecisionPending(s *state.GameState) error {
	if s.PendingDecision != nil || s.PendingReaction != nil {
		return ErrStaleDecision
	}
	return nil
}

func inPhase(phase state.Phase) validator {
	return func(s *state.GameState) error {
		if s.Phase != phase {
			return ErrWrongPhase
		}
		return nil
	}
}

func isActivePlayer(player string) validator {
	return func(s *state.GameState) error {
		if s.ActivePlayer != player {
			return ErrWrongPlayer
		}
		return nil
	}
}

func hasActions(n int) validator {
	return func(s *state.GameState) error {
		if s.Actions < n {
			return ErrInsufficient
		}
		return nil
	}
}

func hasBuys(n int) validator {
	return func(s *state.GameState) error {
		if s.Buys < n {
			return ErrInsufficient
		}
		return nil
	}
}

func hasCoins(n int) validator {
	return func(s *state.GameState) error {
		if s.Coins < n {
			return ErrInsufficient
		}
		return nil
	}
}

func cardInHand(player, card string) validator {
	return func(s *state.GameState) error {
		if !playerExists(s, player) {
			return ErrWrongPlayer
		}
		if handCount(s, player, card) == 0 {
			return ErrCardWrongZone
		}
		return nil
	}
}

func cardInSupply(card string) validator {
	return func(s *state.GameState) error {
		if s.Supply[card] <= 0 {
			return ErrCardWrongZone
		}
		return nil
	}
}

func cardAffordable(cat *catalog.Catalog, card string) validator {
	return func(s *state.GameState) error {
		c, ok := cat.Lookup(card)
		if !ok {
			return ErrUnknownCard
		}
		if s.Coins < effectiveCost(s, c) {
			return ErrInsufficient
		}
		return nil
	}
}

// effectiveCost applies any registered cost-reduction effects (Bridge)
// to a card's base cost, floored at zero.
func effectiveCost(s *state.GameState, c catalog.Card) int {
	cost := c.Cost
	for _, eff := range s.ActiveEffects {
		if eff.EffectType == "cost_reduction" {
			cost -= parseAmount(eff.Parameters["amount"])
		}
	}
	if cost < 0 {
		return 0
	}
	return cost
}

func parseAmount(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func knownCard(cat *catalog.Catalog, card string) validator {
	return func(s *state.GameState) error {
		if _, ok := cat.Lookup(card); !ok {
			return ErrUnknownCard
		}
		return nil
	}
}

func cardHasType(cat *catalog.Catalog, card string, t catalog.CardType) validator {
	return func(s *state.GameState) error {
		c, ok := cat.Lookup(card)
		if !ok {
			return ErrUnknownCard
		}
		if !c.HasType(t) {
			return ErrCardWrongZone
		}
		return nil
	}
}

func noPurchaseYet(player string) validator {
	return func(s *state.GameState) error {
		for _, entry := range s.TurnHistory[player] {
			if entry.Type == "buy_card" {
				return ErrAlreadyPurchased
			}
		}
		return nil
	}
}

func cardInPlay(player, card string) validator {
	return func(s *state.GameState) error {
		p, ok := s.Players[player]
		if !ok {
			return ErrWrongPlayer
		}
		for _, c := range p.InPlay {
			if c == card {
				return nil
			}
		}
		return ErrCardWrongZone
	}
}
