// Package strategy implements conventional multi-deck basic strategy as a
// pure decision function over hard totals, soft totals and pairs. It drives
// every continuation decision inside Monte Carlo rollouts and serves as the
// baseline for marginal EV scoring.
package strategy

import (
	"github.com/cardsharp/blackjack/internal/deck"
	"github.com/cardsharp/blackjack/internal/game"
)

// Recommend returns the basic-strategy action for the hand against the
// dealer upcard, restricted to the hand's legal actions. A recommendation
// the hand cannot take falls back deterministically: an illegal SPLIT is
// re-derived from the soft/hard tables, an illegal DOUBLE becomes HIT below
// the standing threshold and STAND at or above it.
func Recommend(h *game.Hand, upcard deck.Card, rules game.Rules) game.Action {
	legal := game.HandActions(h, rules)
	if len(legal) == 0 {
		return game.Stand
	}

	act := tableAction(h, upcard, rules, game.CanSplit(h))
	if game.ActionLegal(legal, act) {
		return act
	}

	switch act {
	case game.Split:
		// Pair on a split hand: decide as an ordinary total.
		act = tableAction(h, upcard, rules, false)
		if game.ActionLegal(legal, act) {
			return act
		}
		fallthrough
	case game.Double:
		v := h.Value()
		if v.Soft && v.Total >= 18 {
			return game.Stand
		}
		if !v.Soft && v.Total >= 17 {
			return game.Stand
		}
		return game.Hit
	}
	return game.Stand
}

// tableAction dispatches to the pair, soft or hard table. Split hands and
// 3+ card hands skip the pair table via considerPair.
func tableAction(h *game.Hand, upcard deck.Card, rules game.Rules, considerPair bool) game.Action {
	if considerPair && h.IsPair() {
		return pairAction(h.Cards[0], upcard, rules.DAS)
	}
	v := h.Value()
	if v.Soft {
		// The soft table is keyed by the non-ace part of the total.
		nonAce := v.Total - 11
		if nonAce < 2 {
			nonAce = 2
		}
		if nonAce > 9 {
			nonAce = 9
		}
		return softAction(nonAce, upcard)
	}
	return hardAction(v.Total, upcard, rules.Double11VsAce)
}

// upcardValue treats the dealer Ace as eleven
func upcardValue(c deck.Card) int {
	return c.Value()
}

// pairAction decides a two-card pair, keyed by the paired card.
func pairAction(card deck.Card, upcard deck.Card, das bool) game.Action {
	dv := upcardValue(upcard)
	switch card.Value() {
	case 11: // aces
		return game.Split
	case 10:
		return game.Stand
	case 9:
		// split vs 2-6 and 8-9, stand vs 7, 10, ace
		if (2 <= dv && dv <= 6) || dv == 8 || dv == 9 {
			return game.Split
		}
		return game.Stand
	case 8:
		return game.Split
	case 7:
		if 2 <= dv && dv <= 7 {
			return game.Split
		}
		return game.Hit
	case 6:
		if (3 <= dv && dv <= 6) || (das && dv == 2) {
			return game.Split
		}
		return game.Hit
	case 5:
		// never split fives; play as hard ten
		if 2 <= dv && dv <= 9 {
			return game.Double
		}
		return game.Hit
	case 4:
		if das && (dv == 5 || dv == 6) {
			return game.Split
		}
		return game.Hit
	case 2, 3:
		if (4 <= dv && dv <= 7) || (das && (dv == 2 || dv == 3)) {
			return game.Split
		}
		return game.Hit
	default:
		return game.Hit
	}
}

// softAction decides a soft total, keyed by the non-ace part (2..9).
func softAction(nonAce int, upcard deck.Card) game.Action {
	dv := upcardValue(upcard)
	switch {
	case nonAce >= 8: // soft 19-20
		return game.Stand
	case nonAce == 7: // soft 18
		if 3 <= dv && dv <= 6 {
			return game.Double
		}
		if dv == 2 || dv == 7 || dv == 8 {
			return game.Stand
		}
		return game.Hit
	case nonAce == 6: // soft 17
		if 3 <= dv && dv <= 6 {
			return game.Double
		}
		return game.Hit
	case nonAce == 5: // soft 16
		if 4 <= dv && dv <= 6 {
			return game.Double
		}
		return game.Hit
	default: // soft 13-15
		if 5 <= dv && dv <= 6 {
			return game.Double
		}
		return game.Hit
	}
}

// hardAction decides a hard total.
func hardAction(total int, upcard deck.Card, double11VsAce bool) game.Action {
	dv := upcardValue(upcard)
	switch {
	case total >= 17:
		return game.Stand
	case total >= 13:
		if 2 <= dv && dv <= 6 {
			return game.Stand
		}
		return game.Hit
	case total == 12:
		if 4 <= dv && dv <= 6 {
			return game.Stand
		}
		return game.Hit
	case total == 11:
		if dv == 11 {
			if double11VsAce {
				return game.Double
			}
			return game.Hit
		}
		return game.Double
	case total == 10:
		if 2 <= dv && dv <= 9 {
			return game.Double
		}
		return game.Hit
	case total == 9:
		if 3 <= dv && dv <= 6 {
			return game.Double
		}
		return game.Hit
	default: // 5-8
		return game.Hit
	}
}
