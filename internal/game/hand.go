package game

import (
	"strings"

	"github.com/cardsharp/blackjack/internal/deck"
)

// Hand is an ordered, append-only sequence of cards dealt to one seat.
type Hand struct {
	Cards      []deck.Card
	Doubled    bool // stake multiplier is 2 when set
	SplitChild bool // created by a split; no re-split, no blackjack bonus
	Finished   bool
}

// Value is the blackjack valuation of a card sequence.
type Value struct {
	Total     int  // best non-busting total (or the minimal total when busted)
	Soft      bool // an Ace is currently counted as eleven
	Busted    bool
	Blackjack bool // two cards totaling 21; cleared for split hands by Hand.Value
}

// Evaluate computes the valuation of a card sequence. Every Ace starts at
// eleven; while the total exceeds 21 and an Ace is still counted high, ten
// is rebated per such Ace.
func Evaluate(cards []deck.Card) Value {
	total := 0
	highAces := 0
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			highAces++
		}
	}
	for total > 21 && highAces > 0 {
		total -= 10
		highAces--
	}
	return Value{
		Total:     total,
		Soft:      highAces > 0,
		Busted:    total > 21,
		Blackjack: len(cards) == 2 && total == 21,
	}
}

// Value returns the valuation of the hand, with the blackjack bonus
// suppressed for split hands.
func (h *Hand) Value() Value {
	v := Evaluate(h.Cards)
	if h.SplitChild {
		v.Blackjack = false
	}
	return v
}

// IsPair reports whether the hand is exactly two cards of equal blackjack
// value (any two ten-value cards pair for splitting purposes).
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Value() == h.Cards[1].Value()
}

// Stake returns the hand's bet multiplier in units of the base bet
func (h *Hand) Stake() float64 {
	if h.Doubled {
		return 2.0
	}
	return 1.0
}

// Clone returns a deep copy of the hand
func (h *Hand) Clone() *Hand {
	cards := make([]deck.Card, len(h.Cards))
	copy(cards, h.Cards)
	return &Hand{
		Cards:      cards,
		Doubled:    h.Doubled,
		SplitChild: h.SplitChild,
		Finished:   h.Finished,
	}
}

// String returns the hand's cards separated by commas, e.g. "A,7"
func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}
