package game

import (
	"testing"

	"github.com/cardsharp/blackjack/internal/deck"
)

func cards(ranks ...deck.Rank) []deck.Card {
	out := make([]deck.Card, len(ranks))
	for i, r := range ranks {
		out[i] = deck.NewCard(r)
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		cards     []deck.Card
		total     int
		soft      bool
		busted    bool
		blackjack bool
	}{
		{"hard 12", cards(deck.Nine, deck.Three), 12, false, false, false},
		{"blackjack", cards(deck.Ace, deck.King), 21, true, false, true},
		{"blackjack reversed", cards(deck.Ten, deck.Ace), 21, true, false, true},
		{"soft 18", cards(deck.Ace, deck.Seven), 18, true, false, false},
		{"ace rebated", cards(deck.Ace, deck.Seven, deck.Nine), 17, false, false, false},
		{"two aces", cards(deck.Ace, deck.Ace), 12, true, false, false},
		{"three aces", cards(deck.Ace, deck.Ace, deck.Ace), 13, true, false, false},
		{"twenty-one three cards", cards(deck.Seven, deck.Seven, deck.Seven), 21, false, false, false},
		{"bust", cards(deck.King, deck.Queen, deck.Five), 25, false, true, false},
		{"soft then bust", cards(deck.Ace, deck.Nine, deck.Five, deck.King), 25, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Evaluate(tt.cards)
			if v.Total != tt.total {
				t.Errorf("Total = %d, want %d", v.Total, tt.total)
			}
			if v.Soft != tt.soft {
				t.Errorf("Soft = %v, want %v", v.Soft, tt.soft)
			}
			if v.Busted != tt.busted {
				t.Errorf("Busted = %v, want %v", v.Busted, tt.busted)
			}
			if v.Blackjack != tt.blackjack {
				t.Errorf("Blackjack = %v, want %v", v.Blackjack, tt.blackjack)
			}
			if v.Busted != (v.Total > 21) {
				t.Errorf("Busted (%v) inconsistent with Total (%d)", v.Busted, v.Total)
			}
		})
	}
}

func TestSplitChildHasNoBlackjack(t *testing.T) {
	h := &Hand{Cards: cards(deck.Ace, deck.King), SplitChild: true}
	if h.Value().Blackjack {
		t.Error("two-card 21 on a split hand must not count as blackjack")
	}
	if h.Value().Total != 21 {
		t.Errorf("Total = %d, want 21", h.Value().Total)
	}
}

func TestIsPair(t *testing.T) {
	tests := []struct {
		cards []deck.Card
		pair  bool
	}{
		{cards(deck.Eight, deck.Eight), true},
		{cards(deck.King, deck.Queen), true}, // ten-value cards pair by value
		{cards(deck.Ten, deck.Jack), true},
		{cards(deck.Ace, deck.Ace), true},
		{cards(deck.Ace, deck.King), false},
		{cards(deck.Nine, deck.Eight), false},
		{cards(deck.Eight, deck.Eight, deck.Eight), false},
	}
	for _, tt := range tests {
		h := &Hand{Cards: tt.cards}
		if got := h.IsPair(); got != tt.pair {
			t.Errorf("IsPair(%s) = %v, want %v", h, got, tt.pair)
		}
	}
}

func TestStake(t *testing.T) {
	h := &Hand{Cards: cards(deck.Six, deck.Five)}
	if h.Stake() != 1.0 {
		t.Errorf("Stake = %v, want 1", h.Stake())
	}
	h.Doubled = true
	if h.Stake() != 2.0 {
		t.Errorf("doubled Stake = %v, want 2", h.Stake())
	}
}

func TestHandClone(t *testing.T) {
	h := &Hand{Cards: cards(deck.Six, deck.Five), Doubled: true}
	clone := h.Clone()
	clone.Cards[0] = deck.NewCard(deck.Ace)
	clone.Doubled = false
	if h.Cards[0].Rank != deck.Six || !h.Doubled {
		t.Error("mutating a clone changed the original hand")
	}
}
