package game

import (
	"testing"

	"github.com/cardsharp/blackjack/internal/deck"
)

func TestParseAction(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Action
	}{
		{"HIT", Hit},
		{"stand", Stand},
		{" Double ", Double},
		{"split", Split},
	} {
		got, err := ParseAction(tt.in)
		if err != nil {
			t.Fatalf("ParseAction(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseAction("FOLD"); err == nil {
		t.Error("ParseAction(\"FOLD\") should fail")
	}
}

func TestHandActions(t *testing.T) {
	rules := DefaultRules()

	// Fresh two-card hand: hit, stand, double.
	h := &Hand{Cards: cards(deck.Nine, deck.Three)}
	got := HandActions(h, rules)
	want := []Action{Hit, Stand, Double}
	assertActions(t, got, want)

	// Pair adds split.
	h = &Hand{Cards: cards(deck.Eight, deck.Eight)}
	assertActions(t, HandActions(h, rules), []Action{Hit, Stand, Double, Split})

	// Three cards: no double, no split.
	h = &Hand{Cards: cards(deck.Two, deck.Three, deck.Four)}
	assertActions(t, HandActions(h, rules), []Action{Hit, Stand})

	// Finished or busted hands have no actions.
	h = &Hand{Cards: cards(deck.Nine, deck.Three), Finished: true}
	if len(HandActions(h, rules)) != 0 {
		t.Error("finished hand should have no legal actions")
	}
	h = &Hand{Cards: cards(deck.King, deck.Queen, deck.Five)}
	if len(HandActions(h, rules)) != 0 {
		t.Error("busted hand should have no legal actions")
	}
}

func TestHandActionsSplitChild(t *testing.T) {
	das := DefaultRules()
	noDas := DefaultRules()
	noDas.DAS = false

	// Split hands can never re-split, even on a fresh pair.
	h := &Hand{Cards: cards(deck.Eight, deck.Eight), SplitChild: true}
	if ActionLegal(HandActions(h, das), Split) {
		t.Error("split hand must not be splittable again")
	}

	// Double on a split hand requires DAS.
	if !ActionLegal(HandActions(h, das), Double) {
		t.Error("DAS should allow doubling a split hand")
	}
	if ActionLegal(HandActions(h, noDas), Double) {
		t.Error("doubling a split hand without DAS must be illegal")
	}
}

func assertActions(t *testing.T, got, want []Action) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("actions = %v, want %v", got, want)
		}
	}
}
