package game

import (
	"fmt"
	"strings"
)

// Action is a player decision on the active hand
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
)

// String returns the canonical upper-case action name
func (a Action) String() string {
	switch a {
	case Hit:
		return "HIT"
	case Stand:
		return "STAND"
	case Double:
		return "DOUBLE"
	case Split:
		return "SPLIT"
	default:
		return "?"
	}
}

// ParseAction parses an action name, case-insensitively
func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIT":
		return Hit, nil
	case "STAND":
		return Stand, nil
	case "DOUBLE":
		return Double, nil
	case "SPLIT":
		return Split, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// HandActions returns the actions legal for a hand under the given rules.
// HIT and STAND are always available on an unfinished, non-busted hand;
// DOUBLE requires exactly two cards and, on a split hand, DAS; SPLIT
// requires a two-card pair and is never available on a split hand.
func HandActions(h *Hand, rules Rules) []Action {
	if h.Finished || h.Value().Busted {
		return nil
	}
	actions := []Action{Hit, Stand}
	if CanDouble(h, rules) {
		actions = append(actions, Double)
	}
	if CanSplit(h) {
		actions = append(actions, Split)
	}
	return actions
}

// CanDouble reports whether doubling is legal for the hand
func CanDouble(h *Hand, rules Rules) bool {
	return len(h.Cards) == 2 && (!h.SplitChild || rules.DAS)
}

// CanSplit reports whether splitting is legal for the hand. One split
// maximum: a split hand may never be split again regardless of rules.
func CanSplit(h *Hand) bool {
	return h.IsPair() && !h.SplitChild
}

// ActionLegal reports whether a is in the actions slice
func ActionLegal(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}
