package game

import "fmt"

// Rules is the immutable rule set governing action legality and dealer
// behavior. The zero value is not valid; use DefaultRules or set NumDecks
// explicitly.
type Rules struct {
	S17           bool // dealer stands on soft 17
	DAS           bool // doubling allowed on split hands
	Double11VsAce bool // double hard 11 against a dealer Ace
	NumDecks      int
}

// DefaultRules returns the conventional multi-deck rule set: six decks,
// dealer stands on soft 17, double after split allowed.
func DefaultRules() Rules {
	return Rules{S17: true, DAS: true, NumDecks: 6}
}

// Validate checks the rule set for usability
func (r Rules) Validate() error {
	if r.NumDecks < 1 {
		return fmt.Errorf("%w: num decks must be at least 1, got %d", ErrInvalidConfiguration, r.NumDecks)
	}
	return nil
}

// String returns a compact description like "6D S17 DAS"
func (r Rules) String() string {
	s17 := "H17"
	if r.S17 {
		s17 = "S17"
	}
	das := "noDAS"
	if r.DAS {
		das = "DAS"
	}
	return fmt.Sprintf("%dD %s %s", r.NumDecks, s17, das)
}
