package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrShoeEmpty is returned by Draw when no cards remain. Rollouts are
// bounded, so hitting this indicates the shoe was sized too small for the
// scenario rather than a condition to retry.
var ErrShoeEmpty = errors.New("shoe is empty")

// Shoe is the pool of cards remaining to be dealt, built from one or more
// standard 52-card decks. Cards are drawn from the front.
type Shoe struct {
	cards []Card
}

// NewShoe builds a shoe of numDecks standard decks shuffled with rng.
// Identical RNG state yields an identical card order.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	shoe := &Shoe{
		cards: make([]Card, 0, numDecks*52),
	}
	for d := 0; d < numDecks; d++ {
		for rank := Two; rank <= Ace; rank++ {
			// four of each rank per deck, suits not tracked
			for i := 0; i < 4; i++ {
				shoe.cards = append(shoe.cards, NewCard(rank))
			}
		}
	}
	shoe.Shuffle(rng)
	return shoe
}

// NewShoeFrom builds an unshuffled shoe containing exactly the given cards
// in draw order. Intended for deterministic tests.
func NewShoeFrom(cards ...Card) *Shoe {
	return &Shoe{cards: append([]Card(nil), cards...)}
}

// Shuffle randomizes the order of the remaining cards
func (s *Shoe) Shuffle(rng *rand.Rand) {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the front card
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrShoeEmpty
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Remove takes the first card of the given rank out of the shoe, reporting
// whether one was found. Used when constructing a state around known cards
// so the remaining composition stays consistent.
func (s *Shoe) Remove(card Card) bool {
	for i, c := range s.cards {
		if c.Rank == card.Rank {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Return puts cards back into the shoe. Callers shuffle afterwards when
// the returned cards must not sit at a known position.
func (s *Shoe) Return(cards ...Card) {
	s.cards = append(s.cards, cards...)
}

// Snapshot returns a deep copy of the remaining cards. The copy shares no
// storage with the source, so simulated draws never perturb the live shoe.
func (s *Shoe) Snapshot() *Shoe {
	cards := make([]Card, len(s.cards))
	copy(cards, s.cards)
	return &Shoe{cards: cards}
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// IsEmpty returns true if the shoe has no cards left
func (s *Shoe) IsEmpty() bool {
	return len(s.cards) == 0
}
