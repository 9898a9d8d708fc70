package deck

import (
	"fmt"
	"strings"
)

// Rank represents a card rank. Suits are irrelevant to blackjack play and
// are not modelled; two cards are a splittable pair when their blackjack
// values match.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
}

// NewCard creates a new card
func NewCard(rank Rank) Card {
	return Card{Rank: rank}
}

// String returns the string representation of a card (e.g., "A", "10")
func (c Card) String() string {
	return c.Rank.String()
}

// Value returns the blackjack value of the card. Face cards count ten and
// Aces count eleven; hand evaluation converts Aces to one as needed.
func (c Card) Value() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Ten:
		return 10
	default:
		return int(c.Rank)
	}
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// ParseCard parses a single rank string like "A", "K", "10" or "T".
func ParseCard(s string) (Card, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "2":
		return NewCard(Two), nil
	case "3":
		return NewCard(Three), nil
	case "4":
		return NewCard(Four), nil
	case "5":
		return NewCard(Five), nil
	case "6":
		return NewCard(Six), nil
	case "7":
		return NewCard(Seven), nil
	case "8":
		return NewCard(Eight), nil
	case "9":
		return NewCard(Nine), nil
	case "10", "T":
		return NewCard(Ten), nil
	case "J":
		return NewCard(Jack), nil
	case "Q":
		return NewCard(Queen), nil
	case "K":
		return NewCard(King), nil
	case "A":
		return NewCard(Ace), nil
	default:
		return Card{}, fmt.Errorf("invalid card rank %q", s)
	}
}

// ParseCards parses a comma or space separated list of ranks, e.g. "A,7" or
// "8 8".
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no cards in %q", s)
	}
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
