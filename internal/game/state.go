package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/cardsharp/blackjack/internal/deck"
	"github.com/cardsharp/blackjack/internal/randutil"
)

// GameState is a single dealt blackjack hand in progress. It is created
// once per scenario, mutated only through Apply, and never shared across
// concurrent rollouts; the estimator works on forks.
type GameState struct {
	Shoe   *deck.Shoe
	Dealer *Hand
	Hands  []*Hand // grows to at most two on a split
	Active int
	Rules  Rules
	Turns  int

	dealerDone bool
}

// StateOption customises state construction, mainly for scenario setup and
// deterministic tests.
type StateOption func(*stateConfig)

type stateConfig struct {
	shoe        *deck.Shoe
	playerCards []deck.Card
	dealerCards []deck.Card
}

// WithShoe uses a prepared shoe instead of building and shuffling one. The
// shoe is used as-is, so tests can fix the exact draw order.
func WithShoe(shoe *deck.Shoe) StateOption {
	return func(c *stateConfig) { c.shoe = shoe }
}

// WithPlayerCards fixes the player's initial cards. The cards are removed
// from the shoe so the remaining composition stays consistent.
func WithPlayerCards(cards ...deck.Card) StateOption {
	return func(c *stateConfig) { c.playerCards = cards }
}

// WithDealerCards fixes the dealer's cards, upcard first. A single card
// fixes only the upcard; the hole card is drawn from the shoe.
func WithDealerCards(cards ...deck.Card) StateOption {
	return func(c *stateConfig) { c.dealerCards = cards }
}

// NewState builds a shoe from the rules and seed, deals two cards to the
// player and two to the dealer (upcard then hole card), and resolves an
// immediate two-card 21 if dealt.
func NewState(rules Rules, seed int64, opts ...StateOption) (*GameState, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	var cfg stateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	shoe := cfg.shoe
	if shoe == nil {
		shoe = deck.NewShoe(rules.NumDecks, randutil.New(seed))
	}

	s := &GameState{
		Shoe:   shoe,
		Dealer: &Hand{},
		Hands:  []*Hand{{}},
		Rules:  rules,
	}

	// Deal order matches a live table: player, player, upcard, hole card.
	player := s.Hands[0]
	if err := dealFixed(shoe, player, cfg.playerCards, 2); err != nil {
		return nil, err
	}
	if err := dealFixed(shoe, s.Dealer, cfg.dealerCards, 2); err != nil {
		return nil, err
	}

	if err := s.advance(); err != nil {
		return nil, err
	}
	return s, nil
}

// dealFixed fills a hand up to want cards, taking fixed cards out of the
// shoe first and drawing the rest.
func dealFixed(shoe *deck.Shoe, h *Hand, fixed []deck.Card, want int) error {
	for _, c := range fixed {
		if !shoe.Remove(c) {
			return fmt.Errorf("%w: card %s not available in shoe", ErrInvalidConfiguration, c)
		}
		h.Cards = append(h.Cards, c)
	}
	for len(h.Cards) < want {
		c, err := shoe.Draw()
		if err != nil {
			return err
		}
		h.Cards = append(h.Cards, c)
	}
	return nil
}

// Upcard returns the dealer's face-up card
func (s *GameState) Upcard() deck.Card {
	return s.Dealer.Cards[0]
}

// ActiveHand returns the hand awaiting a decision, or nil once every hand
// has resolved.
func (s *GameState) ActiveHand() *Hand {
	if s.Active >= len(s.Hands) || s.Hands[s.Active].Finished {
		return nil
	}
	return s.Hands[s.Active]
}

// LegalActions returns the actions legal for the active hand, or nil when
// no hand awaits a decision.
func (s *GameState) LegalActions() []Action {
	h := s.ActiveHand()
	if h == nil {
		return nil
	}
	return HandActions(h, s.Rules)
}

// IsFinished reports whether every player hand has resolved and the dealer
// has played.
func (s *GameState) IsFinished() bool {
	return s.dealerDone
}

// Apply advances the game by one player action on the active hand. It fails
// with ErrInvalidAction if the action is not currently legal.
func (s *GameState) Apply(action Action) error {
	h := s.ActiveHand()
	if h == nil {
		return fmt.Errorf("%w: no hand awaiting action", ErrInvalidAction)
	}
	if !ActionLegal(HandActions(h, s.Rules), action) {
		return fmt.Errorf("%w: %s on hand %s", ErrInvalidAction, action, h)
	}

	switch action {
	case Hit:
		card, err := s.Shoe.Draw()
		if err != nil {
			return err
		}
		h.Cards = append(h.Cards, card)
	case Stand:
		h.Finished = true
	case Double:
		card, err := s.Shoe.Draw()
		if err != nil {
			return err
		}
		h.Cards = append(h.Cards, card)
		h.Doubled = true
		h.Finished = true
	case Split:
		if err := s.split(h); err != nil {
			return err
		}
	}

	s.Turns++
	return s.advance()
}

// split replaces the pair with two child hands, each drawing one card
// immediately. Children keep normal play options apart from re-splitting;
// Ace pairs are not restricted to a single card.
func (s *GameState) split(h *Hand) error {
	left := &Hand{Cards: []deck.Card{h.Cards[0]}, SplitChild: true}
	right := &Hand{Cards: []deck.Card{h.Cards[1]}, SplitChild: true}
	for _, child := range []*Hand{left, right} {
		card, err := s.Shoe.Draw()
		if err != nil {
			return err
		}
		child.Cards = append(child.Cards, card)
	}
	s.Hands = []*Hand{left, right}
	s.Active = 0
	return nil
}

// advance resolves hands that reached 21 or busted, moves the active index
// to the next unfinished hand, and triggers dealer play once every hand has
// resolved.
func (s *GameState) advance() error {
	for _, h := range s.Hands {
		if !h.Finished && h.Value().Total >= 21 {
			h.Finished = true
		}
	}
	for s.Active < len(s.Hands) && s.Hands[s.Active].Finished {
		s.Active++
	}
	if s.Active < len(s.Hands) {
		return nil
	}
	return s.playDealer()
}

// playDealer reveals the hole card and hits to the stand threshold: below
// 17 always, soft 17 only under H17. Skipped entirely when every player
// hand busted, since no dealer total can change the outcome.
func (s *GameState) playDealer() error {
	if s.dealerDone {
		return nil
	}
	s.dealerDone = true

	live := false
	for _, h := range s.Hands {
		if !h.Value().Busted {
			live = true
			break
		}
	}
	if !live {
		s.Dealer.Finished = true
		return nil
	}

	for {
		v := Evaluate(s.Dealer.Cards)
		if v.Busted || v.Total > 17 {
			break
		}
		if v.Total == 17 && !(v.Soft && !s.Rules.S17) {
			break
		}
		card, err := s.Shoe.Draw()
		if err != nil {
			return err
		}
		s.Dealer.Cards = append(s.Dealer.Cards, card)
	}
	s.Dealer.Finished = true
	return nil
}

// Settle returns the total payoff in bet units across all player hands.
// Split hands settle independently and sum.
func (s *GameState) Settle() (float64, error) {
	if !s.IsFinished() {
		return 0, ErrHandInProgress
	}
	dealer := Evaluate(s.Dealer.Cards)
	total := 0.0
	for _, h := range s.Hands {
		total += handPayoff(h, dealer)
	}
	return total, nil
}

// handPayoff settles one player hand against the dealer. An unsplit
// two-card 21 pays 3:2 against anything but a dealer blackjack; a doubled
// hand never counts as blackjack.
func handPayoff(h *Hand, dealer Value) float64 {
	v := h.Value()
	stake := h.Stake()
	playerBJ := v.Blackjack && !h.Doubled
	switch {
	case playerBJ && !dealer.Blackjack:
		return 1.5 * stake
	case dealer.Blackjack && !playerBJ:
		return -stake
	case v.Busted:
		return -stake
	case dealer.Busted:
		return stake
	case v.Total > dealer.Total:
		return stake
	case v.Total < dealer.Total:
		return -stake
	default:
		return 0
	}
}

// Fork returns a deep copy for a simulation trial. The forked shoe holds
// the same remaining composition reshuffled with rng, so simulated draws
// respect cards already gone from the live shoe without replaying its
// order. While the dealer has not played, the hole card is unseen: it goes
// back into the forked shoe and the trial dealer starts from the upcard
// alone, drawing a fresh hole during dealer play. A fork of a settled
// state keeps the revealed dealer hand.
func (s *GameState) Fork(rng *rand.Rand) *GameState {
	shoe := s.Shoe.Snapshot()
	dealer := s.Dealer.Clone()
	if !s.dealerDone && len(dealer.Cards) > 1 {
		shoe.Return(dealer.Cards[1:]...)
		dealer.Cards = dealer.Cards[:1]
	}
	shoe.Shuffle(rng)
	hands := make([]*Hand, len(s.Hands))
	for i, h := range s.Hands {
		hands[i] = h.Clone()
	}
	return &GameState{
		Shoe:       shoe,
		Dealer:     dealer,
		Hands:      hands,
		Active:     s.Active,
		Rules:      s.Rules,
		Turns:      s.Turns,
		dealerDone: s.dealerDone,
	}
}
