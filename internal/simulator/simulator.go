// Package simulator plays batches of complete blackjack hands under basic
// strategy and aggregates the results. It is a consumer of the core game
// API, used to measure realised house edge for a rule set.
package simulator

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/cardsharp/blackjack/internal/game"
	"github.com/cardsharp/blackjack/internal/statistics"
	"github.com/cardsharp/blackjack/internal/strategy"
)

// Config holds configuration for running simulations
type Config struct {
	Hands  int
	Rules  game.Rules
	Seed   int64
	Logger *log.Logger
}

// Simulator runs blackjack hand simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregate statistics. Each hand
// gets an independent seed derived from the base seed, so a run is
// reproducible and any single hand can be replayed from its seed.
func (s *Simulator) Run() (*statistics.Statistics, error) {
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("%w: hands must be positive, got %d", game.ErrInvalidConfiguration, s.config.Hands)
	}
	if err := s.config.Rules.Validate(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for hand := 0; hand < s.config.Hands; hand++ {
		handSeed := s.config.Seed + int64(hand)
		payoff, err := s.playHand(handSeed)
		if err != nil {
			return nil, fmt.Errorf("hand %d (seed %d): %w", hand+1, handSeed, err)
		}
		stats.Add(payoff)

		if s.config.Logger != nil && (hand+1)%10000 == 0 {
			s.config.Logger.Debug("progress",
				"hands", hand+1,
				"mean", fmt.Sprintf("%+.4f", stats.Mean()),
				"stderr", fmt.Sprintf("%.4f", stats.StdError()))
		}
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playHand deals a fresh hand and plays every decision with basic strategy
func (s *Simulator) playHand(seed int64) (float64, error) {
	state, err := game.NewState(s.config.Rules, seed)
	if err != nil {
		return 0, err
	}
	for !state.IsFinished() {
		act := strategy.Recommend(state.ActiveHand(), state.Upcard(), state.Rules)
		if err := state.Apply(act); err != nil {
			return 0, err
		}
	}
	return state.Settle()
}
