// Package statistics aggregates hand payoffs in bet units.
package statistics

import (
	"fmt"
	"math"
)

// Statistics tracks the running moments and outcome buckets of a sequence
// of per-hand payoffs.
type Statistics struct {
	Hands int
	Sum   float64
	Sum2  float64 // sum of squares for variance calculation

	Wins   int
	Losses int
	Pushes int
}

// Add incorporates a hand payoff in bet units
func (s *Statistics) Add(payoff float64) {
	s.Hands++
	s.Sum += payoff
	s.Sum2 += payoff * payoff
	switch {
	case payoff > 0:
		s.Wins++
	case payoff < 0:
		s.Losses++
	default:
		s.Pushes++
	}
}

// Mean returns the arithmetic mean payoff per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.Sum / float64(s.Hands)
}

// Variance returns the sample variance of the payoffs
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of the payoffs
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the fraction of winning hands
func (s *Statistics) WinRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Hands)
}

// Validate sanity-checks internal consistency
func (s *Statistics) Validate() error {
	if s.Wins+s.Losses+s.Pushes != s.Hands {
		return fmt.Errorf("outcome buckets sum to %d, expected %d hands",
			s.Wins+s.Losses+s.Pushes, s.Hands)
	}
	return nil
}

// String returns a one-line summary like "hands=1000 mean=-0.012 ±0.031"
func (s *Statistics) String() string {
	return fmt.Sprintf("hands=%d mean=%+.4f ±%.4f", s.Hands, s.Mean(), s.StdError())
}
