// Package montecarlo estimates the expected value of blackjack actions by
// rollout. Each trial forks the live state, applies one candidate action,
// then plays every remaining decision with basic strategy until settlement.
package montecarlo

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cardsharp/blackjack/internal/game"
	"github.com/cardsharp/blackjack/internal/randutil"
	"github.com/cardsharp/blackjack/internal/statistics"
	"github.com/cardsharp/blackjack/internal/strategy"
)

// parallelThreshold is the sample count below which the per-goroutine
// overhead outweighs the parallel speedup.
const parallelThreshold = 500

// maxWorkers caps worker goroutines; beyond this the trials are too short
// for extra cores to help.
const maxWorkers = 8

// EstimateEV returns the mean payoff in bet units of taking first, then
// playing basic strategy to settlement, over samples independent trials.
// Trial i draws its card sequence from a fork of the state seeded with a
// pure function of (seed, i), so identical inputs give identical results
// regardless of worker count.
func EstimateEV(state *game.GameState, first game.Action, samples int, seed int64) (float64, error) {
	payoffs, err := samplePayoffs(state, first, samples, seed)
	if err != nil {
		return 0, err
	}
	return mean(payoffs), nil
}

// EstimateEVDetail runs the same trials as EstimateEV and returns the full
// payoff statistics, including the standard error of the estimate.
func EstimateEVDetail(state *game.GameState, first game.Action, samples int, seed int64) (*statistics.Statistics, error) {
	payoffs, err := samplePayoffs(state, first, samples, seed)
	if err != nil {
		return nil, err
	}
	stats := &statistics.Statistics{}
	for _, p := range payoffs {
		stats.Add(p)
	}
	return stats, nil
}

// EstimateMarginalEV returns the mean payoff difference between first and
// baseline. Both branches of trial i fork the state with the same sub-seed,
// so their remaining-shoe orderings coincide and the card sequences share a
// prefix until the branches consume cards differently. These common random
// numbers keep the variance of the difference far below that of two
// independent estimates.
func EstimateMarginalEV(state *game.GameState, first, baseline game.Action, samples int, seed int64) (float64, error) {
	if err := validate(state, samples, first, baseline); err != nil {
		return 0, err
	}
	diffs := make([]float64, samples)
	err := runTrials(samples, func(i int) error {
		trialSeed := randutil.Derive(seed, i)
		a, err := rollout(state, first, trialSeed)
		if err != nil {
			return err
		}
		b, err := rollout(state, baseline, trialSeed)
		if err != nil {
			return err
		}
		diffs[i] = a - b
		return nil
	})
	if err != nil {
		return 0, err
	}
	return mean(diffs), nil
}

func samplePayoffs(state *game.GameState, first game.Action, samples int, seed int64) ([]float64, error) {
	if err := validate(state, samples, first); err != nil {
		return nil, err
	}
	payoffs := make([]float64, samples)
	err := runTrials(samples, func(i int) error {
		p, err := rollout(state, first, randutil.Derive(seed, i))
		if err != nil {
			return err
		}
		payoffs[i] = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payoffs, nil
}

func validate(state *game.GameState, samples int, actions ...game.Action) error {
	if samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", game.ErrInvalidConfiguration, samples)
	}
	legal := state.LegalActions()
	for _, a := range actions {
		if !game.ActionLegal(legal, a) {
			return fmt.Errorf("%w: %s is not legal from this state", game.ErrInvalidAction, a)
		}
	}
	return nil
}

// runTrials executes trial(0..samples-1), in parallel over contiguous index
// chunks when the sample count justifies it. Each trial writes only its own
// slot, so no synchronisation of results is needed.
func runTrials(samples int, trial func(i int) error) error {
	if samples < parallelThreshold {
		for i := 0; i < samples; i++ {
			if err := trial(i); err != nil {
				return err
			}
		}
		return nil
	}

	workers := runtime.NumCPU()
	if workers > maxWorkers {
		workers = maxWorkers
	}
	chunk := (samples + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < samples; start += chunk {
		end := start + chunk
		if end > samples {
			end = samples
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := trial(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// rollout plays one trial to settlement and returns its total payoff.
func rollout(state *game.GameState, first game.Action, seed int64) (float64, error) {
	sim := state.Fork(randutil.New(seed))
	if err := sim.Apply(first); err != nil {
		return 0, err
	}
	for !sim.IsFinished() {
		act := strategy.Recommend(sim.ActiveHand(), sim.Upcard(), sim.Rules)
		if err := sim.Apply(act); err != nil {
			return 0, err
		}
	}
	return sim.Settle()
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
