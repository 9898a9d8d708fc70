package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardsharp/blackjack/internal/deck"
	"github.com/cardsharp/blackjack/internal/game"
)

func scenario(t *testing.T, player string, dealer string) *game.GameState {
	t.Helper()
	playerCards, err := deck.ParseCards(player)
	require.NoError(t, err)
	upcard, err := deck.ParseCard(dealer)
	require.NoError(t, err)
	state, err := game.NewState(game.DefaultRules(), 7,
		game.WithPlayerCards(playerCards...),
		game.WithDealerCards(upcard))
	require.NoError(t, err)
	return state
}

func TestEstimateEVDeterministic(t *testing.T) {
	state := scenario(t, "9,3", "2")

	// 500 samples exercises the parallel path; results must still be
	// bit-identical across runs.
	a, err := EstimateEV(state, game.Hit, 500, 42)
	require.NoError(t, err)
	b, err := EstimateEV(state, game.Hit, 500, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEstimateEVValidation(t *testing.T) {
	state := scenario(t, "9,3", "2")

	_, err := EstimateEV(state, game.Hit, 0, 1)
	assert.ErrorIs(t, err, game.ErrInvalidConfiguration)
	_, err = EstimateEV(state, game.Hit, -5, 1)
	assert.ErrorIs(t, err, game.ErrInvalidConfiguration)

	// Split is not legal on 9,3.
	_, err = EstimateEV(state, game.Split, 100, 1)
	assert.ErrorIs(t, err, game.ErrInvalidAction)
}

func TestEstimateEVOrdering(t *testing.T) {
	// Standing on 20 is far better than hitting it.
	state := scenario(t, "10,10", "6")

	stand, err := EstimateEV(state, game.Stand, 2000, 11)
	require.NoError(t, err)
	hit, err := EstimateEV(state, game.Hit, 2000, 11)
	require.NoError(t, err)

	assert.Greater(t, stand, 0.4, "20 vs 6 should win comfortably")
	assert.Less(t, hit, stand-0.5, "hitting 20 should be clearly worse than standing")
}

func TestEstimateEVDoesNotTouchLiveState(t *testing.T) {
	state := scenario(t, "9,3", "2")
	remaining := state.Shoe.Remaining()

	_, err := EstimateEV(state, game.Hit, 1000, 3)
	require.NoError(t, err)

	assert.Equal(t, remaining, state.Shoe.Remaining())
	assert.False(t, state.IsFinished())
}

func TestEstimateMarginalEV(t *testing.T) {
	state := scenario(t, "10,6", "10")

	// An action against itself has exactly zero marginal EV: both branches
	// replay identical trials.
	zero, err := EstimateMarginalEV(state, game.Hit, game.Hit, 300, 5)
	require.NoError(t, err)
	assert.Zero(t, zero)

	// Paired trials share seeds with the plain estimates, so the marginal
	// EV matches the difference of the individual estimates.
	marginal, err := EstimateMarginalEV(state, game.Hit, game.Stand, 600, 5)
	require.NoError(t, err)
	hit, err := EstimateEV(state, game.Hit, 600, 5)
	require.NoError(t, err)
	stand, err := EstimateEV(state, game.Stand, 600, 5)
	require.NoError(t, err)
	assert.InDelta(t, hit-stand, marginal, 1e-9)
}

func TestEstimateEVIndependentOfHoleCard(t *testing.T) {
	holeScenario := func(hole deck.Rank) *game.GameState {
		state, err := game.NewState(game.DefaultRules(), 7,
			game.WithPlayerCards(deck.NewCard(deck.Ten), deck.NewCard(deck.Six)),
			game.WithDealerCards(deck.NewCard(deck.Ten), deck.NewCard(hole)))
		require.NoError(t, err)
		return state
	}

	// Only the upcard is visible, so trials redraw the hole and the dealt
	// one has no bearing on the estimate. With a ten rigged in the hole a
	// conditioned estimator would settle every STAND trial at exactly -1.
	tenHole, err := EstimateEVDetail(holeScenario(deck.Ten), game.Stand, 4000, 31)
	require.NoError(t, err)
	fiveHole, err := EstimateEVDetail(holeScenario(deck.Five), game.Stand, 4000, 31)
	require.NoError(t, err)

	assert.Greater(t, tenHole.Mean(), -0.9, "16 vs 10 stands well above a sure loss")
	assert.Greater(t, tenHole.StdError(), 0.0, "outcomes must vary across trials")
	assert.InDelta(t, tenHole.Mean(), fiveHole.Mean(), 0.1)
}

func TestEstimateEVDetailConvergence(t *testing.T) {
	state := scenario(t, "10,6", "10")

	small, err := EstimateEVDetail(state, game.Hit, 500, 17)
	require.NoError(t, err)
	large, err := EstimateEVDetail(state, game.Hit, 8000, 17)
	require.NoError(t, err)

	// Standard error shrinks roughly with the square root of the sample
	// count; a 16x increase leaves ample margin for noise.
	assert.Less(t, large.StdError(), small.StdError())
	assert.Equal(t, 8000, large.Hands)
}

func TestEstimateEVSplitScenario(t *testing.T) {
	state := scenario(t, "8,8", "6")

	split, err := EstimateEV(state, game.Split, 2000, 23)
	require.NoError(t, err)
	stand, err := EstimateEV(state, game.Stand, 2000, 23)
	require.NoError(t, err)

	// 16 vs 6 stands around -0.15; splitting the eights is clearly better.
	assert.Greater(t, split, stand)
}
