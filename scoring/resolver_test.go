package scoring

import (
	"testing"

	"github.com/0xElectro/tournament-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForSport(t *testing.T) {
	for _, sport := range models.AllSports {
		resolver, err := ForSport(sport)
		require.NoError(t, err)
		assert.Equal(t, sport, resolver.Sport())
	}

	_, err := ForSport(models.SportType("chess"))
	assert.ErrorIs(t, err, ErrUnknownSport)
}

func TestCricketResolve(t *testing.T) {
	resolver := CricketResolver{}

	res, err := resolver.Resolve("Alpha", "Beta", CricketScore{
		RunsA: 250, WicketsA: 8, OversA: 50,
		RunsB: 249, WicketsB: 4, OversB: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeWinner, res.Outcome)
	assert.Equal(t, SideA, res.Winner)
	assert.Equal(t, "Cricket: Alpha 250/8 vs Beta 249/4", res.Summary)

	res, err = resolver.Resolve("Alpha", "Beta", CricketScore{
		RunsA: 180, WicketsA: 10, OversA: 42.3,
		RunsB: 181, WicketsB: 2, OversB: 38.1,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeWinner, res.Outcome)
	assert.Equal(t, SideB, res.Winner)
}

func TestCricketEqualRunsIsDraw(t *testing.T) {
	// Runs alone decide; wickets and overs never break a tie.
	res, err := CricketResolver{}.Resolve("Alpha", "Beta", CricketScore{
		RunsA: 250, WicketsA: 8, OversA: 50,
		RunsB: 250, WicketsB: 6, OversB: 48.4,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeDraw, res.Outcome)
	assert.Equal(t, SideNone, res.Winner)
	assert.Equal(t, "Cricket: Alpha 250/8 vs Beta 250/6", res.Summary)
}

func TestFootballResolve(t *testing.T) {
	resolver := FootballResolver{}

	res, err := resolver.Resolve("Alpha", "Beta", FootballScore{GoalsA: 3, GoalsB: 1})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeWinner, res.Outcome)
	assert.Equal(t, SideA, res.Winner)
	assert.Equal(t, "Football: Alpha 3 - 1 Beta", res.Summary)

	res, err = resolver.Resolve("Alpha", "Beta", FootballScore{GoalsA: 2, GoalsB: 2})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeDraw, res.Outcome)
	assert.Equal(t, SideNone, res.Winner)
}

func TestBasketballResolve(t *testing.T) {
	resolver := BasketballResolver{}

	res, err := resolver.Resolve("Alpha", "Beta", BasketballScore{PointsA: 78, PointsB: 91})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeWinner, res.Outcome)
	assert.Equal(t, SideB, res.Winner)
	assert.Equal(t, "Basketball: Alpha 78 - 91 Beta", res.Summary)

	res, err = resolver.Resolve("Alpha", "Beta", BasketballScore{PointsA: 80, PointsB: 80})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeDraw, res.Outcome)
	assert.Equal(t, SideNone, res.Winner)
}

func TestResolveScorelineMismatch(t *testing.T) {
	_, err := CricketResolver{}.Resolve("Alpha", "Beta", FootballScore{GoalsA: 1})
	assert.ErrorIs(t, err, ErrScorelineMismatch)

	_, err = FootballResolver{}.Resolve("Alpha", "Beta", BasketballScore{PointsA: 1})
	assert.ErrorIs(t, err, ErrScorelineMismatch)
}

func TestResolveTrustsRawInputs(t *testing.T) {
	// Validation lives at the collection point (console prompts); the
	// resolver itself accepts whatever numbers it is given.
	res, err := FootballResolver{}.Resolve("Alpha", "Beta", FootballScore{GoalsA: -2, GoalsB: -5})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeWinner, res.Outcome)
	assert.Equal(t, SideA, res.Winner)
}
