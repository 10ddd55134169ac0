package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xElectro/tournament-manager/models"
	"github.com/0xElectro/tournament-manager/repositories"
	"github.com/0xElectro/tournament-manager/scoring"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStateWithDir(t *testing.T, dir string, logger *slog.Logger) *TournamentService {
	t.Helper()
	state := NewTournamentService(repositories.NewFileTournamentRepository(dir), logger)
	require.NoError(t, state.LoadAll(context.Background()))
	return state
}

func setupState(t *testing.T) *TournamentService {
	t.Helper()
	return newStateWithDir(t, t.TempDir(), discardLogger())
}

func addTeams(t *testing.T, roster RosterService, sport models.SportType, names ...string) []*models.Team {
	t.Helper()
	teams := make([]*models.Team, 0, len(names))
	for _, name := range names {
		team, err := roster.AddTeam(sport, name)
		require.NoError(t, err)
		teams = append(teams, team)
	}
	return teams
}

func TestScheduleMatch(t *testing.T) {
	state := setupState(t)
	roster := NewRosterService(state)
	matches := NewMatchService(state, nil)

	teams := addTeams(t, roster, models.SportFootball, "Alpha", "Beta")

	m, err := matches.ScheduleMatch(models.SportFootball, ScheduleMatchParams{
		TeamAID: teams[0].ID,
		TeamBID: teams[1].ID,
		Date:    "2025-12-01",
		Time:    "16:00",
		Venue:   "City Arena",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, m.ID)
	assert.False(t, m.Completed)
	assert.Equal(t, models.OutcomeUndecided, m.Outcome)

	m2, err := matches.ScheduleMatch(models.SportFootball, ScheduleMatchParams{
		TeamAID: teams[1].ID, TeamBID: teams[0].ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m2.ID, "match IDs are monotonic")
}

func TestScheduleMatchValidation(t *testing.T) {
	state := setupState(t)
	roster := NewRosterService(state)
	matches := NewMatchService(state, nil)

	teams := addTeams(t, roster, models.SportFootball, "Alpha", "Beta")

	_, err := matches.ScheduleMatch(models.SportFootball, ScheduleMatchParams{
		TeamAID: teams[0].ID, TeamBID: teams[0].ID,
	})
	assert.ErrorIs(t, err, ErrSameTeam)

	_, err = matches.ScheduleMatch(models.SportFootball, ScheduleMatchParams{
		TeamAID: teams[0].ID, TeamBID: 99,
	})
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestEnterResultFootball(t *testing.T) {
	state := setupState(t)
	roster := NewRosterService(state)
	matches := NewMatchService(state, nil)
	table := NewStandingsService(state)

	teams := addTeams(t, roster, models.SportFootball, "Alpha", "Beta")
	m, err := matches.ScheduleMatch(models.SportFootball, ScheduleMatchParams{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID,
	})
	require.NoError(t, err)

	view, err := matches.EnterResult(models.SportFootball, m.ID, scoring.FootballScore{GoalsA: 3, GoalsB: 1})
	require.NoError(t, err)
	assert.True(t, view.Completed)
	assert.Equal(t, models.OutcomeWinner, view.Outcome)
	assert.Equal(t, teams[0].ID, view.WinnerID)
	assert.Equal(t, "Alpha", view.WinnerName)
	assert.Equal(t, "Football: Alpha 3 - 1 Beta", view.Summary)

	rows, err := table.Table(models.SportFootball)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.Standing{TeamID: teams[0].ID, TeamName: "Alpha", Played: 1, Wins: 1, Points: 2}, rows[0])
	assert.Equal(t, models.Standing{TeamID: teams[1].ID, TeamName: "Beta", Played: 1, Losses: 1}, rows[1])
}

func TestEnterResultBasketballDraw(t *testing.T) {
	state := setupState(t)
	roster := NewRosterService(state)
	matches := NewMatchService(state, nil)
	table := NewStandingsService(state)

	teams := addTeams(t, roster, models.SportBasketball, "Alpha", "Beta")
	m, err := matches.ScheduleMatch(models.SportBasketball, ScheduleMatchParams{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID,
	})
	require.NoError(t, err)

	view, err := matches.EnterResult(models.SportBasketball, m.ID, scoring.BasketballScore{PointsA: 80, PointsB: 80})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeDraw, view.Outcome)
	assert.Zero(t, view.WinnerID, "a drawn match has no winner")
	assert.Empty(t, view.WinnerName)

	rows, err := table.Table(models.SportBasketball)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Equal(t, 1, row.Played)
		assert.Equal(t, 1, row.Draws)
		assert.Equal(t, 1, row.Points)
	}
}

func TestEnterResultOverwritesPreviousOutcome(t *testing.T) {
	state := setupState(t)
	roster := NewRosterService(state)
	matches := NewMatchService(state, nil)

	teams := addTeams(t, roster, models.SportCricket, "Alpha", "Beta")
	m, err := matches.ScheduleMatch(models.SportCricket, ScheduleMatchParams{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID,
	})
	require.NoError(t, err)

	view, err := matches.EnterResult(models.SportCricket, m.ID, scoring.CricketScore{
		RunsA: 250, WicketsA: 8, RunsB: 250, WicketsB: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeDraw, view.Outcome)
	assert.Equal(t, "Cricket: Alpha 250/8 vs Beta 250/6", view.Summary)

	// A corrected scorecard replaces the recorded outcome entirely.
	view, err = matches.EnterResult(models.SportCricket, m.ID, scoring.CricketScore{
		RunsA: 250, WicketsA: 8, RunsB: 251, WicketsB: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeWinner, view.Outcome)
	assert.Equal(t, teams[1].ID, view.WinnerID)
}

func TestEnterResultErrors(t *testing.T) {
	state := setupState(t)
	roster := NewRosterService(state)
	matches := NewMatchService(state, nil)

	teams := addTeams(t, roster, models.SportFootball, "Alpha", "Beta")
	m, err := matches.ScheduleMatch(models.SportFootball, ScheduleMatchParams{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID,
	})
	require.NoError(t, err)

	_, err = matches.EnterResult(models.SportFootball, 42, scoring.FootballScore{})
	assert.ErrorIs(t, err, ErrMatchNotFound)

	_, err = matches.EnterResult(models.SportFootball, m.ID, scoring.BasketballScore{PointsA: 1})
	assert.ErrorIs(t, err, scoring.ErrScorelineMismatch)

	// Deleting a side leaves the match dangling; result entry is rejected.
	require.NoError(t, roster.DeleteTeam(models.SportFootball, teams[1].ID))
	_, err = matches.EnterResult(models.SportFootball, m.ID, scoring.FootballScore{GoalsA: 1})
	assert.ErrorIs(t, err, ErrInvalidTeamReference)
}

func TestGenerateRoundRobin(t *testing.T) {
	state := setupState(t)
	roster := NewRosterService(state)
	matches := NewMatchService(state, nil)

	addTeams(t, roster, models.SportCricket, "A", "B", "C", "D")

	created, err := matches.GenerateRoundRobin(models.SportCricket, "Main Ground")
	require.NoError(t, err)
	assert.Len(t, created, 6, "4 teams yield C(4,2) fixtures")

	seen := make(map[[2]int]bool)
	for _, m := range created {
		assert.NotEqual(t, m.TeamAID, m.TeamBID)
		assert.Equal(t, "Main Ground", m.Venue)
		pair := [2]int{m.TeamAID, m.TeamBID}
		assert.False(t, seen[pair], "each pairing scheduled once")
		seen[pair] = true
	}

	_, err = matches.GenerateRoundRobin(models.SportBasketball, "")
	assert.ErrorIs(t, err, ErrNotEnoughTeams)
}

func TestListResultsFiltersScheduled(t *testing.T) {
	state := setupState(t)
	roster := NewRosterService(state)
	matches := NewMatchService(state, nil)

	teams := addTeams(t, roster, models.SportFootball, "Alpha", "Beta")
	m1, err := matches.ScheduleMatch(models.SportFootball, ScheduleMatchParams{TeamAID: teams[0].ID, TeamBID: teams[1].ID})
	require.NoError(t, err)
	_, err = matches.ScheduleMatch(models.SportFootball, ScheduleMatchParams{TeamAID: teams[1].ID, TeamBID: teams[0].ID})
	require.NoError(t, err)

	_, err = matches.EnterResult(models.SportFootball, m1.ID, scoring.FootballScore{GoalsA: 2, GoalsB: 0})
	require.NoError(t, err)

	all, err := matches.ListMatches(models.SportFootball)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Alpha", all[0].TeamAName)

	results, err := matches.ListResults(models.SportFootball)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, m1.ID, results[0].ID)
}
