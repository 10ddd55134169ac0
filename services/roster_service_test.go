package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xElectro/tournament-manager/models"
	"github.com/0xElectro/tournament-manager/scoring"
)

func TestTeamLifecycle(t *testing.T) {
	state := setupState(t)
	roster := NewRosterService(state)

	alpha, err := roster.AddTeam(models.SportCricket, "Alpha")
	require.NoError(t, err)
	beta, err := roster.AddTeam(models.SportCricket, "Beta")
	require.NoError(t, err)
	assert.NotEqual(t, alpha.ID, beta.ID)

	_, err = roster.AddTeam(models.SportCricket, "   ")
	assert.ErrorIs(t, err, ErrTeamNameRequired)

	require.NoError(t, roster.RenameTeam(models.SportCricket, alpha.ID, "Alpha XI"))
	assert.ErrorIs(t, roster.RenameTeam(models.SportCricket, 99, "X"), ErrTeamNotFound)

	teams, err := roster.ListTeams(models.SportCricket)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Alpha XI", teams[0].Name)

	require.NoError(t, roster.DeleteTeam(models.SportCricket, alpha.ID))
	teams, err = roster.ListTeams(models.SportCricket)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, beta.ID, teams[0].ID, "surviving team keeps its ID")

	// The freed ID is never handed out again.
	gamma, err := roster.AddTeam(models.SportCricket, "Gamma")
	require.NoError(t, err)
	assert.Greater(t, gamma.ID, beta.ID)
}

func TestPlayerLifecycle(t *testing.T) {
	state := setupState(t)
	roster := NewRosterService(state)

	team, err := roster.AddTeam(models.SportFootball, "Alpha")
	require.NoError(t, err)

	require.NoError(t, roster.AddPlayer(models.SportFootball, team.ID,
		models.Player{Name: "Ann", Role: "Goalkeeper", JerseyNo: 1}))
	require.NoError(t, roster.AddPlayer(models.SportFootball, team.ID,
		models.Player{Name: "Bo", Role: "Striker", JerseyNo: 9}))

	assert.ErrorIs(t, roster.AddPlayer(models.SportFootball, 99, models.Player{Name: "X"}), ErrTeamNotFound)

	require.NoError(t, roster.UpdatePlayer(models.SportFootball, team.ID, 1,
		models.Player{Name: "Bo", Role: "Midfielder", JerseyNo: 8}))
	assert.ErrorIs(t, roster.UpdatePlayer(models.SportFootball, team.ID, 5, models.Player{}), ErrPlayerNotFound)

	require.NoError(t, roster.DeletePlayer(models.SportFootball, team.ID, 0))

	teams, err := roster.ListTeams(models.SportFootball)
	require.NoError(t, err)
	require.Len(t, teams[0].Players, 1)
	assert.Equal(t, "Midfielder", teams[0].Players[0].Role)
}

func TestDeletedTeamMatchesAreSkippedByStandings(t *testing.T) {
	state := setupState(t)
	roster := NewRosterService(state)
	matches := NewMatchService(state, nil)
	table := NewStandingsService(state)

	teams := addTeams(t, roster, models.SportFootball, "Alpha", "Beta", "Gamma")

	m1, err := matches.ScheduleMatch(models.SportFootball, ScheduleMatchParams{TeamAID: teams[0].ID, TeamBID: teams[1].ID})
	require.NoError(t, err)
	m2, err := matches.ScheduleMatch(models.SportFootball, ScheduleMatchParams{TeamAID: teams[0].ID, TeamBID: teams[2].ID})
	require.NoError(t, err)

	_, err = matches.EnterResult(models.SportFootball, m1.ID, scoring.FootballScore{GoalsA: 1, GoalsB: 0})
	require.NoError(t, err)
	_, err = matches.EnterResult(models.SportFootball, m2.ID, scoring.FootballScore{GoalsA: 0, GoalsB: 2})
	require.NoError(t, err)

	require.NoError(t, roster.DeleteTeam(models.SportFootball, teams[1].ID))

	rows, err := table.Table(models.SportFootball)
	require.NoError(t, err)
	require.Len(t, rows, 2, "one row per surviving team")

	// The completed match against the deleted team no longer counts; only
	// Alpha vs Gamma remains in the fold.
	assert.Equal(t, models.Standing{TeamID: teams[0].ID, TeamName: "Alpha", Played: 1, Losses: 1}, rows[0])
	assert.Equal(t, models.Standing{TeamID: teams[2].ID, TeamName: "Gamma", Played: 1, Wins: 1, Points: 2}, rows[1])
}

func TestStateSurvivesSaveAndReload(t *testing.T) {
	logger := discardLogger()
	dir := t.TempDir()

	state := newStateWithDir(t, dir, logger)
	roster := NewRosterService(state)
	matches := NewMatchService(state, nil)

	teams := addTeams(t, roster, models.SportCricket, "Alpha", "Beta")
	m, err := matches.ScheduleMatch(models.SportCricket, ScheduleMatchParams{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID, Date: "2026-01-10", Time: "09:30", Venue: "Oval",
	})
	require.NoError(t, err)
	_, err = matches.EnterResult(models.SportCricket, m.ID, scoring.CricketScore{
		RunsA: 301, WicketsA: 5, OversA: 50, RunsB: 300, WicketsB: 9, OversB: 50,
	})
	require.NoError(t, err)
	require.NoError(t, state.SaveAll(context.Background()))

	// Fresh process against the same data directory.
	reloaded := newStateWithDir(t, dir, logger)
	table := NewStandingsService(reloaded)

	rows, err := table.Table(models.SportCricket)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Points)
	assert.Equal(t, 1, rows[1].Losses)

	reMatches, err := NewMatchService(reloaded, nil).ListResults(models.SportCricket)
	require.NoError(t, err)
	require.Len(t, reMatches, 1)
	assert.Equal(t, "Cricket: Alpha 301/5 vs Beta 300/9", reMatches[0].Summary)

	// The match counter picks up where the previous run stopped.
	next, err := NewMatchService(reloaded, nil).ScheduleMatch(models.SportCricket, ScheduleMatchParams{
		TeamAID: rows[0].TeamID, TeamBID: rows[1].TeamID,
	})
	require.NoError(t, err)
	assert.Equal(t, m.ID+1, next.ID)
}
