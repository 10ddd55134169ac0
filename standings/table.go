// Package standings derives the points table for a tournament. The table
// is recomputed from scratch on every request and holds no state between
// calls.
package standings

import (
	"github.com/0xElectro/tournament-manager/models"
)

// Points awarded per completed match.
const (
	WinPoints  = 2
	DrawPoints = 1
)

// BuildTable folds the completed matches into one row per team, in team
// registration order. Incomplete matches contribute nothing. A completed
// match whose team references no longer resolve (a side was deleted, or a
// recorded winner names neither side) is skipped rather than guessed at,
// so the table stays available while the roster is being repaired.
func BuildTable(teams []*models.Team, matches []*models.Match) []models.Standing {
	index := make(map[int]*models.Standing, len(teams))
	table := make([]models.Standing, len(teams))
	for i, team := range teams {
		table[i] = models.Standing{TeamID: team.ID, TeamName: team.Name}
		index[team.ID] = &table[i]
	}

	for _, m := range matches {
		if !m.Completed {
			continue
		}
		rowA := index[m.TeamAID]
		rowB := index[m.TeamBID]
		if rowA == nil || rowB == nil {
			continue
		}

		switch m.Outcome {
		case models.OutcomeDraw:
			rowA.Played++
			rowB.Played++
			rowA.Draws++
			rowB.Draws++
			rowA.Points += DrawPoints
			rowB.Points += DrawPoints

		case models.OutcomeWinner:
			winner := index[m.WinnerID]
			if winner != rowA && winner != rowB {
				continue
			}
			loser := rowA
			if winner == rowA {
				loser = rowB
			}
			rowA.Played++
			rowB.Played++
			winner.Wins++
			winner.Points += WinPoints
			loser.Losses++
		}
	}

	return table
}
