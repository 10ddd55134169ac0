package models

// Tournament is the in-memory aggregate for one sport: the roster, the
// match list, and the ID counters. It carries no lock of its own; access
// is coordinated by the services layer, which has exactly one writer (the
// console operator).
type Tournament struct {
	Sport       SportType `json:"sport"`
	Teams       []*Team   `json:"teams"`
	Matches     []*Match  `json:"matches"`
	NextTeamID  int       `json:"next_team_id"`
	NextMatchID int       `json:"next_match_id"`
}

// NewTournament returns an empty tournament with counters starting at 1,
// matching the numbering of the original data files.
func NewTournament(sport SportType) *Tournament {
	return &Tournament{
		Sport:       sport,
		NextTeamID:  1,
		NextMatchID: 1,
	}
}

// TeamByID resolves a stable team ID, returning nil when the team has been
// deleted or never existed.
func (t *Tournament) TeamByID(id int) *Team {
	if id <= 0 {
		return nil
	}
	for _, team := range t.Teams {
		if team.ID == id {
			return team
		}
	}
	return nil
}

// MatchByID resolves a match ID, returning nil when unknown.
func (t *Tournament) MatchByID(id int) *Match {
	for _, m := range t.Matches {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// TeamIndex returns the registration position of the team with the given
// ID, or -1 when the reference does not resolve. The flat-file layout
// stores positions, not IDs.
func (t *Tournament) TeamIndex(id int) int {
	for i, team := range t.Teams {
		if team.ID == id {
			return i
		}
	}
	return -1
}
