package services

import (
	"fmt"

	"github.com/0xElectro/tournament-manager/live"
	"github.com/0xElectro/tournament-manager/models"
	"github.com/0xElectro/tournament-manager/scoring"
	"github.com/0xElectro/tournament-manager/standings"
)

// ScheduleMatchParams carries the operator's input for a new fixture. Date
// and time are free-form strings; their format is not validated.
type ScheduleMatchParams struct {
	TeamAID int
	TeamBID int
	Date    string
	Time    string
	Venue   string
}

// MatchView is a match joined with the names its references resolve to,
// for rendering. Unresolved references display as a placeholder instead of
// being renumbered.
type MatchView struct {
	models.Match
	TeamAName  string `json:"team_a_name"`
	TeamBName  string `json:"team_b_name"`
	WinnerName string `json:"winner_name,omitempty"`
}

// MatchService schedules fixtures and applies results. Result entry is the
// only path that completes a match: it classifies the scoreline through
// the sport's outcome resolver, mutates the match in place, and pushes the
// refreshed standings to live viewers. Re-entering a result overwrites the
// previous outcome.
type MatchService interface {
	ScheduleMatch(sport models.SportType, params ScheduleMatchParams) (*models.Match, error)
	GenerateRoundRobin(sport models.SportType, venue string) ([]models.Match, error)
	EnterResult(sport models.SportType, matchID int, score scoring.Scoreline) (*MatchView, error)
	ListMatches(sport models.SportType) ([]MatchView, error)
	ListResults(sport models.SportType) ([]MatchView, error)
}

type matchService struct {
	state *TournamentService
	hub   *live.Hub // nil when the viewer is disabled
}

func NewMatchService(state *TournamentService, hub *live.Hub) MatchService {
	return &matchService{state: state, hub: hub}
}

func (s *matchService) ScheduleMatch(sport models.SportType, params ScheduleMatchParams) (*models.Match, error) {
	if params.TeamAID == params.TeamBID {
		return nil, ErrSameTeam
	}

	var created *models.Match
	err := s.state.WithWrite(sport, func(t *models.Tournament) error {
		if t.TeamByID(params.TeamAID) == nil || t.TeamByID(params.TeamBID) == nil {
			return ErrTeamNotFound
		}

		m := &models.Match{
			ID:      t.NextMatchID,
			TeamAID: params.TeamAID,
			TeamBID: params.TeamBID,
			Date:    params.Date,
			Time:    params.Time,
			Venue:   params.Venue,
			Outcome: models.OutcomeUndecided,
		}
		t.NextMatchID++
		t.Matches = append(t.Matches, m)

		copied := *m
		created = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GenerateRoundRobin schedules one fixture for every unordered pair of
// currently registered teams (a single round; each pairing once). Date and
// time are left for the operator to fill in per fixture.
func (s *matchService) GenerateRoundRobin(sport models.SportType, venue string) ([]models.Match, error) {
	var created []models.Match
	err := s.state.WithWrite(sport, func(t *models.Tournament) error {
		if len(t.Teams) < 2 {
			return ErrNotEnoughTeams
		}

		for i := 0; i < len(t.Teams); i++ {
			for j := i + 1; j < len(t.Teams); j++ {
				m := &models.Match{
					ID:      t.NextMatchID,
					TeamAID: t.Teams[i].ID,
					TeamBID: t.Teams[j].ID,
					Venue:   venue,
					Outcome: models.OutcomeUndecided,
				}
				t.NextMatchID++
				t.Matches = append(t.Matches, m)
				created = append(created, *m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *matchService) EnterResult(sport models.SportType, matchID int, score scoring.Scoreline) (*MatchView, error) {
	resolver, err := scoring.ForSport(sport)
	if err != nil {
		return nil, err
	}

	var (
		view  MatchView
		table []models.Standing
	)
	err = s.state.WithWrite(sport, func(t *models.Tournament) error {
		m := t.MatchByID(matchID)
		if m == nil {
			return ErrMatchNotFound
		}
		teamA := t.TeamByID(m.TeamAID)
		teamB := t.TeamByID(m.TeamBID)
		if teamA == nil || teamB == nil {
			return fmt.Errorf("%w: match %d", ErrInvalidTeamReference, matchID)
		}

		result, err := resolver.Resolve(teamA.Name, teamB.Name, score)
		if err != nil {
			return err
		}

		m.Completed = true
		m.Outcome = result.Outcome
		m.Summary = result.Summary
		switch result.Winner {
		case scoring.SideA:
			m.WinnerID = teamA.ID
		case scoring.SideB:
			m.WinnerID = teamB.ID
		default:
			m.WinnerID = 0
		}

		view = newMatchView(t, m)
		table = standings.BuildTable(t.Teams, t.Matches)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Broadcast outside the write lock; payloads were snapshotted above.
	if s.hub != nil {
		s.hub.BroadcastUpdate(sport, live.TypeMatchUpdated, view)
		s.hub.BroadcastUpdate(sport, live.TypeStandingsUpdated, table)
	}
	return &view, nil
}

func (s *matchService) ListMatches(sport models.SportType) ([]MatchView, error) {
	return s.listMatches(sport, false)
}

// ListResults returns completed matches only.
func (s *matchService) ListResults(sport models.SportType) ([]MatchView, error) {
	return s.listMatches(sport, true)
}

func (s *matchService) listMatches(sport models.SportType, completedOnly bool) ([]MatchView, error) {
	var views []MatchView
	err := s.state.WithRead(sport, func(t *models.Tournament) error {
		views = make([]MatchView, 0, len(t.Matches))
		for _, m := range t.Matches {
			if completedOnly && !m.Completed {
				continue
			}
			views = append(views, newMatchView(t, m))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

const removedTeamName = "(removed team)"

func newMatchView(t *models.Tournament, m *models.Match) MatchView {
	view := MatchView{Match: *m, TeamAName: removedTeamName, TeamBName: removedTeamName}
	if team := t.TeamByID(m.TeamAID); team != nil {
		view.TeamAName = team.Name
	}
	if team := t.TeamByID(m.TeamBID); team != nil {
		view.TeamBName = team.Name
	}
	if m.Outcome == models.OutcomeWinner {
		if winner := t.TeamByID(m.WinnerID); winner != nil {
			view.WinnerName = winner.Name
		}
	}
	return view
}
