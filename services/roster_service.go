package services

import (
	"strings"

	"github.com/0xElectro/tournament-manager/models"
)

// RosterService manages teams and players. Teams are addressed by their
// stable ID; players by position within their team, since they have no
// identity beyond their team. Deleting a team never renumbers anything:
// matches that referenced it simply stop resolving.
type RosterService interface {
	AddTeam(sport models.SportType, name string) (*models.Team, error)
	RenameTeam(sport models.SportType, teamID int, name string) error
	DeleteTeam(sport models.SportType, teamID int) error

	AddPlayer(sport models.SportType, teamID int, player models.Player) error
	UpdatePlayer(sport models.SportType, teamID, playerIndex int, player models.Player) error
	DeletePlayer(sport models.SportType, teamID, playerIndex int) error

	ListTeams(sport models.SportType) ([]models.Team, error)
}

type rosterService struct {
	state *TournamentService
}

func NewRosterService(state *TournamentService) RosterService {
	return &rosterService{state: state}
}

func (s *rosterService) AddTeam(sport models.SportType, name string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	var created *models.Team
	err := s.state.WithWrite(sport, func(t *models.Tournament) error {
		team := &models.Team{ID: t.NextTeamID, Name: name}
		t.NextTeamID++
		t.Teams = append(t.Teams, team)
		copied := *team
		created = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *rosterService) RenameTeam(sport models.SportType, teamID int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrTeamNameRequired
	}

	return s.state.WithWrite(sport, func(t *models.Tournament) error {
		team := t.TeamByID(teamID)
		if team == nil {
			return ErrTeamNotFound
		}
		team.Name = name
		return nil
	})
}

func (s *rosterService) DeleteTeam(sport models.SportType, teamID int) error {
	return s.state.WithWrite(sport, func(t *models.Tournament) error {
		for i, team := range t.Teams {
			if team.ID == teamID {
				t.Teams = append(t.Teams[:i], t.Teams[i+1:]...)
				return nil
			}
		}
		return ErrTeamNotFound
	})
}

func (s *rosterService) AddPlayer(sport models.SportType, teamID int, player models.Player) error {
	return s.state.WithWrite(sport, func(t *models.Tournament) error {
		team := t.TeamByID(teamID)
		if team == nil {
			return ErrTeamNotFound
		}
		team.Players = append(team.Players, player)
		return nil
	})
}

func (s *rosterService) UpdatePlayer(sport models.SportType, teamID, playerIndex int, player models.Player) error {
	return s.state.WithWrite(sport, func(t *models.Tournament) error {
		team := t.TeamByID(teamID)
		if team == nil {
			return ErrTeamNotFound
		}
		if playerIndex < 0 || playerIndex >= len(team.Players) {
			return ErrPlayerNotFound
		}
		team.Players[playerIndex] = player
		return nil
	})
}

func (s *rosterService) DeletePlayer(sport models.SportType, teamID, playerIndex int) error {
	return s.state.WithWrite(sport, func(t *models.Tournament) error {
		team := t.TeamByID(teamID)
		if team == nil {
			return ErrTeamNotFound
		}
		if playerIndex < 0 || playerIndex >= len(team.Players) {
			return ErrPlayerNotFound
		}
		team.Players = append(team.Players[:playerIndex], team.Players[playerIndex+1:]...)
		return nil
	})
}

// ListTeams returns a deep copy in registration order, safe to use after
// the read lock is released.
func (s *rosterService) ListTeams(sport models.SportType) ([]models.Team, error) {
	var teams []models.Team
	err := s.state.WithRead(sport, func(t *models.Tournament) error {
		teams = make([]models.Team, 0, len(t.Teams))
		for _, team := range t.Teams {
			copied := *team
			copied.Players = append([]models.Player(nil), team.Players...)
			teams = append(teams, copied)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}
