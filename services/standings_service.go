package services

import (
	"github.com/0xElectro/tournament-manager/models"
	"github.com/0xElectro/tournament-manager/standings"
)

// StandingsService exposes the points table. The table is recomputed from
// scratch on every call; nothing is cached between requests.
type StandingsService interface {
	Table(sport models.SportType) ([]models.Standing, error)
}

type standingsService struct {
	state *TournamentService
}

func NewStandingsService(state *TournamentService) StandingsService {
	return &standingsService{state: state}
}

func (s *standingsService) Table(sport models.SportType) ([]models.Standing, error) {
	var table []models.Standing
	err := s.state.WithRead(sport, func(t *models.Tournament) error {
		table = standings.BuildTable(t.Teams, t.Matches)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}
