package scoring

import (
	"fmt"

	"github.com/0xElectro/tournament-manager/models"
)

type BasketballScore struct {
	PointsA int
	PointsB int
}

func (BasketballScore) Sport() models.SportType { return models.SportBasketball }

type BasketballResolver struct{}

func (BasketballResolver) Sport() models.SportType { return models.SportBasketball }

func (r BasketballResolver) Resolve(teamA, teamB string, score Scoreline) (*Result, error) {
	s, ok := score.(BasketballScore)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrScorelineMismatch, score.Sport())
	}

	outcome, winner := classify(s.PointsA, s.PointsB)
	summary := fmt.Sprintf("Basketball: %s %d - %d %s", teamA, s.PointsA, s.PointsB, teamB)

	return &Result{Outcome: outcome, Winner: winner, Summary: summary}, nil
}
