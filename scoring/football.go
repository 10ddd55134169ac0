package scoring

import (
	"fmt"

	"github.com/0xElectro/tournament-manager/models"
)

type FootballScore struct {
	GoalsA int
	GoalsB int
}

func (FootballScore) Sport() models.SportType { return models.SportFootball }

type FootballResolver struct{}

func (FootballResolver) Sport() models.SportType { return models.SportFootball }

func (r FootballResolver) Resolve(teamA, teamB string, score Scoreline) (*Result, error) {
	s, ok := score.(FootballScore)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrScorelineMismatch, score.Sport())
	}

	outcome, winner := classify(s.GoalsA, s.GoalsB)
	summary := fmt.Sprintf("Football: %s %d - %d %s", teamA, s.GoalsA, s.GoalsB, teamB)

	return &Result{Outcome: outcome, Winner: winner, Summary: summary}, nil
}
