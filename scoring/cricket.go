package scoring

import (
	"fmt"

	"github.com/0xElectro/tournament-manager/models"
)

// CricketScore records both innings. Only runs decide the outcome; wickets
// and overs are carried for the summary line. Equal runs are a draw even
// when wickets or overs differ, preserving the original rule.
type CricketScore struct {
	RunsA    int
	WicketsA int
	OversA   float64
	RunsB    int
	WicketsB int
	OversB   float64
}

func (CricketScore) Sport() models.SportType { return models.SportCricket }

type CricketResolver struct{}

func (CricketResolver) Sport() models.SportType { return models.SportCricket }

func (r CricketResolver) Resolve(teamA, teamB string, score Scoreline) (*Result, error) {
	s, ok := score.(CricketScore)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrScorelineMismatch, score.Sport())
	}

	outcome, winner := classify(s.RunsA, s.RunsB)
	summary := fmt.Sprintf("Cricket: %s %d/%d vs %s %d/%d",
		teamA, s.RunsA, s.WicketsA, teamB, s.RunsB, s.WicketsB)

	return &Result{Outcome: outcome, Winner: winner, Summary: summary}, nil
}
