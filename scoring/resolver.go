package scoring

import (
	"errors"
	"fmt"

	"github.com/0xElectro/tournament-manager/models"
)

var (
	// ErrScorelineMismatch is returned when a scoreline of one sport is
	// handed to the resolver of another.
	ErrScorelineMismatch = errors.New("scoreline does not match resolver sport")

	// ErrUnknownSport is returned by ForSport for a sport with no resolver.
	ErrUnknownSport = errors.New("no outcome resolver for sport")
)

// Side names the winning side of a resolved match. The resolver works on
// raw performance numbers and team names only, so it reports the side; the
// caller maps the side back to a team reference.
type Side int

const (
	SideNone Side = iota
	SideA
	SideB
)

// Scoreline carries the raw performance numbers for both sides of one
// match. Each sport has its own concrete type.
type Scoreline interface {
	Sport() models.SportType
}

// Result is the classified outcome of a completed match plus its
// fixed-format summary line.
type Result struct {
	Outcome models.Outcome
	Winner  Side
	Summary string
}

// OutcomeResolver classifies a scoreline into win/draw and renders the
// summary. Resolvers trust their inputs: negative or implausible numbers
// are the input collector's problem, not theirs.
type OutcomeResolver interface {
	Sport() models.SportType
	Resolve(teamA, teamB string, score Scoreline) (*Result, error)
}

// ForSport selects the resolver for a sport tag. The variant set is closed:
// one resolver per managed sport.
func ForSport(sport models.SportType) (OutcomeResolver, error) {
	switch sport {
	case models.SportCricket:
		return &CricketResolver{}, nil
	case models.SportFootball:
		return &FootballResolver{}, nil
	case models.SportBasketball:
		return &BasketballResolver{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSport, sport)
}

// classify maps two comparable totals to an outcome. Equal totals are a
// draw; there is no secondary tie-break.
func classify(a, b int) (models.Outcome, Side) {
	switch {
	case a > b:
		return models.OutcomeWinner, SideA
	case b > a:
		return models.OutcomeWinner, SideB
	}
	return models.OutcomeDraw, SideNone
}
