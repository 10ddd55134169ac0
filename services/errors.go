package services

import "errors"

// Shared errors used across services and mapped to HTTP statuses by the
// viewer. Every failure is terminal for the single requested operation and
// leaves in-memory state untouched.
var (
	ErrUnknownTournament = errors.New("no tournament managed for this sport")

	// Roster
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameRequired = errors.New("team name is required")
	ErrPlayerNotFound   = errors.New("player not found")

	// Scheduling
	ErrMatchNotFound  = errors.New("match not found")
	ErrSameTeam       = errors.New("a team cannot play itself")
	ErrNotEnoughTeams = errors.New("at least two teams are required")

	// Result entry
	ErrInvalidTeamReference = errors.New("match references a team that no longer exists")

	// Console admin gate
	ErrInvalidPasscode = errors.New("invalid admin passcode")
)
