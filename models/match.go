package models

// Outcome is the three-way classification of a match. A scheduled match is
// undecided; a completed match is either won by one side or drawn, never
// both.
type Outcome string

const (
	OutcomeUndecided Outcome = "undecided"
	OutcomeWinner    Outcome = "winner"
	OutcomeDraw      Outcome = "draw"
)

// Match references its sides by stable team IDs. IDs are monotonic per
// tournament and never reused, even after the referenced team is deleted;
// a dangling reference is resolved (and rejected or skipped) at use time,
// never by renumbering.
type Match struct {
	ID        int     `json:"id"`
	TeamAID   int     `json:"team_a_id"`
	TeamBID   int     `json:"team_b_id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Venue     string  `json:"venue"`
	Completed bool    `json:"completed"`
	Outcome   Outcome `json:"outcome"`
	WinnerID  int     `json:"winner_id,omitempty"` // team ID, set only for OutcomeWinner
	Summary   string  `json:"summary,omitempty"`
}
