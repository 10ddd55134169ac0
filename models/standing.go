package models

// Standing is one row of the points table. Rows are derived on demand and
// never persisted; their order always follows team registration order, not
// points.
type Standing struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
	Played   int    `json:"played"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
	Points   int    `json:"points"`
}
