package models

// Player belongs to exactly one team. Role and jersey number are free-form;
// no uniqueness is enforced.
type Player struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	JerseyNo int    `json:"jersey_no"`
}

// Team is addressed by a stable ID assigned at creation and never reused,
// so deleting a team does not shift references held by matches. The slice
// position in Tournament.Teams is the registration order and only matters
// for presentation.
type Team struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}
