package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/0xElectro/tournament-manager/models"
)

// listTeamsSimple prints "ID) name" lines and reports whether any team
// exists; admin flows bail out early on an empty roster.
func (c *Console) listTeamsSimple(sport models.SportType) bool {
	teams, err := c.roster.ListTeams(sport)
	if err != nil {
		c.printErr(err)
		return false
	}
	if len(teams) == 0 {
		fmt.Fprintln(c.out, "No teams available.")
		return false
	}
	for _, team := range teams {
		fmt.Fprintf(c.out, "%d) %s\n", team.ID, team.Name)
	}
	return true
}

// selectTeamWithPlayers prompts for a team ID and lists its players,
// returning false when there is nothing to pick.
func (c *Console) selectTeamWithPlayers(sport models.SportType) (int, bool) {
	if !c.listTeamsSimple(sport) {
		return 0, false
	}
	id := c.prompt.Int("Enter team ID: ")

	teams, err := c.roster.ListTeams(sport)
	if err != nil {
		c.printErr(err)
		return 0, false
	}
	for _, team := range teams {
		if team.ID != id {
			continue
		}
		if len(team.Players) == 0 {
			fmt.Fprintln(c.out, "No players in this team.")
			return 0, false
		}
		fmt.Fprintf(c.out, "Players in team %s:\n", team.Name)
		c.printPlayers(team.Players)
		return id, true
	}
	fmt.Fprintln(c.out, "Invalid team ID.")
	return 0, false
}

func (c *Console) printPlayers(players []models.Player) {
	for i, p := range players {
		fmt.Fprintf(c.out, "%d) %s | Role: %s | Jersey: %d\n", i+1, p.Name, p.Role, p.JerseyNo)
	}
}

func (c *Console) viewTeams(sport models.SportType) {
	fmt.Fprintf(c.out, "\n=== Team List (%s) ===\n", sport.DisplayName())
	c.listTeamsSimple(sport)
}

func (c *Console) viewPlayersInTeam(sport models.SportType) {
	if !c.listTeamsSimple(sport) {
		return
	}
	id := c.prompt.Int("Enter team ID to view players: ")

	teams, err := c.roster.ListTeams(sport)
	if err != nil {
		c.printErr(err)
		return
	}
	for _, team := range teams {
		if team.ID != id {
			continue
		}
		fmt.Fprintf(c.out, "\nPlayers in team %s:\n", team.Name)
		if len(team.Players) == 0 {
			fmt.Fprintln(c.out, "No players added yet.")
			return
		}
		c.printPlayers(team.Players)
		return
	}
	fmt.Fprintln(c.out, "Invalid team ID.")
}

func (c *Console) viewSchedule(sport models.SportType) {
	fmt.Fprintf(c.out, "\n=== Match Schedule (%s) ===\n", sport.DisplayName())
	views, err := c.matches.ListMatches(sport)
	if err != nil {
		c.printErr(err)
		return
	}
	if len(views) == 0 {
		fmt.Fprintln(c.out, "No matches scheduled.")
		return
	}
	for _, m := range views {
		completed := "No"
		if m.Completed {
			completed = "Yes"
		}
		fmt.Fprintf(c.out, "Match ID: %d | %s vs %s | Date: %s | Time: %s | Venue: %s | Completed: %s\n",
			m.ID, m.TeamAName, m.TeamBName, m.Date, m.Time, m.Venue, completed)
	}
}

func (c *Console) viewResults(sport models.SportType) {
	fmt.Fprintf(c.out, "\n=== Match Results (%s) ===\n", sport.DisplayName())
	views, err := c.matches.ListResults(sport)
	if err != nil {
		c.printErr(err)
		return
	}
	if len(views) == 0 {
		fmt.Fprintln(c.out, "No completed match results yet.")
		return
	}
	for _, m := range views {
		fmt.Fprintf(c.out, "Match ID: %d | %s vs %s\n", m.ID, m.TeamAName, m.TeamBName)
		fmt.Fprintf(c.out, "Result: %s\n", m.Summary)
		if m.Outcome == models.OutcomeDraw {
			fmt.Fprintln(c.out, "Outcome: Draw")
		} else if m.WinnerName != "" {
			fmt.Fprintf(c.out, "Winner: %s\n", m.WinnerName)
		}
		fmt.Fprintln(c.out, "--------------------------")
	}
}

func (c *Console) showPointsTable(sport models.SportType) {
	table, err := c.standings.Table(sport)
	if err != nil {
		c.printErr(err)
		return
	}

	fmt.Fprintf(c.out, "\n=== Points Table (%s) ===\n", sport.DisplayName())
	w := tabwriter.NewWriter(c.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Team\tP\tW\tL\tD\tPts")
	for _, row := range table {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
			row.TeamName, row.Played, row.Wins, row.Losses, row.Draws, row.Points)
	}
	w.Flush()
}
