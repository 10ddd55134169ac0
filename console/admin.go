package console

import (
	"context"
	"fmt"

	"github.com/0xElectro/tournament-manager/models"
	"github.com/0xElectro/tournament-manager/scoring"
	"github.com/0xElectro/tournament-manager/services"
)

func (c *Console) addTeam(sport models.SportType) {
	name := c.prompt.Line("Enter team name: ")
	team, err := c.roster.AddTeam(sport, name)
	if err != nil {
		c.printErr(err)
		return
	}
	fmt.Fprintf(c.out, "Team added successfully with ID %d.\n", team.ID)
}

func (c *Console) renameTeam(sport models.SportType) {
	if !c.listTeamsSimple(sport) {
		return
	}
	id := c.prompt.Int("Enter team ID: ")
	name := c.prompt.Line("Enter new team name: ")
	if err := c.roster.RenameTeam(sport, id, name); err != nil {
		c.printErr(err)
		return
	}
	fmt.Fprintln(c.out, "Team updated successfully.")
}

func (c *Console) deleteTeam(sport models.SportType) {
	if !c.listTeamsSimple(sport) {
		return
	}
	id := c.prompt.Int("Enter team ID to delete: ")
	if err := c.roster.DeleteTeam(sport, id); err != nil {
		c.printErr(err)
		return
	}
	fmt.Fprintln(c.out, "Team deleted successfully.")
}

func (c *Console) addPlayer(sport models.SportType) {
	if !c.listTeamsSimple(sport) {
		return
	}
	id := c.prompt.Int("Enter team ID: ")
	player := models.Player{
		Name: c.prompt.Line("Enter player name: "),
		Role: c.prompt.Line("Enter player role (Batsman/Goalkeeper etc.): "),
	}
	player.JerseyNo = c.prompt.Int("Enter jersey number: ")
	if err := c.roster.AddPlayer(sport, id, player); err != nil {
		c.printErr(err)
		return
	}
	fmt.Fprintln(c.out, "Player added successfully.")
}

func (c *Console) updatePlayer(sport models.SportType) {
	id, ok := c.selectTeamWithPlayers(sport)
	if !ok {
		return
	}
	number := c.prompt.Int("Enter player number to update: ")
	player := models.Player{
		Name: c.prompt.Line("Enter new player name: "),
		Role: c.prompt.Line("Enter new player role: "),
	}
	player.JerseyNo = c.prompt.Int("Enter new jersey number: ")
	if err := c.roster.UpdatePlayer(sport, id, number-1, player); err != nil {
		c.printErr(err)
		return
	}
	fmt.Fprintln(c.out, "Player updated successfully.")
}

func (c *Console) deletePlayer(sport models.SportType) {
	id, ok := c.selectTeamWithPlayers(sport)
	if !ok {
		return
	}
	number := c.prompt.Int("Enter player number to delete: ")
	if err := c.roster.DeletePlayer(sport, id, number-1); err != nil {
		c.printErr(err)
		return
	}
	fmt.Fprintln(c.out, "Player deleted successfully.")
}

func (c *Console) createMatch(sport models.SportType) {
	if !c.listTeamsSimple(sport) {
		return
	}
	params := services.ScheduleMatchParams{
		TeamAID: c.prompt.Int("Enter Team A ID: "),
		TeamBID: c.prompt.Int("Enter Team B ID: "),
	}
	params.Date = c.prompt.Line("Enter match date (e.g. 2025-12-01): ")
	params.Time = c.prompt.Line("Enter match time (e.g. 16:00): ")
	params.Venue = c.prompt.Line("Enter venue: ")

	match, err := c.matches.ScheduleMatch(sport, params)
	if err != nil {
		c.printErr(err)
		return
	}
	fmt.Fprintf(c.out, "Match created successfully with ID: %d\n", match.ID)
}

func (c *Console) generateRoundRobin(sport models.SportType) {
	venue := c.prompt.Line("Enter venue for all fixtures: ")
	created, err := c.matches.GenerateRoundRobin(sport, venue)
	if err != nil {
		c.printErr(err)
		return
	}
	fmt.Fprintf(c.out, "%d matches created.\n", len(created))
}

func (c *Console) enterMatchResult(sport models.SportType) {
	c.viewSchedule(sport)
	matchID := c.prompt.Int("Enter Match ID to enter result: ")

	views, err := c.matches.ListMatches(sport)
	if err != nil {
		c.printErr(err)
		return
	}
	var target *services.MatchView
	for i := range views {
		if views[i].ID == matchID {
			target = &views[i]
			break
		}
	}
	if target == nil {
		c.printErr(services.ErrMatchNotFound)
		return
	}

	fmt.Fprintf(c.out, "Entering result for: %s vs %s\n", target.TeamAName, target.TeamBName)

	var score scoring.Scoreline
	switch sport {
	case models.SportCricket:
		s := scoring.CricketScore{}
		s.RunsA = c.prompt.Int(fmt.Sprintf("Enter runs scored by %s: ", target.TeamAName))
		s.WicketsA = c.prompt.Int(fmt.Sprintf("Enter wickets lost by %s: ", target.TeamAName))
		s.OversA = c.prompt.Float(fmt.Sprintf("Enter overs played by %s: ", target.TeamAName))
		s.RunsB = c.prompt.Int(fmt.Sprintf("Enter runs scored by %s: ", target.TeamBName))
		s.WicketsB = c.prompt.Int(fmt.Sprintf("Enter wickets lost by %s: ", target.TeamBName))
		s.OversB = c.prompt.Float(fmt.Sprintf("Enter overs played by %s: ", target.TeamBName))
		score = s
	case models.SportFootball:
		s := scoring.FootballScore{}
		s.GoalsA = c.prompt.Int(fmt.Sprintf("Enter goals scored by %s: ", target.TeamAName))
		s.GoalsB = c.prompt.Int(fmt.Sprintf("Enter goals scored by %s: ", target.TeamBName))
		score = s
	case models.SportBasketball:
		s := scoring.BasketballScore{}
		s.PointsA = c.prompt.Int(fmt.Sprintf("Enter points scored by %s: ", target.TeamAName))
		s.PointsB = c.prompt.Int(fmt.Sprintf("Enter points scored by %s: ", target.TeamBName))
		score = s
	}

	view, err := c.matches.EnterResult(sport, matchID, score)
	if err != nil {
		c.printErr(err)
		return
	}
	fmt.Fprintln(c.out, "Result saved successfully.")
	fmt.Fprintf(c.out, "%s\n", view.Summary)
}

func (c *Console) saveNow(ctx context.Context, sport models.SportType) {
	if err := c.state.Save(ctx, sport); err != nil {
		c.printErr(err)
		return
	}
	fmt.Fprintln(c.out, "Tournament saved.")
}
