// Package console drives the single-operator terminal UI. All tournament
// mutations enter the system here; the HTTP viewer only reads.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/0xElectro/tournament-manager/models"
	"github.com/0xElectro/tournament-manager/services"
	"github.com/0xElectro/tournament-manager/utils"
)

type Console struct {
	state     *services.TournamentService
	roster    services.RosterService
	matches   services.MatchService
	standings services.StandingsService
	prompt    *Prompter
	out       io.Writer
	adminHash string // empty disables the admin gate
	logger    *slog.Logger
}

func NewConsole(
	state *services.TournamentService,
	roster services.RosterService,
	matches services.MatchService,
	standings services.StandingsService,
	in io.Reader,
	out io.Writer,
	adminHash string,
	logger *slog.Logger,
) *Console {
	return &Console{
		state:     state,
		roster:    roster,
		matches:   matches,
		standings: standings,
		prompt:    NewPrompter(in, out),
		out:       out,
		adminHash: adminHash,
		logger:    logger,
	}
}

// Run loops on the main menu until the operator exits or input ends.
// Saving on exit is the caller's responsibility.
func (c *Console) Run(ctx context.Context) {
	for {
		fmt.Fprintln(c.out, "\n========= SPORTS TOURNAMENT MANAGEMENT SYSTEM =========")
		fmt.Fprintln(c.out, "1. Admin Mode")
		fmt.Fprintln(c.out, "2. User Mode")
		fmt.Fprintln(c.out, "3. Exit")
		choice := c.prompt.Int("Enter your choice: ")
		if c.prompt.EOF() {
			return
		}

		switch choice {
		case 1:
			sport := c.selectSport()
			if c.prompt.EOF() {
				return
			}
			if !c.adminGate() {
				continue
			}
			c.adminMenu(ctx, sport)
		case 2:
			sport := c.selectSport()
			if c.prompt.EOF() {
				return
			}
			c.userMenu(sport)
		case 3:
			fmt.Fprintln(c.out, "Saving data and exiting... Goodbye!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice. Try again.")
		}
		if c.prompt.EOF() {
			return
		}
	}
}

func (c *Console) selectSport() models.SportType {
	fmt.Fprintln(c.out, "\nSelect Tournament Type:")
	for i, sport := range models.AllSports {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, sport.DisplayName())
	}
	choice := c.prompt.Int("Enter choice: ")
	if choice >= 1 && choice <= len(models.AllSports) {
		return models.AllSports[choice-1]
	}
	fmt.Fprintln(c.out, "Invalid choice, defaulting to Cricket.")
	return models.SportCricket
}

func (c *Console) adminGate() bool {
	if c.adminHash == "" {
		return true
	}
	passcode := c.prompt.Line("Enter admin passcode: ")
	if !utils.CheckPasscodeHash(passcode, c.adminHash) {
		c.logger.Warn("admin passcode rejected")
		c.printErr(services.ErrInvalidPasscode)
		return false
	}
	return true
}

func (c *Console) adminMenu(ctx context.Context, sport models.SportType) {
	for {
		fmt.Fprintf(c.out, "\n==== ADMIN MENU (%s) ====\n", sport.DisplayName())
		fmt.Fprintln(c.out, "1. Add Team")
		fmt.Fprintln(c.out, "2. Rename Team")
		fmt.Fprintln(c.out, "3. Delete Team")
		fmt.Fprintln(c.out, "4. Add Player")
		fmt.Fprintln(c.out, "5. Update Player")
		fmt.Fprintln(c.out, "6. Delete Player")
		fmt.Fprintln(c.out, "7. Create Match")
		fmt.Fprintln(c.out, "8. Generate Round Robin")
		fmt.Fprintln(c.out, "9. Enter Match Result")
		fmt.Fprintln(c.out, "10. Points Table")
		fmt.Fprintln(c.out, "11. Save Now")
		fmt.Fprintln(c.out, "12. Back to Main Menu")
		choice := c.prompt.Int("Enter choice: ")
		if c.prompt.EOF() {
			return
		}

		switch choice {
		case 1:
			c.addTeam(sport)
		case 2:
			c.renameTeam(sport)
		case 3:
			c.deleteTeam(sport)
		case 4:
			c.addPlayer(sport)
		case 5:
			c.updatePlayer(sport)
		case 6:
			c.deletePlayer(sport)
		case 7:
			c.createMatch(sport)
		case 8:
			c.generateRoundRobin(sport)
		case 9:
			c.enterMatchResult(sport)
		case 10:
			c.showPointsTable(sport)
		case 11:
			c.saveNow(ctx, sport)
		case 12:
			fmt.Fprintln(c.out, "Returning to main menu...")
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) userMenu(sport models.SportType) {
	for {
		fmt.Fprintf(c.out, "\n==== USER MENU (%s) ====\n", sport.DisplayName())
		fmt.Fprintln(c.out, "1. View Team List")
		fmt.Fprintln(c.out, "2. View Players in a Team")
		fmt.Fprintln(c.out, "3. View Match Schedule")
		fmt.Fprintln(c.out, "4. View Match Results")
		fmt.Fprintln(c.out, "5. View Points Table")
		fmt.Fprintln(c.out, "6. Back to Main Menu")
		choice := c.prompt.Int("Enter choice: ")
		if c.prompt.EOF() {
			return
		}

		switch choice {
		case 1:
			c.viewTeams(sport)
		case 2:
			c.viewPlayersInTeam(sport)
		case 3:
			c.viewSchedule(sport)
		case 4:
			c.viewResults(sport)
		case 5:
			c.showPointsTable(sport)
		case 6:
			fmt.Fprintln(c.out, "Returning to main menu...")
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) printErr(err error) {
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		fmt.Fprintln(c.out, "Invalid team ID.")
	case errors.Is(err, services.ErrPlayerNotFound):
		fmt.Fprintln(c.out, "Invalid player number.")
	case errors.Is(err, services.ErrMatchNotFound):
		fmt.Fprintln(c.out, "Invalid Match ID.")
	case errors.Is(err, services.ErrSameTeam):
		fmt.Fprintln(c.out, "Team A and Team B must be different.")
	case errors.Is(err, services.ErrNotEnoughTeams):
		fmt.Fprintln(c.out, "At least two teams are required.")
	case errors.Is(err, services.ErrTeamNameRequired):
		fmt.Fprintln(c.out, "Team name must not be empty.")
	case errors.Is(err, services.ErrInvalidTeamReference):
		fmt.Fprintln(c.out, "This match references a deleted team; its result cannot be entered.")
	case errors.Is(err, services.ErrInvalidPasscode):
		fmt.Fprintln(c.out, "Invalid passcode.")
	default:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}
