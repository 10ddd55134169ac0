package repositories

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/0xElectro/tournament-manager/models"
)

// FileTournamentRepository persists one line-oriented file per sport,
// reproducing the layout of the original data files exactly: team count,
// then per team (name, player count, then per player name/role/jersey),
// match count, then per match (id, team A index, team B index, date, time,
// venue, completed flag, winner index with -1 for none, draw flag,
// summary), then the next-match-id counter.
//
// The format stores team positions, not IDs, so stable IDs are reassigned
// in registration order on load. A field containing a line break is not
// representable; that is a limitation of the format, kept as is.
type FileTournamentRepository struct {
	dataDir string
}

func NewFileTournamentRepository(dataDir string) *FileTournamentRepository {
	return &FileTournamentRepository{dataDir: dataDir}
}

// FilePath returns the on-disk location of a sport's data file.
func (r *FileTournamentRepository) FilePath(sport models.SportType) string {
	return filepath.Join(r.dataDir, string(sport)+".txt")
}

func (r *FileTournamentRepository) Save(_ context.Context, t *models.Tournament) error {
	if err := os.MkdirAll(r.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(r.FilePath(t.Sport))
	if err != nil {
		return fmt.Errorf("failed to open %s data file for writing: %w", t.Sport, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	writeLine := func(s string) { fmt.Fprintln(w, s) }
	writeInt := func(n int) { fmt.Fprintln(w, n) }
	writeFlag := func(b bool) {
		if b {
			writeLine("1")
		} else {
			writeLine("0")
		}
	}

	writeInt(len(t.Teams))
	for _, team := range t.Teams {
		writeLine(team.Name)
		writeInt(len(team.Players))
		for _, p := range team.Players {
			writeLine(p.Name)
			writeLine(p.Role)
			writeInt(p.JerseyNo)
		}
	}

	writeInt(len(t.Matches))
	for _, m := range t.Matches {
		writeInt(m.ID)
		// Dangling references (team deleted mid-tournament) serialize as -1.
		writeInt(t.TeamIndex(m.TeamAID))
		writeInt(t.TeamIndex(m.TeamBID))
		writeLine(m.Date)
		writeLine(m.Time)
		writeLine(m.Venue)
		writeFlag(m.Completed)
		if m.Outcome == models.OutcomeWinner {
			writeInt(t.TeamIndex(m.WinnerID))
		} else {
			writeInt(-1)
		}
		writeFlag(m.Outcome == models.OutcomeDraw)
		writeLine(m.Summary)
	}

	writeInt(t.NextMatchID)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s data file: %w", t.Sport, err)
	}
	return f.Sync()
}

// Load reads a sport's data file. A missing file is a first run and yields
// an empty tournament. A malformed numeric field stops parsing and returns
// the entities read so far together with a wrapped ErrMalformedRecord, so
// the caller can keep the partial state and report the fault.
func (r *FileTournamentRepository) Load(_ context.Context, sport models.SportType) (*models.Tournament, error) {
	t := models.NewTournament(sport)

	f, err := os.Open(r.FilePath(sport))
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("failed to open %s data file: %w", sport, err)
	}
	defer f.Close()

	lines := bufio.NewScanner(f)

	nextLine := func() (string, bool) {
		if !lines.Scan() {
			return "", false
		}
		return lines.Text(), true
	}
	nextInt := func(field string) (int, error) {
		line, ok := nextLine()
		if !ok {
			return 0, fmt.Errorf("%w: %s record truncated at %s", ErrMalformedRecord, sport, field)
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("%w: %s field %s is not numeric: %q", ErrMalformedRecord, sport, field, line)
		}
		return n, nil
	}
	nextFlag := func(field string) (bool, error) {
		line, ok := nextLine()
		if !ok {
			return false, fmt.Errorf("%w: %s record truncated at %s", ErrMalformedRecord, sport, field)
		}
		return line == "1" || line == "true", nil
	}

	teamCount, err := nextInt("team count")
	if err != nil {
		return t, err
	}

	for i := 0; i < teamCount; i++ {
		team := &models.Team{ID: t.NextTeamID}
		name, ok := nextLine()
		if !ok {
			return t, fmt.Errorf("%w: %s record truncated at team %d name", ErrMalformedRecord, sport, i)
		}
		team.Name = name

		playerCount, err := nextInt("player count")
		if err != nil {
			return t, err
		}
		for j := 0; j < playerCount; j++ {
			var p models.Player
			if p.Name, ok = nextLine(); !ok {
				return t, fmt.Errorf("%w: %s record truncated at player name", ErrMalformedRecord, sport)
			}
			if p.Role, ok = nextLine(); !ok {
				return t, fmt.Errorf("%w: %s record truncated at player role", ErrMalformedRecord, sport)
			}
			jersey, ok := nextLine()
			if !ok {
				return t, fmt.Errorf("%w: %s record truncated at jersey number", ErrMalformedRecord, sport)
			}
			// The original tolerated a bad jersey number and stored zero.
			p.JerseyNo, _ = strconv.Atoi(jersey)
			team.Players = append(team.Players, p)
		}

		t.NextTeamID++
		t.Teams = append(t.Teams, team)
	}

	matchCount, err := nextInt("match count")
	if err != nil {
		return t, err
	}

	teamIDAt := func(index int) int {
		if index < 0 || index >= len(t.Teams) {
			return 0
		}
		return t.Teams[index].ID
	}

	for i := 0; i < matchCount; i++ {
		m := &models.Match{Outcome: models.OutcomeUndecided}

		if m.ID, err = nextInt("match id"); err != nil {
			return t, err
		}
		indexA, err := nextInt("team A index")
		if err != nil {
			return t, err
		}
		indexB, err := nextInt("team B index")
		if err != nil {
			return t, err
		}
		m.TeamAID = teamIDAt(indexA)
		m.TeamBID = teamIDAt(indexB)

		var ok bool
		if m.Date, ok = nextLine(); !ok {
			return t, fmt.Errorf("%w: %s record truncated at match date", ErrMalformedRecord, sport)
		}
		if m.Time, ok = nextLine(); !ok {
			return t, fmt.Errorf("%w: %s record truncated at match time", ErrMalformedRecord, sport)
		}
		if m.Venue, ok = nextLine(); !ok {
			return t, fmt.Errorf("%w: %s record truncated at match venue", ErrMalformedRecord, sport)
		}

		if m.Completed, err = nextFlag("completed flag"); err != nil {
			return t, err
		}
		winnerIndex, err := nextInt("winner index")
		if err != nil {
			return t, err
		}
		draw, err := nextFlag("draw flag")
		if err != nil {
			return t, err
		}
		if m.Summary, ok = nextLine(); !ok {
			return t, fmt.Errorf("%w: %s record truncated at result summary", ErrMalformedRecord, sport)
		}

		if m.Completed {
			switch {
			case draw:
				m.Outcome = models.OutcomeDraw
			case winnerIndex >= 0:
				m.Outcome = models.OutcomeWinner
				m.WinnerID = teamIDAt(winnerIndex)
			}
		}

		t.Matches = append(t.Matches, m)
	}

	// The trailing counter may be absent in files written by older runs;
	// either way the counter must stay ahead of every recorded ID so match
	// IDs are never reused.
	if counter, err := nextInt("next match id"); err == nil {
		t.NextMatchID = counter
	}
	for _, m := range t.Matches {
		if m.ID >= t.NextMatchID {
			t.NextMatchID = m.ID + 1
		}
	}

	if err := lines.Err(); err != nil {
		return t, fmt.Errorf("failed to read %s data file: %w", sport, err)
	}
	return t, nil
}
