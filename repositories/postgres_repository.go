package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/0xElectro/tournament-manager/models"
)

// PostgresTournamentRepository stores tournament snapshots in Postgres,
// selected by STORE_DRIVER=postgres. Unlike the flat file, the schema has
// room for real team IDs and both counters, so stable IDs survive restarts.
// Saving follows the same load-at-startup / save-at-shutdown model as the
// file store: each save replaces the sport's snapshot in one transaction.
type PostgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) *PostgresTournamentRepository {
	return &PostgresTournamentRepository{db: db}
}

// EnsureSchema creates the snapshot tables when they do not exist yet.
func (r *PostgresTournamentRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tournaments (
			sport         TEXT PRIMARY KEY,
			next_team_id  INT NOT NULL,
			next_match_id INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS teams (
			sport    TEXT NOT NULL,
			id       INT  NOT NULL,
			position INT  NOT NULL,
			name     TEXT NOT NULL,
			PRIMARY KEY (sport, id)
		)`,
		`CREATE TABLE IF NOT EXISTS players (
			sport     TEXT NOT NULL,
			team_id   INT  NOT NULL,
			position  INT  NOT NULL,
			name      TEXT NOT NULL,
			role      TEXT NOT NULL,
			jersey_no INT  NOT NULL,
			PRIMARY KEY (sport, team_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			sport     TEXT NOT NULL,
			id        INT  NOT NULL,
			team_a_id INT  NOT NULL,
			team_b_id INT  NOT NULL,
			date      TEXT NOT NULL,
			time      TEXT NOT NULL,
			venue     TEXT NOT NULL,
			completed BOOLEAN NOT NULL,
			outcome   TEXT NOT NULL,
			winner_id INT  NOT NULL,
			summary   TEXT NOT NULL,
			PRIMARY KEY (sport, id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure snapshot schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresTournamentRepository) Save(ctx context.Context, t *models.Tournament) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"players", "matches", "teams"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE sport = $1`, table), string(t.Sport)); err != nil {
			return fmt.Errorf("failed to clear %s snapshot: %w", table, err)
		}
	}

	for position, team := range t.Teams {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO teams (sport, id, position, name) VALUES ($1, $2, $3, $4)`,
			string(t.Sport), team.ID, position, team.Name); err != nil {
			return fmt.Errorf("failed to save team %d: %w", team.ID, err)
		}
		for pos, p := range team.Players {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO players (sport, team_id, position, name, role, jersey_no)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				string(t.Sport), team.ID, pos, p.Name, p.Role, p.JerseyNo); err != nil {
				return fmt.Errorf("failed to save player %q: %w", p.Name, err)
			}
		}
	}

	for _, m := range t.Matches {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO matches (sport, id, team_a_id, team_b_id, date, time, venue, completed, outcome, winner_id, summary)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			string(t.Sport), m.ID, m.TeamAID, m.TeamBID, m.Date, m.Time, m.Venue,
			m.Completed, string(m.Outcome), m.WinnerID, m.Summary); err != nil {
			return fmt.Errorf("failed to save match %d: %w", m.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO tournaments (sport, next_team_id, next_match_id) VALUES ($1, $2, $3)
		 ON CONFLICT (sport) DO UPDATE SET next_team_id = $2, next_match_id = $3`,
		string(t.Sport), t.NextTeamID, t.NextMatchID); err != nil {
		return fmt.Errorf("failed to save counters: %w", err)
	}

	return tx.Commit()
}

func (r *PostgresTournamentRepository) Load(ctx context.Context, sport models.SportType) (*models.Tournament, error) {
	t := models.NewTournament(sport)

	err := r.db.QueryRowContext(ctx,
		`SELECT next_team_id, next_match_id FROM tournaments WHERE sport = $1`,
		string(sport)).Scan(&t.NextTeamID, &t.NextMatchID)
	if errors.Is(err, sql.ErrNoRows) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("failed to load %s counters: %w", sport, err)
	}

	teamRows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM teams WHERE sport = $1 ORDER BY position`, string(sport))
	if err != nil {
		return t, fmt.Errorf("failed to load %s teams: %w", sport, err)
	}
	defer teamRows.Close()
	for teamRows.Next() {
		team := &models.Team{}
		if err := teamRows.Scan(&team.ID, &team.Name); err != nil {
			return t, err
		}
		t.Teams = append(t.Teams, team)
	}
	if err := teamRows.Err(); err != nil {
		return t, err
	}

	for _, team := range t.Teams {
		playerRows, err := r.db.QueryContext(ctx,
			`SELECT name, role, jersey_no FROM players
			 WHERE sport = $1 AND team_id = $2 ORDER BY position`,
			string(sport), team.ID)
		if err != nil {
			return t, fmt.Errorf("failed to load players for team %d: %w", team.ID, err)
		}
		for playerRows.Next() {
			var p models.Player
			if err := playerRows.Scan(&p.Name, &p.Role, &p.JerseyNo); err != nil {
				playerRows.Close()
				return t, err
			}
			team.Players = append(team.Players, p)
		}
		if err := playerRows.Err(); err != nil {
			playerRows.Close()
			return t, err
		}
		playerRows.Close()
	}

	matchRows, err := r.db.QueryContext(ctx,
		`SELECT id, team_a_id, team_b_id, date, time, venue, completed, outcome, winner_id, summary
		 FROM matches WHERE sport = $1 ORDER BY id`, string(sport))
	if err != nil {
		return t, fmt.Errorf("failed to load %s matches: %w", sport, err)
	}
	defer matchRows.Close()
	for matchRows.Next() {
		m := &models.Match{}
		var outcome string
		if err := matchRows.Scan(&m.ID, &m.TeamAID, &m.TeamBID, &m.Date, &m.Time, &m.Venue,
			&m.Completed, &outcome, &m.WinnerID, &m.Summary); err != nil {
			return t, err
		}
		m.Outcome = models.Outcome(outcome)
		t.Matches = append(t.Matches, m)
	}
	if err := matchRows.Err(); err != nil {
		return t, err
	}

	return t, nil
}
