package repositories

import (
	"context"
	"errors"

	"github.com/0xElectro/tournament-manager/models"
)

// ErrMalformedRecord marks a persisted record that stopped parsing partway
// through: a non-numeric value where a count or flag was expected, or a
// record cut short. Entities parsed before the fault are kept.
var ErrMalformedRecord = errors.New("malformed tournament record")

// TournamentRepository loads and saves whole tournament snapshots. Loading
// a sport that has never been saved returns an empty tournament, not an
// error.
type TournamentRepository interface {
	Load(ctx context.Context, sport models.SportType) (*models.Tournament, error)
	Save(ctx context.Context, tournament *models.Tournament) error
}
