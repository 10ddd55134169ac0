package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xElectro/tournament-manager/models"
	"github.com/0xElectro/tournament-manager/repositories"
	"github.com/0xElectro/tournament-manager/storage"
)

// BackupService copies saved tournament data files to off-site storage.
// It reads the files the file store just wrote, so it only applies to the
// file driver; the Postgres store has its own durability story.
type BackupService struct {
	files    *repositories.FileTournamentRepository
	uploader storage.SnapshotUploader
	logger   *slog.Logger
}

func NewBackupService(files *repositories.FileTournamentRepository, uploader storage.SnapshotUploader, logger *slog.Logger) *BackupService {
	return &BackupService{files: files, uploader: uploader, logger: logger}
}

// BackupAll uploads every existing sport data file under backups/<sport>.txt.
// Sports that have never been saved are skipped.
func (s *BackupService) BackupAll(ctx context.Context) error {
	var errs []error
	for _, sport := range models.AllSports {
		path := s.files.FilePath(sport)
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			errs = append(errs, fmt.Errorf("failed to open %s for backup: %w", path, err))
			continue
		}

		key := fmt.Sprintf("backups/%s.txt", sport)
		result, err := s.uploader.Upload(ctx, key, "text/plain; charset=utf-8", f)
		f.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to back up %s: %w", sport, err))
			continue
		}
		s.logger.Info("data file backed up",
			slog.String("sport", string(sport)),
			slog.String("key", result.Key),
			slog.String("etag", result.ETag))
	}
	return errors.Join(errs...)
}
