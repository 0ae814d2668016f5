package service

import (
	"context"
	"errors"

	"github.com/partsledger/partsledger-api/internal/store"
	"github.com/partsledger/partsledger-api/pkg/apperror"
	"github.com/partsledger/partsledger-api/pkg/snapshot"
)

// BackupService wires the snapshot codec to the state store for backup
// export and restore.
type BackupService struct {
	store *store.Store
}

// NewBackupService creates a new backup service
func NewBackupService(st *store.Store) *BackupService {
	return &BackupService{store: st}
}

// Export serializes the full state, minus the license, into a portable
// backup token.
func (s *BackupService) Export(ctx context.Context) (string, error) {
	state, err := s.store.Snapshot()
	if err != nil {
		return "", err
	}
	return snapshot.Encode(state)
}

// Import restores state from a backup token. The active license of this
// instance is preserved; the one in the backup (there should be none) is
// never applied.
func (s *BackupService) Import(ctx context.Context, token string) error {
	state, err := snapshot.Decode(token, s.store.License())
	if err != nil {
		if errors.Is(err, snapshot.ErrInvalidSnapshot) {
			return apperror.NewBadRequestError("Invalid or corrupted backup file")
		}
		return err
	}
	return s.store.Replace(state)
}
