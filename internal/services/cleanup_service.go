package services

import (
	"context"
	"log"

	"dj-backend/internal/cache"
	"dj-backend/internal/repositories"
)

// CleanupService is the "wipe everything" admin operation used between
// seasons. Admin accounts and settings survive; everything else goes.
type CleanupService struct {
	Repo   *repositories.CleanupRepository
	Backup *BackupService
}

func NewCleanupService(repo *repositories.CleanupRepository, backup *BackupService) *CleanupService {
	return &CleanupService{Repo: repo, Backup: backup}
}

// CleanupResult reports what happened, including whether a pre-wipe
// snapshot was taken.
type CleanupResult struct {
	BackupKey string                   `json:"backup_key,omitempty"`
	Deleted   *repositories.WipeResult `json:"deleted"`
}

// Run snapshots the data (when backups are configured) and then wipes it in
// one transaction. A failed snapshot aborts the wipe; a wipe you cannot
// undo should not run without its safety net.
func (s *CleanupService) Run(ctx context.Context) (*CleanupResult, error) {
	result := &CleanupResult{}

	if s.Backup != nil && s.Backup.Enabled() {
		key, err := s.Backup.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		result.BackupKey = key
	}

	deleted, err := s.Repo.Wipe(ctx)
	if err != nil {
		return nil, err
	}
	result.Deleted = deleted

	cache.InvalidateAllBusinessCaches(ctx)
	log.Printf("[Cleanup] wiped: %d bookings, %d finance records, %d users, %d inventory items, %d packages, %d product requests",
		deleted.Bookings, deleted.FinanceRecords, deleted.Users,
		deleted.InventoryItems, deleted.Packages, deleted.ProductRequests)
	return result, nil
}
