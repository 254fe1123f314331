package repositories

import (
	"context"
	"fmt"

	"dj-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CleanupRepository implements the destructive system-wipe. Everything goes
// in a single transaction so the ledger can never observe a half-wiped
// state: afterwards the ledger is empty and every derived stat is zero.
type CleanupRepository struct {
	DB *pgxpool.Pool
}

func NewCleanupRepository(db *pgxpool.Pool) *CleanupRepository {
	return &CleanupRepository{DB: db}
}

// WipeResult reports what the cleanup removed.
type WipeResult struct {
	Bookings        int64 `json:"bookings"`
	FinanceRecords  int64 `json:"finance_records"`
	Users           int64 `json:"users"`
	InventoryItems  int64 `json:"inventory_items"`
	Packages        int64 `json:"packages"`
	ProductRequests int64 `json:"product_requests"`
}

// Wipe deletes all bookings, finance records, non-admin users, inventory,
// packages and product requests. Admin accounts and system settings survive.
func (r *CleanupRepository) Wipe(ctx context.Context) (*WipeResult, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin cleanup transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result := &WipeResult{}

	steps := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&result.ProductRequests, `DELETE FROM product_requests`, nil},
		{&result.FinanceRecords, `DELETE FROM finance_records`, nil},
		{&result.Bookings, `DELETE FROM bookings`, nil},
		{&result.InventoryItems, `DELETE FROM inventory_items`, nil},
		{&result.Packages, `DELETE FROM event_packages`, nil},
		{&result.Users, `DELETE FROM users WHERE role <> $1`, []any{models.RoleAdmin}},
	}

	for _, step := range steps {
		tag, err := tx.Exec(ctx, step.query, step.args...)
		if err != nil {
			return nil, fmt.Errorf("cleanup step %q: %w", step.query, err)
		}
		*step.dest = tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit cleanup: %w", err)
	}
	return result, nil
}
