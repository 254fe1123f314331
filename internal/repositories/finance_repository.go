package repositories

import (
	"context"
	"fmt"

	"dj-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FinanceRepository struct {
	DB *pgxpool.Pool
}

func NewFinanceRepository(db *pgxpool.Pool) *FinanceRepository {
	return &FinanceRepository{DB: db}
}

const financeColumns = `id, type, amount, category, date, description, related_booking_id, created_at, updated_at`

func scanFinanceRecord(row interface{ Scan(...any) error }) (*models.FinanceRecord, error) {
	f := &models.FinanceRecord{}
	err := row.Scan(
		&f.ID, &f.Type, &f.Amount, &f.Category, &f.Date, &f.Description,
		&f.RelatedBookingID, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *FinanceRepository) Create(ctx context.Context, f *models.FinanceRecord) error {
	query := `
		INSERT INTO finance_records (type, amount, category, date, description, related_booking_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		f.Type, f.Amount, f.Category, f.Date, f.Description, f.RelatedBookingID,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *FinanceRepository) Get(ctx context.Context, id int) (*models.FinanceRecord, error) {
	return scanFinanceRecord(r.DB.QueryRow(ctx,
		`SELECT `+financeColumns+` FROM finance_records WHERE id = $1`, id))
}

// List returns finance records, newest first. recordType filters by
// INCOME/EXPENSE when non-empty.
func (r *FinanceRepository) List(ctx context.Context, recordType models.FinanceRecordType) ([]*models.FinanceRecord, error) {
	query := `SELECT ` + financeColumns + ` FROM finance_records ORDER BY date DESC, id DESC`
	args := []any{}
	if recordType != "" {
		query = `SELECT ` + financeColumns + ` FROM finance_records WHERE type = $1 ORDER BY date DESC, id DESC`
		args = append(args, recordType)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.FinanceRecord
	for rows.Next() {
		f, err := scanFinanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, f)
	}
	return records, rows.Err()
}

// ListByBooking returns records linked to one booking.
func (r *FinanceRepository) ListByBooking(ctx context.Context, bookingID int) ([]*models.FinanceRecord, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+financeColumns+` FROM finance_records WHERE related_booking_id = $1 ORDER BY date DESC, id DESC`,
		bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.FinanceRecord
	for rows.Next() {
		f, err := scanFinanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, f)
	}
	return records, rows.Err()
}

func (r *FinanceRepository) Update(ctx context.Context, f *models.FinanceRecord) error {
	query := `
		UPDATE finance_records SET type = $1, amount = $2, category = $3, date = $4,
			description = $5, related_booking_id = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`
	return r.DB.QueryRow(ctx, query,
		f.Type, f.Amount, f.Category, f.Date, f.Description, f.RelatedBookingID, f.ID,
	).Scan(&f.UpdatedAt)
}

func (r *FinanceRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM finance_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("finance record %d not found", id)
	}
	return nil
}
