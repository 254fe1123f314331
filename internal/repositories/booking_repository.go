package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"dj-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	DB *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{DB: db}
}

const bookingColumns = `id, customer_name, customer_phone, customer_email, customer_id,
	event_type, date, location, dj_package, notes, status,
	amount, advance_amount, received_amount, balance_amount,
	crew_assigned, check_in_times, payment_requested, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*models.Booking, error) {
	b := &models.Booking{}
	var crewJSON, checkInJSON []byte
	err := row.Scan(
		&b.ID, &b.CustomerName, &b.CustomerPhone, &b.CustomerEmail, &b.CustomerID,
		&b.EventType, &b.Date, &b.Location, &b.DJPackage, &b.Notes, &b.Status,
		&b.Amount, &b.AdvanceAmount, &b.ReceivedAmount, &b.BalanceAmount,
		&crewJSON, &checkInJSON, &b.PaymentRequested, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(crewJSON) > 0 {
		if err := json.Unmarshal(crewJSON, &b.CrewAssigned); err != nil {
			return nil, fmt.Errorf("decode crew_assigned for booking %d: %w", b.ID, err)
		}
	}
	if len(checkInJSON) > 0 {
		if err := json.Unmarshal(checkInJSON, &b.CheckInTimes); err != nil {
			return nil, fmt.Errorf("decode check_in_times for booking %d: %w", b.ID, err)
		}
	}
	return b, nil
}

func encodeCrewFields(b *models.Booking) ([]byte, []byte, error) {
	crew := b.CrewAssigned
	if crew == nil {
		crew = []int{}
	}
	checkIns := b.CheckInTimes
	if checkIns == nil {
		checkIns = map[int]string{}
	}
	crewJSON, err := json.Marshal(crew)
	if err != nil {
		return nil, nil, err
	}
	checkInJSON, err := json.Marshal(checkIns)
	if err != nil {
		return nil, nil, err
	}
	return crewJSON, checkInJSON, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	crewJSON, checkInJSON, err := encodeCrewFields(b)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bookings (customer_name, customer_phone, customer_email, customer_id,
			event_type, date, location, dj_package, notes, status,
			amount, advance_amount, received_amount, balance_amount,
			crew_assigned, check_in_times, payment_requested)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		b.CustomerName, b.CustomerPhone, b.CustomerEmail, b.CustomerID,
		b.EventType, b.Date, b.Location, b.DJPackage, b.Notes, b.Status,
		b.Amount, b.AdvanceAmount, b.ReceivedAmount, b.BalanceAmount,
		crewJSON, checkInJSON, b.PaymentRequested,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookingRepository) Get(ctx context.Context, id int) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(r.DB.QueryRow(ctx, query, id))
}

// List returns all bookings, newest event first. customerID filters to one
// customer's bookings when non-nil (the customer dashboard view).
func (r *BookingRepository) List(ctx context.Context, customerID *int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY date DESC, id DESC`
	args := []any{}
	if customerID != nil {
		query = `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY date DESC, id DESC`
		args = append(args, *customerID)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// ListForCrew returns bookings where the crew member appears in crew_assigned.
func (r *BookingRepository) ListForCrew(ctx context.Context, crewID int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE crew_assigned @> to_jsonb(ARRAY[$1::int])
		ORDER BY date DESC, id DESC`

	rows, err := r.DB.Query(ctx, query, crewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) Update(ctx context.Context, b *models.Booking) error {
	crewJSON, checkInJSON, err := encodeCrewFields(b)
	if err != nil {
		return err
	}

	query := `
		UPDATE bookings SET customer_name = $1, customer_phone = $2, customer_email = $3,
			customer_id = $4, event_type = $5, date = $6, location = $7, dj_package = $8,
			notes = $9, status = $10, amount = $11, advance_amount = $12,
			received_amount = $13, balance_amount = $14, crew_assigned = $15,
			check_in_times = $16, payment_requested = $17, updated_at = NOW()
		WHERE id = $18
		RETURNING updated_at
	`
	return r.DB.QueryRow(ctx, query,
		b.CustomerName, b.CustomerPhone, b.CustomerEmail, b.CustomerID,
		b.EventType, b.Date, b.Location, b.DJPackage, b.Notes, b.Status,
		b.Amount, b.AdvanceAmount, b.ReceivedAmount, b.BalanceAmount,
		crewJSON, checkInJSON, b.PaymentRequested, b.ID,
	).Scan(&b.UpdatedAt)
}

func (r *BookingRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", id)
	}
	return nil
}

// CountByStatus returns how many bookings carry the given status. Backs the
// pending-count endpoint the dashboards poll.
func (r *BookingRepository) CountByStatus(ctx context.Context, status models.BookingStatus) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE status = $1`, status).Scan(&count)
	return count, err
}

// CountDistinctCustomers counts distinct customer names across bookings
// (the "happy clients" stat).
func (r *BookingRepository) CountDistinctCustomers(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(DISTINCT customer_name) FROM bookings`).Scan(&count)
	return count, err
}

// MarkPaid persists the mark-as-paid composite: the booking's cleared
// financials and the matching INCOME record go in one transaction, so a
// failure on either side rolls back both. A partial write here would corrupt
// the ledger (balance cleared with no income entry, or the reverse).
func (r *BookingRepository) MarkPaid(ctx context.Context, b *models.Booking, record *models.FinanceRecord) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin mark-paid transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE bookings SET received_amount = $1, balance_amount = $2, status = $3,
			payment_requested = $4, updated_at = NOW()
		WHERE id = $5`,
		b.ReceivedAmount, b.BalanceAmount, b.Status, b.PaymentRequested, b.ID,
	)
	if err != nil {
		return fmt.Errorf("mark booking %d paid: %w", b.ID, err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO finance_records (type, amount, category, date, description, related_booking_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		record.Type, record.Amount, record.Category, record.Date,
		record.Description, record.RelatedBookingID,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert income record for booking %d (amount %.2f): %w", b.ID, record.Amount, err)
	}

	return tx.Commit(ctx)
}
