package repositories

import (
	"context"
	"fmt"

	"dj-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, name, email, phone, whatsapp, password_hash, role,
	pincode, city, state, joined_date, salary, avatar, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.WhatsApp, &u.PasswordHash, &u.Role,
		&u.Pincode, &u.City, &u.State, &u.JoinedDate, &u.Salary, &u.Avatar,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (name, email, phone, whatsapp, password_hash, role,
			pincode, city, state, joined_date, salary, avatar, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		u.Name, u.Email, u.Phone, u.WhatsApp, u.PasswordHash, u.Role,
		u.Pincode, u.City, u.State, u.JoinedDate, u.Salary, u.Avatar, u.IsActive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.User, error) {
	return scanUser(r.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	return scanUser(r.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE phone = $1`, phone))
}

// List returns users, optionally filtered by role ("" means all).
func (r *UserRepository) List(ctx context.Context, role string) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	args := []any{}
	if role != "" {
		query = `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY id`
		args = append(args, role)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	query := `
		UPDATE users SET name = $1, email = $2, phone = $3, whatsapp = $4,
			password_hash = $5, role = $6, pincode = $7, city = $8, state = $9,
			salary = $10, avatar = $11, is_active = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at
	`
	return r.DB.QueryRow(ctx, query,
		u.Name, u.Email, u.Phone, u.WhatsApp, u.PasswordHash, u.Role,
		u.Pincode, u.City, u.State, u.Salary, u.Avatar, u.IsActive, u.ID,
	).Scan(&u.UpdatedAt)
}

// Delete removes a user. Bookings are never deleted with the account: in the
// same transaction the user's bookings are detached (customer_id set NULL),
// so the ledger keeps surfacing them under the name-based guest key.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE bookings SET customer_id = NULL WHERE customer_id = $1`, id); err != nil {
		return fmt.Errorf("detach bookings for user %d: %w", id, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return tx.Commit(ctx)
}

// CountByRole returns how many users carry the given role.
func (r *UserRepository) CountByRole(ctx context.Context, role string) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	return count, err
}
