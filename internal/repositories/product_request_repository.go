package repositories

import (
	"context"
	"fmt"

	"dj-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRequestRepository struct {
	DB *pgxpool.Pool
}

func NewProductRequestRepository(db *pgxpool.Pool) *ProductRequestRepository {
	return &ProductRequestRepository{DB: db}
}

const productRequestColumns = `pr.id, pr.crew_id, COALESCE(u.name, 'Unknown'), pr.product_name,
	pr.requirements, pr.quantity, pr.status, pr.date, pr.created_at`

func (r *ProductRequestRepository) Create(ctx context.Context, req *models.ProductRequest) error {
	query := `
		INSERT INTO product_requests (crew_id, product_name, requirements, quantity, status, date)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, date, created_at
	`
	return r.DB.QueryRow(ctx, query,
		req.CrewID, req.ProductName, req.Requirements, req.Quantity, req.Status,
	).Scan(&req.ID, &req.Date, &req.CreatedAt)
}

func (r *ProductRequestRepository) Get(ctx context.Context, id int) (*models.ProductRequest, error) {
	req := &models.ProductRequest{}
	err := r.DB.QueryRow(ctx, `
		SELECT `+productRequestColumns+`
		FROM product_requests pr
		LEFT JOIN users u ON pr.crew_id = u.id
		WHERE pr.id = $1`, id,
	).Scan(&req.ID, &req.CrewID, &req.CrewName, &req.ProductName,
		&req.Requirements, &req.Quantity, &req.Status, &req.Date, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// List returns product requests, optionally scoped to one crew member
// (crewID 0 means all). Joins the crew name so the admin screen avoids
// N+1 lookups.
func (r *ProductRequestRepository) List(ctx context.Context, crewID int) ([]*models.ProductRequest, error) {
	query := `
		SELECT ` + productRequestColumns + `
		FROM product_requests pr
		LEFT JOIN users u ON pr.crew_id = u.id
		ORDER BY pr.date DESC, pr.id DESC`
	args := []any{}
	if crewID != 0 {
		query = `
		SELECT ` + productRequestColumns + `
		FROM product_requests pr
		LEFT JOIN users u ON pr.crew_id = u.id
		WHERE pr.crew_id = $1
		ORDER BY pr.date DESC, pr.id DESC`
		args = append(args, crewID)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.ProductRequest
	for rows.Next() {
		req := &models.ProductRequest{}
		err := rows.Scan(&req.ID, &req.CrewID, &req.CrewName, &req.ProductName,
			&req.Requirements, &req.Quantity, &req.Status, &req.Date, &req.CreatedAt)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// SetStatus moves a request to APPROVED or REJECTED.
func (r *ProductRequestRepository) SetStatus(ctx context.Context, id int, status string) error {
	tag, err := r.DB.Exec(ctx, `UPDATE product_requests SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product request %d not found", id)
	}
	return nil
}

func (r *ProductRequestRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM product_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product request %d not found", id)
	}
	return nil
}
