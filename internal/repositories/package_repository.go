package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"dj-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PackageRepository struct {
	DB *pgxpool.Pool
}

func NewPackageRepository(db *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{DB: db}
}

func scanPackage(row interface{ Scan(...any) error }) (*models.EventPackage, error) {
	p := &models.EventPackage{}
	var featuresJSON []byte
	err := row.Scan(&p.ID, &p.Name, &p.Price, &featuresJSON, &p.IsPopular, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(featuresJSON) > 0 {
		if err := json.Unmarshal(featuresJSON, &p.Features); err != nil {
			return nil, fmt.Errorf("decode features for package %d: %w", p.ID, err)
		}
	}
	return p, nil
}

func (r *PackageRepository) Create(ctx context.Context, p *models.EventPackage) error {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	featuresJSON, err := json.Marshal(features)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO event_packages (name, price, features, is_popular)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query, p.Name, p.Price, featuresJSON, p.IsPopular).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PackageRepository) Get(ctx context.Context, id int) (*models.EventPackage, error) {
	return scanPackage(r.DB.QueryRow(ctx,
		`SELECT id, name, price, features, is_popular, created_at, updated_at FROM event_packages WHERE id = $1`, id))
}

func (r *PackageRepository) List(ctx context.Context) ([]*models.EventPackage, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, price, features, is_popular, created_at, updated_at FROM event_packages ORDER BY price`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []*models.EventPackage
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (r *PackageRepository) Update(ctx context.Context, p *models.EventPackage) error {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	featuresJSON, err := json.Marshal(features)
	if err != nil {
		return err
	}

	query := `
		UPDATE event_packages SET name = $1, price = $2, features = $3, is_popular = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	return r.DB.QueryRow(ctx, query, p.Name, p.Price, featuresJSON, p.IsPopular, p.ID).Scan(&p.UpdatedAt)
}

func (r *PackageRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM event_packages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("package %d not found", id)
	}
	return nil
}
