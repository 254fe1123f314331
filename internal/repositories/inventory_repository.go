package repositories

import (
	"context"
	"fmt"

	"dj-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InventoryRepository struct {
	DB *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

const inventoryColumns = `id, name, category, quantity, total_quantity, status, last_checked, created_at, updated_at`

func scanInventoryItem(row interface{ Scan(...any) error }) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	err := row.Scan(
		&item.ID, &item.Name, &item.Category, &item.Quantity, &item.TotalQuantity,
		&item.Status, &item.LastChecked, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (name, category, quantity, total_quantity, status, last_checked)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, last_checked, created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		item.Name, item.Category, item.Quantity, item.TotalQuantity, item.Status,
	).Scan(&item.ID, &item.LastChecked, &item.CreatedAt, &item.UpdatedAt)
}

func (r *InventoryRepository) Get(ctx context.Context, id int) (*models.InventoryItem, error) {
	return scanInventoryItem(r.DB.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items WHERE id = $1`, id))
}

func (r *InventoryRepository) List(ctx context.Context) ([]*models.InventoryItem, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory_items ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $1, category = $2, quantity = $3,
			total_quantity = $4, status = $5, last_checked = NOW(), updated_at = NOW()
		WHERE id = $6
		RETURNING last_checked, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		item.Name, item.Category, item.Quantity, item.TotalQuantity, item.Status, item.ID,
	).Scan(&item.LastChecked, &item.UpdatedAt)
}

func (r *InventoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventory item %d not found", id)
	}
	return nil
}
