package postgres

import (
	"context"
	"errors"

	"github.com/flavorithm/flavorithm/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) Upsert(ctx context.Context, item *models.MenuItem) error {
	query := `
        INSERT INTO menu_items (id, name, price, category)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE
        SET name = EXCLUDED.name, price = EXCLUDED.price, category = EXCLUDED.category
    `
	_, err := r.pool.Exec(ctx, query, item.ID, item.Name, item.Price, item.Category)
	if err != nil {
		return err
	}
	return r.ReplaceAllergens(ctx, item.ID, item.Allergens)
}

func (r *MenuItemRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	query := `SELECT id, name, price, category FROM menu_items WHERE id = $1`
	item := &models.MenuItem{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Price, &item.Category)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	item.Allergens, err = r.GetAllergens(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MenuItemRepository) GetAll(ctx context.Context) (map[string]*models.MenuItem, error) {
	query := `SELECT id, name, price, category FROM menu_items`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menuItems := make(map[string]*models.MenuItem)
	for rows.Next() {
		item := &models.MenuItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category); err != nil {
			return nil, err
		}
		menuItems[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, item := range menuItems {
		item.Allergens, err = r.GetAllergens(ctx, item.ID)
		if err != nil {
			return nil, err
		}
	}
	return menuItems, nil
}

// ReplaceAllergens rewrites the full allergen set for an item: delete then
// reinsert, not a differential update.
func (r *MenuItemRepository) ReplaceAllergens(ctx context.Context, itemID string, allergens []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM menu_allergens WHERE menu_item_id = $1`, itemID); err != nil {
		return err
	}
	for _, allergen := range allergens {
		_, err := tx.Exec(ctx,
			`INSERT INTO menu_allergens (menu_item_id, allergen) VALUES ($1, $2)`,
			itemID, allergen,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *MenuItemRepository) GetAllergens(ctx context.Context, itemID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT allergen FROM menu_allergens WHERE menu_item_id = $1`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allergens []string
	for rows.Next() {
		var allergen string
		if err := rows.Scan(&allergen); err != nil {
			return nil, err
		}
		allergens = append(allergens, allergen)
	}
	return allergens, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}
