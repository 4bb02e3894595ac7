package postgres

import (
	"context"

	"github.com/flavorithm/flavorithm/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists the order header and one quantity-annotated row per
// distinct line item.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO orders (order_id, customer_id, total_amount, status, placed_at)
        VALUES ($1, $2, $3, $4, $5)`,
		order.OrderID, order.CustomerID(), order.TotalAmount, order.Status, order.PlacedAt,
	)
	if err != nil {
		return err
	}

	for itemID, quantity := range order.ItemQuantities() {
		_, err := tx.Exec(ctx, `
            INSERT INTO order_items (order_id, menu_item_id, quantity)
            VALUES ($1, $2, $3)`,
			order.OrderID, itemID, quantity,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]models.OrderRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT order_id, customer_id, total_amount, status, placed_at FROM orders ORDER BY placed_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.OrderRecord
	for rows.Next() {
		var rec models.OrderRecord
		if err := rows.Scan(&rec.OrderID, &rec.CustomerID, &rec.TotalAmount, &rec.Status, &rec.PlacedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}
