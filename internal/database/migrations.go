package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS menu_items (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
		category VARCHAR(50) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_allergens (
		menu_item_id VARCHAR(50) REFERENCES menu_items(id),
		allergen VARCHAR(100) NOT NULL,
		PRIMARY KEY (menu_item_id, allergen)
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		member_id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(20) NOT NULL,
		points INTEGER NOT NULL DEFAULT 0 CHECK (points >= 0)
	)`,
	`CREATE SEQUENCE IF NOT EXISTS member_number_seq`,
	`CREATE TABLE IF NOT EXISTS favorite_items (
		member_id VARCHAR(50) REFERENCES members(member_id),
		menu_item_id VARCHAR(50) REFERENCES menu_items(id),
		count INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (member_id, menu_item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS member_allergies (
		allergy_id BIGSERIAL PRIMARY KEY,
		member_id VARCHAR(50) REFERENCES members(member_id),
		allergen VARCHAR(100) NOT NULL,
		severity VARCHAR(20) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id VARCHAR(50) PRIMARY KEY,
		customer_id VARCHAR(50),
		total_amount NUMERIC(10, 2) NOT NULL,
		status VARCHAR(20) NOT NULL,
		placed_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id VARCHAR(50) REFERENCES orders(order_id),
		menu_item_id VARCHAR(50) REFERENCES menu_items(id),
		quantity INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (order_id, menu_item_id)
	)`,
}

// Migrate creates the schema when it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
