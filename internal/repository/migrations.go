package repository

import (
	"context"
	"fmt"

	"toko-pos/internal/domain"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tables (
		id BIGSERIAL PRIMARY KEY,
		table_number TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		variant TEXT NOT NULL DEFAULT '',
		price NUMERIC(12,2) NOT NULL CHECK (price > 0),
		category TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		table_id BIGINT NOT NULL REFERENCES tables(id),
		total_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity INT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_table_created ON orders (table_id, created_at DESC)`,
}

// Migrate applies the schema. Statements are idempotent so this runs on every
// startup.
func (p *Postgres) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// Seed inserts a handful of tables and menu products for local development.
// Products are only seeded into an empty catalog.
func (p *Postgres) Seed(ctx context.Context) error {
	for i := 1; i <= 5; i++ {
		_, err := p.pool.Exec(ctx,
			`INSERT INTO tables (table_number) VALUES ($1) ON CONFLICT (table_number) DO NOTHING`,
			fmt.Sprintf("MEJA NO %d", i),
		)
		if err != nil {
			return fmt.Errorf("failed to seed tables: %w", err)
		}
	}

	var count int
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	menu := []struct {
		name, variant, category string
		price                   int64
	}{
		{"Jeruk", "DINGIN", domain.CategoryMinuman, 12000},
		{"Teh", "MANIS", domain.CategoryMinuman, 8000},
		{"Nasi Goreng", "SPESIAL", domain.CategoryMakanan, 25000},
		{"Ayam Bakar", "PEDAS", domain.CategoryMakanan, 30000},
		{"Paket Hemat A", "", domain.CategoryPromo, 35000},
	}
	for _, m := range menu {
		_, err := p.pool.Exec(ctx,
			`INSERT INTO products (name, variant, price, category) VALUES ($1, $2, $3, $4)`,
			m.name, m.variant, m.price, m.category,
		)
		if err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}
	return nil
}
