package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"toko-pos/internal/domain"
)

type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres { return &Postgres{pool: pool} }

func (p *Postgres) FindTableByNumber(ctx context.Context, tableNumber string) (*domain.Table, error) {
	var t domain.Table
	err := p.pool.QueryRow(ctx,
		`SELECT id, table_number, created_at FROM tables WHERE table_number = $1`,
		tableNumber,
	).Scan(&t.ID, &t.TableNumber, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find table %q: %w", tableNumber, err)
	}
	return &t, nil
}

func (p *Postgres) LatestOrderForTable(ctx context.Context, tableID int64) (*domain.Order, error) {
	var o domain.Order
	err := p.pool.QueryRow(ctx,
		`SELECT id, table_id, total_price, created_at
		   FROM orders
		  WHERE table_id = $1
		  ORDER BY created_at DESC
		  LIMIT 1`,
		tableID,
	).Scan(&o.ID, &o.TableID, &o.TotalPrice, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest order for table %d: %w", tableID, err)
	}
	return &o, nil
}

// ListBillLines returns the order's items joined with product data, in
// insertion order.
func (p *Postgres) ListBillLines(ctx context.Context, orderID int64) ([]domain.BillLine, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT pr.name, pr.variant, pr.price, oi.quantity
		   FROM order_items oi
		   JOIN products pr ON pr.id = oi.product_id
		  WHERE oi.order_id = $1
		  ORDER BY oi.id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load bill lines for order %d: %w", orderID, err)
	}
	defer rows.Close()

	var lines []domain.BillLine
	for rows.Next() {
		var l domain.BillLine
		if err := rows.Scan(&l.ProductName, &l.Variant, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan bill line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (p *Postgres) WithinTx(ctx context.Context, fn func(tx OrderTx) error) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&pgTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) InsertOrder(ctx context.Context, tableID int64) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx,
		`INSERT INTO orders (table_id, total_price) VALUES ($1, 0) RETURNING id`,
		tableID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return id, nil
}

func (t *pgTx) FindProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	var pr domain.Product
	err := t.tx.QueryRow(ctx,
		`SELECT id, name, variant, price, category FROM products WHERE id = $1`,
		productID,
	).Scan(&pr.ID, &pr.Name, &pr.Variant, &pr.Price, &pr.Category)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product %d: %w", productID, err)
	}
	return &pr, nil
}

func (t *pgTx) InsertOrderItem(ctx context.Context, orderID, productID int64, quantity int) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)`,
		orderID, productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order item for product %d: %w", productID, err)
	}
	return nil
}

func (t *pgTx) SetOrderTotal(ctx context.Context, orderID int64, total decimal.Decimal) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE orders SET total_price = $2 WHERE id = $1`,
		orderID, total,
	)
	if err != nil {
		return fmt.Errorf("failed to update order total: %w", err)
	}
	return nil
}
