package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"toko-pos/internal/domain"
)

// Store is the data-access capability injected into the services. Reads run
// against the pool; writes go through WithinTx so order creation is
// all-or-nothing.
type Store interface {
	FindTableByNumber(ctx context.Context, tableNumber string) (*domain.Table, error)
	LatestOrderForTable(ctx context.Context, tableID int64) (*domain.Order, error)
	ListBillLines(ctx context.Context, orderID int64) ([]domain.BillLine, error)
	WithinTx(ctx context.Context, fn func(tx OrderTx) error) error
}

// OrderTx is the write surface available inside a single transaction. Any
// error returned from the WithinTx callback rolls the whole transaction back.
type OrderTx interface {
	InsertOrder(ctx context.Context, tableID int64) (int64, error)
	FindProduct(ctx context.Context, productID int64) (*domain.Product, error)
	InsertOrderItem(ctx context.Context, orderID, productID int64, quantity int) error
	SetOrderTotal(ctx context.Context, orderID int64, total decimal.Decimal) error
}
