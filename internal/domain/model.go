package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Table is a physical dining table. Rows are created administratively and are
// read-only here.
type Table struct {
	ID          int64
	TableNumber string
	CreatedAt   time.Time
}

// Product is a menu entry. Read-only here; price changes happen elsewhere.
type Product struct {
	ID       int64
	Name     string
	Variant  string
	Price    decimal.Decimal
	Category string
}

// Order is one checkout event for a table. TotalPrice is the snapshot computed
// at creation time.
type Order struct {
	ID         int64
	TableID    int64
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
}

// BillLine is one order item joined with its product.
type BillLine struct {
	ProductName string
	Variant     string
	UnitPrice   decimal.Decimal
	Quantity    int
}

func (l BillLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
