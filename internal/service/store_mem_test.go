package service

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"toko-pos/internal/domain"
	"toko-pos/internal/repository"
)

// memStore implements repository.Store over slices. WithinTx snapshots state
// before running the callback so a failed transaction leaves nothing behind,
// mirroring the rollback guarantees of the real store.
type memStore struct {
	tables   []domain.Table
	products []domain.Product
	orders   []domain.Order
	items    []domain.OrderItem

	nextID int64
	clock  time.Time

	// findProductErr simulates a storage failure during product lookup.
	findProductErr error
}

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
}

func (m *memStore) addTable(number string) domain.Table {
	m.nextID++
	t := domain.Table{ID: m.nextID, TableNumber: number, CreatedAt: m.clock}
	m.tables = append(m.tables, t)
	return t
}

func (m *memStore) addProduct(name, variant string, price int64, category string) domain.Product {
	m.nextID++
	p := domain.Product{
		ID:       m.nextID,
		Name:     name,
		Variant:  variant,
		Price:    decimal.NewFromInt(price),
		Category: category,
	}
	m.products = append(m.products, p)
	return p
}

func (m *memStore) setPrice(productID, price int64) {
	for i := range m.products {
		if m.products[i].ID == productID {
			m.products[i].Price = decimal.NewFromInt(price)
		}
	}
}

func (m *memStore) FindTableByNumber(_ context.Context, number string) (*domain.Table, error) {
	for _, t := range m.tables {
		if t.TableNumber == number {
			t := t
			return &t, nil
		}
	}
	return nil, domain.ErrTableNotFound
}

func (m *memStore) LatestOrderForTable(_ context.Context, tableID int64) (*domain.Order, error) {
	var latest *domain.Order
	for i := range m.orders {
		o := m.orders[i]
		if o.TableID != tableID {
			continue
		}
		if latest == nil || o.CreatedAt.After(latest.CreatedAt) {
			latest = &o
		}
	}
	if latest == nil {
		return nil, domain.ErrOrderNotFound
	}
	return latest, nil
}

func (m *memStore) ListBillLines(_ context.Context, orderID int64) ([]domain.BillLine, error) {
	var lines []domain.BillLine
	for _, item := range m.items {
		if item.OrderID != orderID {
			continue
		}
		for _, p := range m.products {
			if p.ID == item.ProductID {
				lines = append(lines, domain.BillLine{
					ProductName: p.Name,
					Variant:     p.Variant,
					UnitPrice:   p.Price,
					Quantity:    item.Quantity,
				})
			}
		}
	}
	return lines, nil
}

func (m *memStore) WithinTx(_ context.Context, fn func(tx repository.OrderTx) error) error {
	ordersBak := slices.Clone(m.orders)
	itemsBak := slices.Clone(m.items)
	idBak := m.nextID
	clockBak := m.clock

	if err := fn(&memTx{store: m}); err != nil {
		m.orders, m.items, m.nextID, m.clock = ordersBak, itemsBak, idBak, clockBak
		return err
	}
	return nil
}

type memTx struct {
	store *memStore
}

func (t *memTx) InsertOrder(_ context.Context, tableID int64) (int64, error) {
	s := t.store
	s.nextID++
	s.clock = s.clock.Add(time.Minute)
	s.orders = append(s.orders, domain.Order{
		ID:         s.nextID,
		TableID:    tableID,
		TotalPrice: decimal.Zero,
		CreatedAt:  s.clock,
	})
	return s.nextID, nil
}

func (t *memTx) FindProduct(_ context.Context, productID int64) (*domain.Product, error) {
	if t.store.findProductErr != nil {
		return nil, t.store.findProductErr
	}
	for _, p := range t.store.products {
		if p.ID == productID {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (t *memTx) InsertOrderItem(_ context.Context, orderID, productID int64, quantity int) error {
	s := t.store
	s.nextID++
	s.items = append(s.items, domain.OrderItem{
		ID:        s.nextID,
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

func (t *memTx) SetOrderTotal(_ context.Context, orderID int64, total decimal.Decimal) error {
	for i := range t.store.orders {
		if t.store.orders[i].ID == orderID {
			t.store.orders[i].TotalPrice = total
		}
	}
	return nil
}
