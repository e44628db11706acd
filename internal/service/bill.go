package service

import (
	"context"

	"toko-pos/internal/domain"
	"toko-pos/internal/repository"
)

type BillService struct {
	store repository.Store
}

func NewBillService(store repository.Store) *BillService {
	return &BillService{store: store}
}

// GetBill renders the bill for the table's most recent order. The returned
// total is the snapshot persisted at checkout, not a recomputation against
// current product prices.
func (s *BillService) GetBill(ctx context.Context, tableNumber string) (domain.BillResponse, error) {
	table, err := s.store.FindTableByNumber(ctx, tableNumber)
	if err != nil {
		return domain.BillResponse{}, err
	}

	order, err := s.store.LatestOrderForTable(ctx, table.ID)
	if err != nil {
		return domain.BillResponse{}, err
	}

	lines, err := s.store.ListBillLines(ctx, order.ID)
	if err != nil {
		return domain.BillResponse{}, err
	}

	details := make([]domain.BillDetail, 0, len(lines))
	for _, line := range lines {
		details = append(details, domain.BillDetail{
			ProductName: line.ProductName,
			Variant:     line.Variant,
			Price:       line.UnitPrice.InexactFloat64(),
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal().InexactFloat64(),
		})
	}

	return domain.BillResponse{
		OrderID:     order.ID,
		TableNumber: tableNumber,
		TotalPrice:  order.TotalPrice.InexactFloat64(),
		BillDetails: details,
	}, nil
}
