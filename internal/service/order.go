package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"toko-pos/internal/domain"
	"toko-pos/internal/notify"
	"toko-pos/internal/repository"
)

type OrderService struct {
	store     repository.Store
	publisher notify.Publisher
	log       *slog.Logger
}

func NewOrderService(store repository.Store, publisher notify.Publisher, log *slog.Logger) *OrderService {
	return &OrderService{store: store, publisher: publisher, log: log}
}

// CreateOrder persists an order and its line items in one transaction and
// returns the order id, the computed total and the stations that must print a
// ticket. Items referencing unknown products are skipped without error, so an
// order may commit with zero items and a zero total.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResponse, error) {
	table, err := s.store.FindTableByNumber(ctx, req.TableNumber)
	if err != nil {
		return domain.CreateOrderResponse{}, err
	}

	var orderID int64
	total := decimal.Zero
	stations := domain.StationSet{}

	txErr := s.store.WithinTx(ctx, func(tx repository.OrderTx) error {
		id, err := tx.InsertOrder(ctx, table.ID)
		if err != nil {
			return err
		}
		orderID = id

		for _, item := range req.OrderItems {
			product, err := tx.FindProduct(ctx, item.ProductID)
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			if err := tx.InsertOrderItem(ctx, orderID, product.ID, item.Quantity); err != nil {
				return err
			}
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			if station, ok := domain.StationFor(product.Category); ok {
				stations.Add(station)
			}
		}

		return tx.SetOrderTotal(ctx, orderID, total)
	})
	if txErr != nil {
		return domain.CreateOrderResponse{}, fmt.Errorf("order processing failed: %w", txErr)
	}

	printers := stations.Labels()
	s.log.Info("order_created",
		"order_id", orderID,
		"table_number", req.TableNumber,
		"total_price", total.String(),
		"printers", printers,
	)

	event := domain.OrderCreatedEvent{
		OrderID:     orderID,
		TableNumber: req.TableNumber,
		TotalPrice:  total.InexactFloat64(),
		Printers:    printers,
	}
	if err := s.publisher.OrderCreated(ctx, event); err != nil {
		// The order is already committed; a lost event must not fail the request.
		s.log.Error("order_event_publish_failed", "order_id", orderID, "error", err)
	}

	return domain.CreateOrderResponse{
		OrderID:    orderID,
		TotalPrice: total.InexactFloat64(),
		Printers:   printers,
	}, nil
}
