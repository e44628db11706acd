package service

import (
	"log/slog"

	"toko-pos/internal/notify"
	"toko-pos/internal/repository"
)

type Service struct {
	Orders *OrderService
	Bills  *BillService
}

func New(store repository.Store, publisher notify.Publisher, log *slog.Logger) *Service {
	return &Service{
		Orders: NewOrderService(store, publisher, log),
		Bills:  NewBillService(store),
	}
}
