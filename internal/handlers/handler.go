package handlers

import (
	"log/slog"

	"toko-pos/internal/service"
)

type Handler struct {
	Orders *OrderHandler
	Bills  *BillHandler
}

func New(svc *service.Service, log *slog.Logger) *Handler {
	return &Handler{
		Orders: NewOrderHandler(svc.Orders, log),
		Bills:  NewBillHandler(svc.Bills, log),
	}
}
