package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"toko-pos/internal/domain"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResponse, error)
}

type OrderHandler struct {
	service OrderCreator
	log     *slog.Logger
}

func NewOrderHandler(service OrderCreator, log *slog.Logger) *OrderHandler {
	return &OrderHandler{service: service, log: log}
}

// CreateOrder handles POST /order.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.CreateOrder(r.Context(), req)
	if errors.Is(err, domain.ErrTableNotFound) {
		writeError(w, http.StatusNotFound, "Table not found")
		return
	}
	if err != nil {
		h.log.Error("order_creation_failed", "table_number", req.TableNumber, "error", err)
		writeError(w, http.StatusInternalServerError, "Order processing failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
