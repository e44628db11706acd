package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"toko-pos/internal/domain"
)

type BillFetcher interface {
	GetBill(ctx context.Context, tableNumber string) (domain.BillResponse, error)
}

type BillHandler struct {
	service BillFetcher
	log     *slog.Logger
}

func NewBillHandler(service BillFetcher, log *slog.Logger) *BillHandler {
	return &BillHandler{service: service, log: log}
}

// GetBill handles GET /bill/{table_number}.
func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	tableNumber := chi.URLParam(r, "table_number")
	// chi routes on RawPath when it is set, handing back the still-escaped
	// segment. In the canonical case RawPath is empty and the param is
	// already decoded; decoding it again would corrupt labels containing '%'.
	if r.URL.RawPath != "" {
		if decoded, err := url.PathUnescape(tableNumber); err == nil {
			tableNumber = decoded
		}
	}

	bill, err := h.service.GetBill(r.Context(), tableNumber)
	switch {
	case errors.Is(err, domain.ErrTableNotFound):
		writeError(w, http.StatusNotFound, "Table not found")
	case errors.Is(err, domain.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "Order not found")
	case err != nil:
		h.log.Error("bill_fetch_failed", "table_number", tableNumber, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	default:
		writeJSON(w, http.StatusOK, bill)
	}
}
