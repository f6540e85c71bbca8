package http

import (
	"io"
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

// maxWebhookBytes matches the size Stripe documents as the upper bound of an event
const maxWebhookBytes = 65536

type PaymentHandler struct {
	service domain.PaymentService
	logger  logger.Logger
}

func NewPaymentHandler(service domain.PaymentService, logger logger.Logger) *PaymentHandler {
	return &PaymentHandler{service: service, logger: logger}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	// Signed by Stripe, no session
	mux.HandleFunc("/api/payments.webhook", h.handleWebhook)

	mux.Handle("/api/payments.list", requireAuth(http.HandlerFunc(h.handleList)))
}

func (h *PaymentHandler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
	if err != nil {
		WriteJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if err := h.service.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		writeServiceError(w, h.logger, err, "Failed to process webhook")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *PaymentHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	payments, err := h.service.ListPayments(r.Context(), q.Get("organization_id"), domain.PaymentStatus(q.Get("status")))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list payments")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"payments": payments})
}
