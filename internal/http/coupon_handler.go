package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type CouponHandler struct {
	service domain.CouponService
	logger  logger.Logger
}

func NewCouponHandler(service domain.CouponService, logger logger.Logger) *CouponHandler {
	return &CouponHandler{service: service, logger: logger}
}

func (h *CouponHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	// Public checkout preview
	mux.HandleFunc("/api/coupons.validate", h.handleValidate)

	mux.Handle("/api/coupons.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/coupons.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/coupons.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/coupons.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/coupons.deactivate", requireAuth(http.HandlerFunc(h.handleDeactivate)))
	mux.Handle("/api/coupons.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/coupons.usage", requireAuth(http.HandlerFunc(h.handleUsage)))
}

func (h *CouponHandler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.ValidateCouponRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	evaluation, err := h.service.ValidateCoupon(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to validate coupon")
		return
	}
	writeJSON(w, http.StatusOK, evaluation)
}

func (h *CouponHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	coupons, err := h.service.ListCoupons(r.Context(), q.Get("organization_id"), q.Get("active_only") == "true")
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list coupons")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"coupons": coupons})
}

func (h *CouponHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing coupon ID", http.StatusBadRequest)
		return
	}
	coupon, err := h.service.GetCoupon(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get coupon")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"coupon": coupon})
}

func (h *CouponHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var coupon domain.Coupon
	if !decodeJSON(w, r, &coupon) {
		return
	}
	if err := h.service.CreateCoupon(r.Context(), &coupon); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create coupon")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"coupon": coupon})
}

func (h *CouponHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var coupon domain.Coupon
	if !decodeJSON(w, r, &coupon) {
		return
	}
	if coupon.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.service.UpdateCoupon(r.Context(), &coupon); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update coupon")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"coupon": coupon})
}

func (h *CouponHandler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.DeactivateCoupon(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to deactivate coupon")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *CouponHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.DeleteCoupon(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete coupon")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *CouponHandler) handleUsage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	usage, err := h.service.ListUsage(r.Context(), q.Get("organization_id"), q.Get("coupon_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list coupon usage")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"usage": usage})
}
