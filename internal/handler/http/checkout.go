package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/service"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/httputil"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/validator"
)

// CheckoutHandler handles HTTP requests for checkout sessions.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		logger:  logger,
	}
}

type selectListingRequest struct {
	ListingID string `json:"listing_id" validate:"required"`
}

type setDatesRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type submitPaymentRequest struct {
	CardholderName string `json:"cardholder_name" validate:"required,max=100"`
	CardNumber     string `json:"card_number" validate:"required,min=12,max=19"`
	Expiry         string `json:"expiry" validate:"required,max=7"`
	CVV            string `json:"cvv" validate:"required,min=3,max=4"`
	BillingAddress string `json:"billing_address" validate:"required,max=300"`
}

// StartSession handles POST /api/v1/sessions
func (h *CheckoutHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.StartSession(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: sess})
}

// GetSession handles GET /api/v1/sessions/{id}
func (h *CheckoutHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}

// SelectListing handles POST /api/v1/sessions/{id}/select
func (h *CheckoutHandler) SelectListing(w http.ResponseWriter, r *http.Request) {
	var req selectListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body"},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sess, err := h.service.SelectListing(r.Context(), chi.URLParam(r, "id"), req.ListingID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}

// SetDates handles PUT /api/v1/sessions/{id}/dates
func (h *CheckoutHandler) SetDates(w http.ResponseWriter, r *http.Request) {
	var req setDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body"},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sess, err := h.service.SetDates(r.Context(), chi.URLParam(r, "id"), &service.SetDatesInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}

// OpenReviews handles POST /api/v1/sessions/{id}/reviews/open
func (h *CheckoutHandler) OpenReviews(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.OpenReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}

// CloseReviews handles POST /api/v1/sessions/{id}/reviews/close
func (h *CheckoutHandler) CloseReviews(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.CloseReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}

// OpenPayment handles POST /api/v1/sessions/{id}/payment
func (h *CheckoutHandler) OpenPayment(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.OpenPayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}

// SubmitPayment handles POST /api/v1/sessions/{id}/payment/submit
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req submitPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body"},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sess, err := h.service.SubmitPayment(r.Context(), chi.URLParam(r, "id"), &domain.PaymentInfo{
		CardholderName: req.CardholderName,
		CardNumber:     req.CardNumber,
		Expiry:         req.Expiry,
		CVV:            req.CVV,
		BillingAddress: req.BillingAddress,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}

// GetReceipt handles GET /api/v1/sessions/{id}/receipt
func (h *CheckoutHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.service.Receipt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: receipt})
}

// DownloadReceipt handles GET /api/v1/sessions/{id}/receipt/download
//
// Serves the receipt as a plain-text attachment.
func (h *CheckoutHandler) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.service.Receipt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.FileName()))
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, receipt.Text())
}

// CloseSession handles POST /api/v1/sessions/{id}/close
func (h *CheckoutHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.CloseSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}
