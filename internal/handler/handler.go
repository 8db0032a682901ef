package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/quote-service/internal/middleware"
	"github.com/Dan9191/quote-service/internal/models"
	"github.com/Dan9191/quote-service/internal/quote"
	"github.com/Dan9191/quote-service/internal/service"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// generateQuotesRequest is the broker form as posted by the client. The
// company fields are carried for logging only.
type generateQuotesRequest struct {
	CompanyName   string `json:"companyName"`
	CompanyNumber string `json:"companyNumber"`
	DirectorName  string `json:"directorName"`
	FundingType   string `json:"fundingType"`
	Purpose       string `json:"purpose"`
	models.FundingRequest
	// RepaymentTerm is the older name of repaymentTermMonths
	RepaymentTerm *int `json:"repaymentTerm,omitempty"`
	Selection *service.Selection  `json:"selection,omitempty"`
	Filters   *models.QuoteFilter `json:"filters,omitempty"`
}

type generateQuotesResponse struct {
	Success       bool                  `json:"success"`
	Quotes        []models.Quote        `json:"quotes"`
	RiskCategory  models.RiskTier       `json:"riskCategory"`
	Message       string                `json:"message"`
	Affordability *models.Affordability `json:"affordability,omitempty"`
}

type errorResponse struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error"`
	Details []quote.FieldViolation `json:"details,omitempty"`
}

// GenerateQuotes handles POST /api/quotes/generate
func (h *Handler) GenerateQuotes(w http.ResponseWriter, r *http.Request) {
	var req generateQuotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}
	if req.RepaymentTermMonths == 0 && req.RepaymentTerm != nil {
		req.RepaymentTermMonths = *req.RepaymentTerm
	}

	set, err := h.svc.GenerateQuotes(r.Context(), service.GenerateInput{
		CompanyName: req.CompanyName,
		Request:     req.FundingRequest,
		Selection:   req.Selection,
		Filter:      req.Filters,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateQuotesResponse{
		Success:       true,
		Quotes:        set.Quotes,
		RiskCategory:  set.RiskCategory,
		Message:       fmt.Sprintf("Generated %d quotes successfully", len(set.Quotes)),
		Affordability: set.Affordability,
	})
}

// ListLenders handles GET /api/lenders
func (h *Handler) ListLenders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"lenders": h.svc.Lenders(),
	})
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the quote cache answers
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ready(r.Context()); err != nil {
		h.log.WithError(err).Warn("Readiness check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// MethodNotAllowed answers a known path requested with the wrong method
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *quote.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation error", Details: verr.Violations})
	case errors.Is(err, service.ErrInvalidSelection):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.log.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFromContext(r.Context()),
		}).WithError(err).Error("Failed to generate quotes")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to generate quotes"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
