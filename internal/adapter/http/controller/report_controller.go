package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/commons"
)

type ReportService interface {
	BankReport(ctx context.Context, topN int) (commons.Response[models.BankReportResponse], error)
	MovementReport(ctx context.Context, recentPerAccount int) (commons.Response[models.MovementReportResponse], error)
}

type ReportController struct {
	service ReportService
}

func NewReportController(service ReportService) *ReportController {
	return &ReportController{service: service}
}

func (c *ReportController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("GET /reports/bank", wrap(c.bankReport))
	mux.Handle("GET /reports/movement", wrap(c.movementReport))
}

func (c *ReportController) bankReport(w http.ResponseWriter, r *http.Request) {
	topN, _ := strconv.Atoi(r.URL.Query().Get("top"))

	response, err := c.service.BankReport(r.Context(), topN)
	if err != nil {
		logError(r, err)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *ReportController) movementReport(w http.ResponseWriter, r *http.Request) {
	recent, _ := strconv.Atoi(r.URL.Query().Get("recent"))

	response, err := c.service.MovementReport(r.Context(), recent)
	if err != nil {
		logError(r, err)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
