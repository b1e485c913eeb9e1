package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/commons"
)

type SavingsService interface {
	AccrueInterest(ctx context.Context, accountNumber int64) (commons.Response[models.AccrueInterestResponse], error)
	AccrueAllSavings(ctx context.Context) (commons.Response[models.AccrueAllResponse], error)
	ProjectBalance(ctx context.Context, req models.ProjectionRequest) (commons.Response[models.ProjectionResponse], error)
	PlanGoal(ctx context.Context, req models.GoalPlanRequest) (commons.Response[models.GoalPlanResponse], error)
}

type SavingsController struct {
	service SavingsService
}

func NewSavingsController(service SavingsService) *SavingsController {
	return &SavingsController{service: service}
}

func (c *SavingsController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /savings/{number}/accrue", wrap(c.accrueInterest))
	mux.Handle("POST /savings/accrue-all", wrap(c.accrueAll))
	mux.Handle("POST /savings/projection", wrap(c.projectBalance))
	mux.Handle("POST /savings/goal-plan", wrap(c.planGoal))
}

func (c *SavingsController) accrueInterest(w http.ResponseWriter, r *http.Request) {
	number, ok := accountNumberFromPath(w, r)
	if !ok {
		return
	}
	logRequest(r, map[string]any{"accountNumber": number})

	response, err := c.service.AccrueInterest(r.Context(), number)
	if err != nil {
		logError(r, err)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *SavingsController) accrueAll(w http.ResponseWriter, r *http.Request) {
	logRequest(r, nil)

	response, err := c.service.AccrueAllSavings(r.Context())
	if err != nil {
		logError(r, err)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *SavingsController) projectBalance(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ProjectionResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.ProjectBalance(r.Context(), req)
	if err != nil {
		logError(r, err)
		status := statusForError(err)
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *SavingsController) planGoal(w http.ResponseWriter, r *http.Request) {
	var req models.GoalPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.GoalPlanResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.PlanGoal(r.Context(), req)
	if err != nil {
		logError(r, err)
		status := statusForError(err)
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
