package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/commons"
)

type CustomerService interface {
	RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (commons.Response[models.CustomerResponse], error)
	GetCustomer(ctx context.Context, taxID string) (commons.Response[models.CustomerResponse], error)
}

type CustomerController struct {
	service CustomerService
}

func NewCustomerController(service CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

func (c *CustomerController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register := http.Handler(http.HandlerFunc(c.registerCustomer))
	get := http.Handler(http.HandlerFunc(c.getCustomer))
	if authMiddleware != nil {
		register = authMiddleware(register)
		get = authMiddleware(get)
	}
	mux.Handle("POST /customers", register)
	mux.Handle("GET /customers/{taxId}", get)
}

func (c *CustomerController) registerCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.RegisterCustomer(r.Context(), req)
	if err != nil {
		logError(r, err)
		status := statusForError(err)
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *CustomerController) getCustomer(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.GetCustomer(r.Context(), r.PathValue("taxId"))
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
