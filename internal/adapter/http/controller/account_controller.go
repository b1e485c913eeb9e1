package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/commons"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error)
	Deposit(ctx context.Context, req models.MoneyRequest) (commons.Response[models.MoneyOperationResponse], error)
	Withdraw(ctx context.Context, req models.MoneyRequest) (commons.Response[models.MoneyOperationResponse], error)
	GetStatement(ctx context.Context, accountNumber int64) (commons.Response[models.StatementResponse], error)
	AccountsOf(ctx context.Context, taxID string) (commons.Response[[]models.AccountResponse], error)
	CloseAccount(ctx context.Context, accountNumber int64) (commons.Response[models.CloseAccountResponse], error)
	CreditLimit(ctx context.Context, accountNumber int64) (commons.Response[models.CreditLimitResponse], error)
	RequestCreditCard(ctx context.Context, accountNumber int64) (commons.Response[models.CreditCardResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /accounts", wrap(c.openAccount))
	mux.Handle("GET /accounts/{number}", wrap(c.getStatement))
	mux.Handle("DELETE /accounts/{number}", wrap(c.closeAccount))
	mux.Handle("POST /accounts/deposit", wrap(c.deposit))
	mux.Handle("POST /accounts/withdraw", wrap(c.withdraw))
	mux.Handle("GET /accounts/{number}/credit-limit", wrap(c.creditLimit))
	mux.Handle("POST /accounts/{number}/credit-card", wrap(c.requestCreditCard))
	mux.Handle("GET /customers/{taxId}/accounts", wrap(c.accountsOf))
}

func (c *AccountController) openAccount(w http.ResponseWriter, r *http.Request) {
	var req models.OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.OpenAccount(r.Context(), req)
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

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	var req models.MoneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.MoneyOperationResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.Deposit(r.Context(), req)
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

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	var req models.MoneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.MoneyOperationResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.Withdraw(r.Context(), req)
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

func (c *AccountController) getStatement(w http.ResponseWriter, r *http.Request) {
	number, ok := accountNumberFromPath(w, r)
	if !ok {
		return
	}

	response, err := c.service.GetStatement(r.Context(), number)
	if err != nil {
		logError(r, err)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) accountsOf(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.AccountsOf(r.Context(), r.PathValue("taxId"))
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

func (c *AccountController) closeAccount(w http.ResponseWriter, r *http.Request) {
	number, ok := accountNumberFromPath(w, r)
	if !ok {
		return
	}
	logRequest(r, map[string]any{"accountNumber": number})

	response, err := c.service.CloseAccount(r.Context(), number)
	if err != nil {
		logError(r, err)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) creditLimit(w http.ResponseWriter, r *http.Request) {
	number, ok := accountNumberFromPath(w, r)
	if !ok {
		return
	}

	response, err := c.service.CreditLimit(r.Context(), number)
	if err != nil {
		logError(r, err)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) requestCreditCard(w http.ResponseWriter, r *http.Request) {
	number, ok := accountNumberFromPath(w, r)
	if !ok {
		return
	}
	logRequest(r, map[string]any{"accountNumber": number})

	response, err := c.service.RequestCreditCard(r.Context(), number)
	if err != nil {
		logError(r, err)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func accountNumberFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	number, err := strconv.ParseInt(r.PathValue("number"), 10, 64)
	if err != nil || number <= 0 {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[struct{}]("validation failed", "account number must be a positive integer"))
		return 0, false
	}
	return number, true
}
