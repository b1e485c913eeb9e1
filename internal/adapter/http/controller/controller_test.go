package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/api-sage/retail-banking/internal/adapter/http/controller"
	"github.com/api-sage/retail-banking/internal/adapter/http/router"
	"github.com/api-sage/retail-banking/internal/adapter/repository/memory"
	"github.com/api-sage/retail-banking/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func newTestMux() *http.ServeMux {
	customerRepo := memory.NewCustomerRepository()
	accountRepo := memory.NewAccountRepository()

	fee := decimal.RequireFromString("0.50")
	rate := decimal.RequireFromString("0.005")
	accountService := services.NewAccountService(accountRepo, customerRepo, "0001", fee, rate)

	return router.New(
		nil,
		controller.NewCustomerController(services.NewCustomerService(customerRepo)),
		controller.NewAccountController(accountService),
		controller.NewTransferController(services.NewTransferService(accountRepo)),
		controller.NewSavingsController(services.NewSavingsService(accountRepo)),
		controller.NewReportController(services.NewReportService(customerRepo, accountRepo)),
	)
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return envelope
}

func registerTestCustomer(t *testing.T, mux *http.ServeMux, taxID string) {
	t.Helper()
	rr := doJSON(t, mux, http.MethodPost, "/customers", map[string]any{
		"name":      "Ana Souza",
		"taxId":     taxID,
		"birthDate": time.Now().UTC().AddDate(-30, 0, 0).Format("2006-01-02"),
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register customer: status %d body %s", rr.Code, rr.Body.String())
	}
}

func openTestAccount(t *testing.T, mux *http.ServeMux, taxID, variant string) int64 {
	t.Helper()
	rr := doJSON(t, mux, http.MethodPost, "/accounts", map[string]any{
		"taxId":   taxID,
		"variant": variant,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("open account: status %d body %s", rr.Code, rr.Body.String())
	}
	data := decodeEnvelope(t, rr)["data"].(map[string]any)
	return int64(data["accountNumber"].(float64))
}

func TestCustomerEndpointsRoundTrip(t *testing.T) {
	mux := newTestMux()
	registerTestCustomer(t, mux, "12345678901")

	rr := doJSON(t, mux, http.MethodGet, "/customers/12345678901", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	data := decodeEnvelope(t, rr)["data"].(map[string]any)
	if data["name"] != "Ana Souza" {
		t.Fatalf("expected the registered customer, got %v", data["name"])
	}

	if rr := doJSON(t, mux, http.MethodGet, "/customers/999", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown customer, got %d", rr.Code)
	}
}

func TestDepositWithdrawEndpoints(t *testing.T) {
	mux := newTestMux()
	registerTestCustomer(t, mux, "111")
	number := openTestAccount(t, mux, "111", "CHECKING")

	rr := doJSON(t, mux, http.MethodPost, "/accounts/deposit", map[string]any{
		"accountNumber": number,
		"amount":        "100.00",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("deposit: status %d body %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, mux, http.MethodPost, "/accounts/withdraw", map[string]any{
		"accountNumber": number,
		"amount":        "40.00",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("withdraw: status %d body %s", rr.Code, rr.Body.String())
	}
	data := decodeEnvelope(t, rr)["data"].(map[string]any)
	if data["balance"] != "59.50" {
		t.Fatalf("expected balance 59.50, got %v", data["balance"])
	}

	// Draining past the balance is a conflict, not a server error.
	rr = doJSON(t, mux, http.MethodPost, "/accounts/withdraw", map[string]any{
		"accountNumber": number,
		"amount":        "500.00",
	})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for insufficient funds, got %d", rr.Code)
	}
}

func TestWithdrawRejectsMalformedAmount(t *testing.T) {
	mux := newTestMux()
	registerTestCustomer(t, mux, "111")
	number := openTestAccount(t, mux, "111", "CHECKING")

	rr := doJSON(t, mux, http.MethodPost, "/accounts/withdraw", map[string]any{
		"accountNumber": number,
		"amount":        "ten",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed amount, got %d", rr.Code)
	}
}

func TestTransferEndpoint(t *testing.T) {
	mux := newTestMux()
	registerTestCustomer(t, mux, "111")
	registerTestCustomer(t, mux, "222")
	source := openTestAccount(t, mux, "111", "CHECKING")
	destination := openTestAccount(t, mux, "222", "SAVINGS")

	doJSON(t, mux, http.MethodPost, "/accounts/deposit", map[string]any{
		"accountNumber": source,
		"amount":        "100.00",
	})

	rr := doJSON(t, mux, http.MethodPost, "/transfers", map[string]any{
		"sourceAccount":      source,
		"destinationAccount": destination,
		"amount":             "20.00",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("transfer: status %d body %s", rr.Code, rr.Body.String())
	}
	data := decodeEnvelope(t, rr)["data"].(map[string]any)
	if data["sourceBalance"] != "79.50" || data["destinationBalance"] != "20.00" {
		t.Fatalf("unexpected balances: %v / %v", data["sourceBalance"], data["destinationBalance"])
	}

	// A missing destination is a bad request, not a 404.
	rr = doJSON(t, mux, http.MethodPost, "/transfers", map[string]any{
		"sourceAccount":      source,
		"destinationAccount": 9999,
		"amount":             "20.00",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing destination, got %d", rr.Code)
	}
}

func TestSavingsEndpoints(t *testing.T) {
	mux := newTestMux()
	registerTestCustomer(t, mux, "111")
	number := openTestAccount(t, mux, "111", "SAVINGS")

	doJSON(t, mux, http.MethodPost, "/accounts/deposit", map[string]any{
		"accountNumber": number,
		"amount":        "1000.00",
	})

	rr := doJSON(t, mux, http.MethodPost, fmt.Sprintf("/savings/%d/accrue", number), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("accrue: status %d body %s", rr.Code, rr.Body.String())
	}
	data := decodeEnvelope(t, rr)["data"].(map[string]any)
	if data["interestAmount"] != "5.00" {
		t.Fatalf("expected 5.00 interest, got %v", data["interestAmount"])
	}

	rr = doJSON(t, mux, http.MethodPost, "/savings/projection", map[string]any{
		"accountNumber": number,
		"months":        12,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("projection: status %d body %s", rr.Code, rr.Body.String())
	}
}

func TestCloseAccountEndpoint(t *testing.T) {
	mux := newTestMux()
	registerTestCustomer(t, mux, "111")
	number := openTestAccount(t, mux, "111", "CHECKING")

	doJSON(t, mux, http.MethodPost, "/accounts/deposit", map[string]any{
		"accountNumber": number,
		"amount":        "10.00",
	})

	rr := doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/accounts/%d", number), nil)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a funded account, got %d", rr.Code)
	}

	doJSON(t, mux, http.MethodPost, "/accounts/withdraw", map[string]any{
		"accountNumber": number,
		"amount":        "9.50",
	})

	rr = doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/accounts/%d", number), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("close: status %d body %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, mux, http.MethodGet, fmt.Sprintf("/accounts/%d", number), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after close, got %d", rr.Code)
	}
}

func TestReportEndpoints(t *testing.T) {
	mux := newTestMux()
	registerTestCustomer(t, mux, "111")
	number := openTestAccount(t, mux, "111", "CHECKING")
	doJSON(t, mux, http.MethodPost, "/accounts/deposit", map[string]any{
		"accountNumber": number,
		"amount":        "100.00",
	})

	rr := doJSON(t, mux, http.MethodGet, "/reports/bank?top=3", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("bank report: status %d body %s", rr.Code, rr.Body.String())
	}
	data := decodeEnvelope(t, rr)["data"].(map[string]any)
	if data["totalBalance"] != "100.00" {
		t.Fatalf("expected total balance 100.00, got %v", data["totalBalance"])
	}

	rr = doJSON(t, mux, http.MethodGet, "/reports/movement", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("movement report: status %d body %s", rr.Code, rr.Body.String())
	}
}
