package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/adapter/repository/memory"
	"github.com/api-sage/retail-banking/internal/usecase/services"
	"github.com/shopspring/decimal"
)

// testStack wires the services over fresh in-memory repositories, the
// way the server entrypoint does.
type testStack struct {
	customers *services.CustomerService
	accounts  *services.AccountService
	transfers *services.TransferService
	savings   *services.SavingsService
	reports   *services.ReportService
}

func newTestStack() *testStack {
	customerRepo := memory.NewCustomerRepository()
	accountRepo := memory.NewAccountRepository()

	fee := decimal.RequireFromString("0.50")
	rate := decimal.RequireFromString("0.005")

	return &testStack{
		customers: services.NewCustomerService(customerRepo),
		accounts:  services.NewAccountService(accountRepo, customerRepo, "0001", fee, rate),
		transfers: services.NewTransferService(accountRepo),
		savings:   services.NewSavingsService(accountRepo),
		reports:   services.NewReportService(customerRepo, accountRepo),
	}
}

func (s *testStack) registerAdult(t *testing.T, name, taxID string) {
	t.Helper()
	birth := time.Now().UTC().AddDate(-30, 0, 0).Format("2006-01-02")
	_, err := s.customers.RegisterCustomer(context.Background(), models.RegisterCustomerRequest{
		Name:      name,
		TaxID:     taxID,
		BirthDate: birth,
	})
	if err != nil {
		t.Fatalf("register customer %s: %v", taxID, err)
	}
}

func (s *testStack) openAccount(t *testing.T, taxID, variant string) int64 {
	t.Helper()
	resp, err := s.accounts.OpenAccount(context.Background(), models.OpenAccountRequest{
		TaxID:   taxID,
		Variant: variant,
	})
	if err != nil {
		t.Fatalf("open %s account for %s: %v", variant, taxID, err)
	}
	return resp.Data.AccountNumber
}

func (s *testStack) deposit(t *testing.T, number int64, amount string) {
	t.Helper()
	_, err := s.accounts.Deposit(context.Background(), models.MoneyRequest{
		AccountNumber: number,
		Amount:        amount,
	})
	if err != nil {
		t.Fatalf("deposit %s into %d: %v", amount, number, err)
	}
}
