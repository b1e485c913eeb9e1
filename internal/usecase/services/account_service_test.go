package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/domain"
)

func TestAccountServiceOpenAccountValidationError(t *testing.T) {
	stack := newTestStack()

	_, err := stack.accounts.OpenAccount(context.Background(), models.OpenAccountRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty open account request")
	}
}

func TestAccountServiceOpenAccountForUnknownCustomer(t *testing.T) {
	stack := newTestStack()

	_, err := stack.accounts.OpenAccount(context.Background(), models.OpenAccountRequest{
		TaxID:   "999",
		Variant: "CHECKING",
	})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected customer not found, got %v", err)
	}
}

func TestAccountServiceMinorCannotOpenChecking(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()

	minorBirth := time.Now().UTC().AddDate(-15, 0, 0).Format("2006-01-02")
	if _, err := stack.customers.RegisterCustomer(ctx, models.RegisterCustomerRequest{
		Name:      "Caio Souza",
		TaxID:     "333",
		BirthDate: minorBirth,
	}); err != nil {
		t.Fatalf("register minor: %v", err)
	}

	_, err := stack.accounts.OpenAccount(ctx, models.OpenAccountRequest{TaxID: "333", Variant: "CHECKING"})
	if !errors.Is(err, domain.ErrIneligibleForAccountType) {
		t.Fatalf("expected ineligible for account type, got %v", err)
	}

	// Savings stays open to minors.
	resp, err := stack.accounts.OpenAccount(ctx, models.OpenAccountRequest{TaxID: "333", Variant: "SAVINGS"})
	if err != nil {
		t.Fatalf("open savings for minor: %v", err)
	}
	if resp.Data.AccountNumber != 1001 {
		t.Fatalf("expected first account number 1001, got %d", resp.Data.AccountNumber)
	}
}

func TestAccountServiceRejectsSecondAccountOfSameVariant(t *testing.T) {
	stack := newTestStack()
	stack.registerAdult(t, "Ana Souza", "111")
	stack.openAccount(t, "111", "CHECKING")

	_, err := stack.accounts.OpenAccount(context.Background(), models.OpenAccountRequest{
		TaxID:   "111",
		Variant: "CHECKING",
	})
	if !errors.Is(err, domain.ErrDuplicateAccountType) {
		t.Fatalf("expected duplicate account type, got %v", err)
	}
}

func TestAccountServiceDepositAndWithdrawFlow(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()
	stack.registerAdult(t, "Ana Souza", "111")
	number := stack.openAccount(t, "111", "CHECKING")

	stack.deposit(t, number, "100.00")

	resp, err := stack.accounts.Withdraw(ctx, models.MoneyRequest{AccountNumber: number, Amount: "40.00"})
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if resp.Data.Balance != "59.50" {
		t.Fatalf("expected balance 59.50 after withdrawal and fee, got %s", resp.Data.Balance)
	}
	if len(resp.Data.Transactions) != 2 {
		t.Fatalf("expected withdrawal and fee entries, got %d", len(resp.Data.Transactions))
	}

	statement, err := stack.accounts.GetStatement(ctx, number)
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	if len(statement.Data.Transactions) != 3 {
		t.Fatalf("expected 3 ledger entries, got %d", len(statement.Data.Transactions))
	}
	if statement.Data.FeesPaid != "0.50" {
		t.Fatalf("expected 0.50 in fees on the statement, got %s", statement.Data.FeesPaid)
	}
	if statement.Data.InterestEarned != "0.00" {
		t.Fatalf("expected no interest on checking, got %s", statement.Data.InterestEarned)
	}
}

func TestAccountServiceWithdrawInsufficientFunds(t *testing.T) {
	stack := newTestStack()
	stack.registerAdult(t, "Ana Souza", "111")
	number := stack.openAccount(t, "111", "CHECKING")
	stack.deposit(t, number, "10.00")

	_, err := stack.accounts.Withdraw(context.Background(), models.MoneyRequest{AccountNumber: number, Amount: "10.00"})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
}

func TestAccountServiceDepositRejectsSubCentAmounts(t *testing.T) {
	stack := newTestStack()
	stack.registerAdult(t, "Ana Souza", "111")
	number := stack.openAccount(t, "111", "CHECKING")

	_, err := stack.accounts.Deposit(context.Background(), models.MoneyRequest{AccountNumber: number, Amount: "10.001"})
	if err == nil {
		t.Fatal("expected validation error for a sub-cent amount")
	}
}

func TestAccountServiceCloseRequiresZeroBalance(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()
	stack.registerAdult(t, "Ana Souza", "111")
	number := stack.openAccount(t, "111", "CHECKING")
	stack.deposit(t, number, "10.00")

	_, err := stack.accounts.CloseAccount(ctx, number)
	if !errors.Is(err, domain.ErrAccountNotEmpty) {
		t.Fatalf("expected account not empty, got %v", err)
	}

	if _, err := stack.accounts.Withdraw(ctx, models.MoneyRequest{AccountNumber: number, Amount: "9.50"}); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if _, err := stack.accounts.CloseAccount(ctx, number); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := stack.accounts.GetStatement(ctx, number); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected account not found after close, got %v", err)
	}
}

func TestAccountServiceCreditLimitOnlyForChecking(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()
	stack.registerAdult(t, "Ana Souza", "111")
	checking := stack.openAccount(t, "111", "CHECKING")
	savings := stack.openAccount(t, "111", "SAVINGS")

	resp, err := stack.accounts.CreditLimit(ctx, checking)
	if err != nil {
		t.Fatalf("credit limit: %v", err)
	}
	if resp.Data.CreditLimit != "1000.00" {
		t.Fatalf("expected base limit 1000.00, got %s", resp.Data.CreditLimit)
	}

	if _, err := stack.accounts.CreditLimit(ctx, savings); !errors.Is(err, domain.ErrInvalidOperation) {
		t.Fatalf("expected invalid operation for savings, got %v", err)
	}
}

func TestAccountServiceRequestCreditCard(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()
	stack.registerAdult(t, "Ana Souza", "111")
	number := stack.openAccount(t, "111", "CHECKING")

	resp, err := stack.accounts.RequestCreditCard(ctx, number)
	if err != nil {
		t.Fatalf("request card: %v", err)
	}
	if !resp.Data.Acknowledged {
		t.Fatal("expected the request to be acknowledged")
	}
	if resp.Data.AuditEntry.Amount != "0.00" {
		t.Fatalf("expected a zero-amount audit entry, got %s", resp.Data.AuditEntry.Amount)
	}

	statement, err := stack.accounts.GetStatement(ctx, number)
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	if statement.Data.Balance != "0.00" {
		t.Fatalf("audit marker must not move the balance, got %s", statement.Data.Balance)
	}
}
