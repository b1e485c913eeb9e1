package models

import (
	"errors"
	"strings"

	"github.com/api-sage/retail-banking/internal/domain"
	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	TaxID   string `json:"taxId"`
	Variant string `json:"variant"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if domain.NormalizeTaxID(r.TaxID) == "" {
		errs = append(errs, "taxId is required")
	}

	switch strings.ToUpper(strings.TrimSpace(r.Variant)) {
	case string(domain.VariantChecking), string(domain.VariantSavings):
	default:
		errs = append(errs, "variant must be CHECKING or SAVINGS")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r OpenAccountRequest) VariantValue() domain.AccountVariant {
	return domain.AccountVariant(strings.ToUpper(strings.TrimSpace(r.Variant)))
}

type AccountResponse struct {
	AccountNumber int64  `json:"accountNumber"`
	BranchCode    string `json:"branchCode"`
	Variant       string `json:"variant"`
	CustomerTaxID string `json:"customerTaxId"`
	CustomerName  string `json:"customerName"`
	Balance       string `json:"balance"`
	OpenedAt      string `json:"openedAt"`
}

type MoneyRequest struct {
	AccountNumber int64  `json:"accountNumber"`
	Amount        string `json:"amount"`
}

func (r MoneyRequest) Validate() error {
	var errs []string

	if r.AccountNumber <= 0 {
		errs = append(errs, "accountNumber is required")
	}
	if msg := validateAmount(r.Amount); msg != "" {
		errs = append(errs, msg)
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r MoneyRequest) AmountValue() decimal.Decimal {
	amount, _ := decimal.NewFromString(strings.TrimSpace(r.Amount))
	return amount
}

type TransactionModel struct {
	Reference          string `json:"reference"`
	Kind               string `json:"kind"`
	Amount             string `json:"amount"`
	Description        string `json:"description"`
	SourceAccount      int64  `json:"sourceAccount"`
	DestinationAccount *int64 `json:"destinationAccount,omitempty"`
	CreatedAt          string `json:"createdAt"`
}

type MoneyOperationResponse struct {
	AccountNumber int64              `json:"accountNumber"`
	Balance       string             `json:"balance"`
	Transactions  []TransactionModel `json:"transactions"`
}

type StatementResponse struct {
	AccountNumber  int64              `json:"accountNumber"`
	BranchCode     string             `json:"branchCode"`
	Variant        string             `json:"variant"`
	CustomerName   string             `json:"customerName"`
	Balance        string             `json:"balance"`
	FeesPaid       string             `json:"feesPaid"`
	InterestEarned string             `json:"interestEarned"`
	Transactions   []TransactionModel `json:"transactions"`
}

type CloseAccountResponse struct {
	AccountNumber int64  `json:"accountNumber"`
	ClosedAt      string `json:"closedAt"`
}

type CreditLimitResponse struct {
	AccountNumber int64  `json:"accountNumber"`
	Balance       string `json:"balance"`
	CreditLimit   string `json:"creditLimit"`
}

type CreditCardResponse struct {
	AccountNumber int64            `json:"accountNumber"`
	Acknowledged  bool             `json:"acknowledged"`
	AuditEntry    TransactionModel `json:"auditEntry"`
}

// validateAmount enforces the boundary contract for money: a numeric
// decimal string, strictly positive, with at most 2 fraction digits.
func validateAmount(raw string) string {
	amount := strings.TrimSpace(raw)
	if amount == "" {
		return "amount is required"
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return "amount must be numeric"
	}
	if parsed.LessThanOrEqual(decimal.Zero) {
		return "amount must be greater than zero"
	}
	if parsed.Exponent() < -2 {
		return "amount must have at most 2 decimal places"
	}
	return ""
}
