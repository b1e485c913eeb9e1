package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrAccountNotFound          = errors.New("account not found")
	ErrCustomerNotFound         = errors.New("customer not found")
	ErrDuplicateCustomer        = errors.New("customer with this tax id already registered")
	ErrIneligibleForAccountType = errors.New("customer is not eligible for this account type")
	ErrDuplicateAccountType     = errors.New("customer already holds an account of this type")
	ErrAccountNotEmpty          = errors.New("account balance must be zero before closing")
	ErrInvalidOperation         = errors.New("invalid operation")
)

// InsufficientFundsError carries the balance at the moment the operation
// was rejected. errors.Is(err, ErrInsufficientFunds) matches it.
type InsufficientFundsError struct {
	Balance decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: current balance %s", e.Balance.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
