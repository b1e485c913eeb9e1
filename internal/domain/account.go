package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type AccountVariant string

const (
	VariantChecking AccountVariant = "CHECKING"
	VariantSavings  AccountVariant = "SAVINGS"
)

// Account owns a 2-decimal-place balance and its append-only transaction
// history. The balance always equals the signed sum of the history; both
// are only touched with the account's lock held, so no partially applied
// operation is observable.
//
// The variant set is closed: Checking carries a fixed per-withdrawal fee,
// Savings carries a monthly accrual rate and last-accrual date. Dispatch
// is a switch on the variant tag.
type Account struct {
	mu sync.Mutex

	Number        int64
	BranchCode    string
	CustomerTaxID string
	CustomerName  string
	Variant       AccountVariant
	OpenedAt      time.Time

	balance decimal.Decimal
	history []Transaction

	withdrawalFee decimal.Decimal
	monthlyRate   decimal.Decimal
	lastAccrualAt time.Time
}

func NewCheckingAccount(number int64, branchCode string, owner Customer, withdrawalFee decimal.Decimal, now time.Time) *Account {
	return &Account{
		Number:        number,
		BranchCode:    branchCode,
		CustomerTaxID: owner.TaxID,
		CustomerName:  owner.Name,
		Variant:       VariantChecking,
		OpenedAt:      now,
		balance:       decimal.Zero,
		withdrawalFee: withdrawalFee,
	}
}

func NewSavingsAccount(number int64, branchCode string, owner Customer, monthlyRate decimal.Decimal, now time.Time) *Account {
	return &Account{
		Number:        number,
		BranchCode:    branchCode,
		CustomerTaxID: owner.TaxID,
		CustomerName:  owner.Name,
		Variant:       VariantSavings,
		OpenedAt:      now,
		balance:       decimal.Zero,
		monthlyRate:   monthlyRate,
		lastAccrualAt: now,
	}
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns a copied snapshot of the ledger, oldest first. This is
// the single read-only-view contract for the audit log; callers never see
// the live slice.
func (a *Account) History() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

func (a *Account) TransactionCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.history)
}

func (a *Account) WithdrawalFee() decimal.Decimal {
	return a.withdrawalFee
}

func (a *Account) MonthlyRate() decimal.Decimal {
	return a.monthlyRate
}

func (a *Account) LastAccrualAt() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastAccrualAt
}

// Deposit credits the account and appends a Deposit entry.
func (a *Account) Deposit(amount decimal.Decimal, now time.Time) (Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Transaction{}, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.creditLocked(TransactionDeposit, amount, "Deposit", now), nil
}

// Withdraw debits the amount, appends a Withdrawal entry and then applies
// the variant's withdrawal hook inside the same critical section. The
// precondition covers the hook's fee as well, so the fee step can never
// drive the balance negative.
func (a *Account) Withdraw(amount decimal.Decimal, now time.Time) ([]Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdrawLocked(amount, now)
}

func (a *Account) withdrawLocked(amount decimal.Decimal, now time.Time) ([]Transaction, error) {
	if a.balance.LessThan(a.requiredForWithdrawal(amount)) {
		return nil, &InsufficientFundsError{Balance: a.balance}
	}

	entries := []Transaction{a.debitLocked(TransactionWithdrawal, amount, "Withdrawal", now)}
	if fee := a.applyWithdrawalFeeLocked(now); fee != nil {
		entries = append(entries, *fee)
	}
	return entries, nil
}

// requiredForWithdrawal is the balance needed before a withdrawal of the
// given amount may start: the amount plus whatever the variant hook will
// debit afterwards.
func (a *Account) requiredForWithdrawal(amount decimal.Decimal) decimal.Decimal {
	if a.Variant == VariantChecking {
		return amount.Add(a.withdrawalFee)
	}
	return amount
}

// applyWithdrawalFeeLocked is the post-withdrawal variant hook. Checking
// debits its fixed fee and records a Fee entry; Savings does nothing.
func (a *Account) applyWithdrawalFeeLocked(now time.Time) *Transaction {
	switch a.Variant {
	case VariantChecking:
		tx := a.debitLocked(TransactionFee, a.withdrawalFee, "Withdrawal fee", now)
		return &tx
	default:
		return nil
	}
}

func (a *Account) creditLocked(kind TransactionKind, amount decimal.Decimal, description string, now time.Time) Transaction {
	a.balance = a.balance.Add(amount)
	tx := newTransaction(kind, amount, description, a.Number, now)
	a.history = append(a.history, tx)
	return tx
}

func (a *Account) debitLocked(kind TransactionKind, amount decimal.Decimal, description string, now time.Time) Transaction {
	a.balance = a.balance.Sub(amount)
	tx := newTransaction(kind, amount, description, a.Number, now)
	a.history = append(a.history, tx)
	return tx
}

// Transfer moves amount from src to dst as one atomic unit. Both account
// locks are taken in ascending account-number order, funds (amount plus
// the source variant's fee) are validated before any mutation, and only
// then are the debit, fee and credit applied. The Transfer entry is
// recorded on the destination's history only; the source side is already
// covered by its Withdrawal and Fee entries.
func Transfer(src, dst *Account, amount decimal.Decimal, now time.Time) ([]Transaction, error) {
	if src == nil || dst == nil {
		return nil, ErrInvalidOperation
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidOperation
	}
	if src.Number == dst.Number {
		return nil, ErrInvalidOperation
	}

	first, second := src, dst
	if dst.Number < src.Number {
		first, second = dst, src
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	entries, err := src.withdrawLocked(amount, now)
	if err != nil {
		return nil, err
	}

	dst.balance = dst.balance.Add(amount)
	received := newTransferTransaction(
		amount,
		fmt.Sprintf("Transfer received from account %d", src.Number),
		src.Number,
		dst.Number,
		now,
	)
	dst.history = append(dst.history, received)

	return append(entries, received), nil
}

// AccrueInterest applies one monthly interest credit: balance times the
// monthly rate, rounded to 2 decimal places. A zero interest amount (zero
// balance) records nothing. Savings only.
func (a *Account) AccrueInterest(now time.Time) (*Transaction, error) {
	if a.Variant != VariantSavings {
		return nil, ErrInvalidOperation
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	interest := a.balance.Mul(a.monthlyRate).Round(2)
	if interest.LessThanOrEqual(decimal.Zero) {
		return nil, nil
	}

	tx := a.creditLocked(TransactionInterest, interest, "Monthly interest", now)
	a.lastAccrualAt = now
	return &tx, nil
}

// ProjectBalance forecasts the balance after months of pure compounding
// at the monthly rate. Read-only. Savings only.
func (a *Account) ProjectBalance(months int) (decimal.Decimal, error) {
	if a.Variant != VariantSavings {
		return decimal.Zero, ErrInvalidOperation
	}
	if months < 0 {
		return decimal.Zero, ErrInvalidOperation
	}

	projected := a.Balance()
	for i := 0; i < months; i++ {
		projected = projected.Add(projected.Mul(a.monthlyRate).Round(2))
	}
	return projected, nil
}

// PlanGoal estimates the average monthly deposit needed to reach target
// in the given number of months, assuming the current balance compounds
// untouched. Zero when interest alone gets there. Read-only. Savings only.
func (a *Account) PlanGoal(target decimal.Decimal, months int) (decimal.Decimal, error) {
	if a.Variant != VariantSavings {
		return decimal.Zero, ErrInvalidOperation
	}
	if months <= 0 || target.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidOperation
	}

	projected, err := a.ProjectBalance(months)
	if err != nil {
		return decimal.Zero, err
	}

	deficit := target.Sub(projected)
	if deficit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}
	return deficit.DivRound(decimal.NewFromInt(int64(months)), 2), nil
}

// InterestEarned sums the Interest entries in the history.
func (a *Account) InterestEarned() decimal.Decimal {
	return a.sumByKind(TransactionInterest)
}

// FeesPaid sums the Fee entries in the history.
func (a *Account) FeesPaid() decimal.Decimal {
	return a.sumByKind(TransactionFee)
}

func (a *Account) sumByKind(kind TransactionKind) decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	total := decimal.Zero
	for _, tx := range a.history {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// CreditLimit is a tiered, non-mutating estimate based on the current
// balance. Checking only.
func (a *Account) CreditLimit() (decimal.Decimal, error) {
	if a.Variant != VariantChecking {
		return decimal.Zero, ErrInvalidOperation
	}

	limit := decimal.NewFromInt(1000)
	balance := a.Balance()
	switch {
	case balance.GreaterThan(decimal.NewFromInt(5000)):
		limit = limit.Mul(decimal.NewFromInt(3))
	case balance.GreaterThan(decimal.NewFromInt(1000)):
		limit = limit.Mul(decimal.NewFromInt(2))
	}
	return limit, nil
}

// RequestCreditCard acknowledges a credit-card request. It records a
// zero-amount Fee entry purely as an audit marker; the balance and its
// signed-sum invariant are untouched. Checking only.
func (a *Account) RequestCreditCard(now time.Time) (Transaction, error) {
	if a.Variant != VariantChecking {
		return Transaction{}, ErrInvalidOperation
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	tx := newTransaction(TransactionFee, decimal.Zero, "Credit card request", a.Number, now)
	a.history = append(a.history, tx)
	return tx, nil
}
