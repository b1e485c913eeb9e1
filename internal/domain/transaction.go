package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "DEPOSIT"
	TransactionWithdrawal TransactionKind = "WITHDRAWAL"
	TransactionTransfer   TransactionKind = "TRANSFER"
	TransactionFee        TransactionKind = "FEE"
	TransactionInterest   TransactionKind = "INTEREST"
)

// Transaction is an immutable audit record of one balance-affecting event.
// A Transfer entry appears only in the receiving account's history; the
// sending side is covered by its Withdrawal and Fee entries.
type Transaction struct {
	Reference          string
	Kind               TransactionKind
	Amount             decimal.Decimal
	Description        string
	SourceAccount      int64
	DestinationAccount *int64
	CreatedAt          time.Time
}

func newTransaction(kind TransactionKind, amount decimal.Decimal, description string, source int64, at time.Time) Transaction {
	return Transaction{
		Reference:     uuid.NewString(),
		Kind:          kind,
		Amount:        amount,
		Description:   description,
		SourceAccount: source,
		CreatedAt:     at,
	}
}

func newTransferTransaction(amount decimal.Decimal, description string, source, destination int64, at time.Time) Transaction {
	tx := newTransaction(TransactionTransfer, amount, description, source, at)
	tx.DestinationAccount = &destination
	return tx
}

func (t Transaction) IsCredit() bool {
	switch t.Kind {
	case TransactionDeposit, TransactionInterest, TransactionTransfer:
		return true
	default:
		return false
	}
}

func (t Transaction) IsDebit() bool {
	switch t.Kind {
	case TransactionWithdrawal, TransactionFee:
		return true
	default:
		return false
	}
}

// SignedAmount is the entry's contribution to the account balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsDebit() {
		return t.Amount.Neg()
	}
	return t.Amount
}
