package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	SourceAccount      int64  `json:"sourceAccount"`
	DestinationAccount int64  `json:"destinationAccount"`
	Amount             string `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if r.SourceAccount <= 0 {
		errs = append(errs, "sourceAccount is required")
	}
	if r.DestinationAccount <= 0 {
		errs = append(errs, "destinationAccount is required")
	}
	if r.SourceAccount > 0 && r.SourceAccount == r.DestinationAccount {
		errs = append(errs, "sourceAccount and destinationAccount cannot be the same")
	}
	if msg := validateAmount(r.Amount); msg != "" {
		errs = append(errs, msg)
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r TransferRequest) AmountValue() decimal.Decimal {
	amount, _ := decimal.NewFromString(strings.TrimSpace(r.Amount))
	return amount
}

type TransferResponse struct {
	SourceAccount      int64              `json:"sourceAccount"`
	DestinationAccount int64              `json:"destinationAccount"`
	Amount             string             `json:"amount"`
	FeeAmount          string             `json:"feeAmount"`
	SourceBalance      string             `json:"sourceBalance"`
	DestinationBalance string             `json:"destinationBalance"`
	Transactions       []TransactionModel `json:"transactions"`
}
