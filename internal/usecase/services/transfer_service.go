package services

import (
	"context"
	"errors"
	"time"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking/internal/commons"
	"github.com/api-sage/retail-banking/internal/domain"
	"github.com/api-sage/retail-banking/internal/logger"
	"github.com/shopspring/decimal"
)

type TransferService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewTransferService(accountRepo repo_interfaces.AccountRepository) *TransferService {
	return &TransferService{accountRepo: accountRepo}
}

// TransferFunds moves an amount between two registered accounts. The
// debit (plus the source variant's fee) and the credit are applied as a
// single atomic unit inside the domain; a missing destination or a
// self-transfer is an invalid operation, not a not-found.
func (s *TransferService) TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service transfer request", logger.Fields{
		"sourceAccount":      req.SourceAccount,
		"destinationAccount": req.DestinationAccount,
		"amount":             req.Amount,
	})

	if err := req.Validate(); err != nil {
		logger.Error("transfer service transfer validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	source, err := s.accountRepo.GetByNumber(ctx, req.SourceAccount)
	if err != nil {
		return commons.FailureResponse[models.TransferResponse]("Source account not found", err), err
	}

	destination, err := s.accountRepo.GetByNumber(ctx, req.DestinationAccount)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			err = domain.ErrInvalidOperation
		}
		return commons.FailureResponse[models.TransferResponse]("Destination account is missing", err), err
	}

	amount := req.AmountValue()
	entries, err := domain.Transfer(source, destination, amount, time.Now().UTC())
	if err != nil {
		logger.Error("transfer service transfer failed", err, logger.Fields{
			"sourceAccount":      req.SourceAccount,
			"destinationAccount": req.DestinationAccount,
		})
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.FailureResponse[models.TransferResponse]("Insufficient funds", err), err
		}
		return commons.FailureResponse[models.TransferResponse]("failed to process transfer", err), err
	}

	fee := decimal.Zero
	for _, tx := range entries {
		if tx.Kind == domain.TransactionFee {
			fee = fee.Add(tx.Amount)
		}
	}

	response := models.TransferResponse{
		SourceAccount:      source.Number,
		DestinationAccount: destination.Number,
		Amount:             amount.StringFixed(2),
		FeeAmount:          fee.StringFixed(2),
		SourceBalance:      source.Balance().StringFixed(2),
		DestinationBalance: destination.Balance().StringFixed(2),
		Transactions:       mapTransactions(entries),
	}

	logger.Info("transfer service transfer success", logger.Fields{
		"sourceAccount":      response.SourceAccount,
		"destinationAccount": response.DestinationAccount,
		"amount":             response.Amount,
		"fee":                response.FeeAmount,
	})

	return commons.SuccessResponse("transfer completed successfully", response), nil
}
