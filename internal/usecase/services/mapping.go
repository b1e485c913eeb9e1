package services

import (
	"time"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/domain"
)

func mapTransaction(tx domain.Transaction) models.TransactionModel {
	return models.TransactionModel{
		Reference:          tx.Reference,
		Kind:               string(tx.Kind),
		Amount:             tx.Amount.StringFixed(2),
		Description:        tx.Description,
		SourceAccount:      tx.SourceAccount,
		DestinationAccount: tx.DestinationAccount,
		CreatedAt:          tx.CreatedAt.Format(time.RFC3339),
	}
}

func mapTransactions(txs []domain.Transaction) []models.TransactionModel {
	out := make([]models.TransactionModel, 0, len(txs))
	for _, tx := range txs {
		out = append(out, mapTransaction(tx))
	}
	return out
}

func mapAccount(account *domain.Account) models.AccountResponse {
	return models.AccountResponse{
		AccountNumber: account.Number,
		BranchCode:    account.BranchCode,
		Variant:       string(account.Variant),
		CustomerTaxID: account.CustomerTaxID,
		CustomerName:  account.CustomerName,
		Balance:       account.Balance().StringFixed(2),
		OpenedAt:      account.OpenedAt.Format(time.RFC3339),
	}
}
