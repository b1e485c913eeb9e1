package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/commons"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error)
	Deposit(ctx context.Context, req models.MoneyRequest) (commons.Response[models.MoneyOperationResponse], error)
	Withdraw(ctx context.Context, req models.MoneyRequest) (commons.Response[models.MoneyOperationResponse], error)
	GetStatement(ctx context.Context, accountNumber int64) (commons.Response[models.StatementResponse], error)
	AccountsOf(ctx context.Context, taxID string) (commons.Response[[]models.AccountResponse], error)
	CloseAccount(ctx context.Context, accountNumber int64) (commons.Response[models.CloseAccountResponse], error)
	CreditLimit(ctx context.Context, accountNumber int64) (commons.Response[models.CreditLimitResponse], error)
	RequestCreditCard(ctx context.Context, accountNumber int64) (commons.Response[models.CreditCardResponse], error)
}
