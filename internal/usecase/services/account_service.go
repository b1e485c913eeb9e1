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

type AccountService struct {
	accountRepo   repo_interfaces.AccountRepository
	customerRepo  repo_interfaces.CustomerRepository
	branchCode    string
	withdrawalFee decimal.Decimal
	savingsRate   decimal.Decimal
}

func NewAccountService(
	accountRepo repo_interfaces.AccountRepository,
	customerRepo repo_interfaces.CustomerRepository,
	branchCode string,
	withdrawalFee decimal.Decimal,
	savingsRate decimal.Decimal,
) *AccountService {
	return &AccountService{
		accountRepo:   accountRepo,
		customerRepo:  customerRepo,
		branchCode:    branchCode,
		withdrawalFee: withdrawalFee,
		savingsRate:   savingsRate,
	}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	taxID := domain.NormalizeTaxID(req.TaxID)
	variant := req.VariantValue()

	customer, err := s.customerRepo.GetByTaxID(ctx, taxID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return commons.FailureResponse[models.AccountResponse]("Customer not found", err), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	now := time.Now().UTC()
	if !customer.CanOpen(variant, now) {
		err := domain.ErrIneligibleForAccountType
		logger.Error("account service open account eligibility failed", err, logger.Fields{
			"variant": string(variant),
			"age":     customer.Age(now),
		})
		return commons.FailureResponse[models.AccountResponse]("Customer not eligible for this account type", err), err
	}

	hasVariant, err := s.accountRepo.HasVariantForCustomer(ctx, taxID, variant)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to open account right now"), err
	}
	if hasVariant {
		err := domain.ErrDuplicateAccountType
		return commons.FailureResponse[models.AccountResponse]("Customer already holds this account type", err), err
	}

	account, err := s.accountRepo.Create(ctx, taxID, variant, func(number int64) *domain.Account {
		if variant == domain.VariantChecking {
			return domain.NewCheckingAccount(number, s.branchCode, customer, s.withdrawalFee, now)
		}
		return domain.NewSavingsAccount(number, s.branchCode, customer, s.savingsRate, now)
	})
	if err != nil {
		logger.Error("account service open account repository failed", err, nil)
		if errors.Is(err, domain.ErrDuplicateAccountType) {
			return commons.FailureResponse[models.AccountResponse]("Customer already holds this account type", err), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	response := mapAccount(account)
	logger.Info("account service open account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"variant":       response.Variant,
	})

	return commons.SuccessResponse("account opened successfully", response), nil
}

func (s *AccountService) Deposit(ctx context.Context, req models.MoneyRequest) (commons.Response[models.MoneyOperationResponse], error) {
	logger.Info("account service deposit request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        req.Amount,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.MoneyOperationResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByNumber(ctx, req.AccountNumber)
	if err != nil {
		return commons.FailureResponse[models.MoneyOperationResponse]("Account not found", err), err
	}

	tx, err := account.Deposit(req.AmountValue(), time.Now().UTC())
	if err != nil {
		logger.Error("account service deposit failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.FailureResponse[models.MoneyOperationResponse]("failed to deposit funds", err), err
	}

	response := models.MoneyOperationResponse{
		AccountNumber: account.Number,
		Balance:       account.Balance().StringFixed(2),
		Transactions:  []models.TransactionModel{mapTransaction(tx)},
	}

	logger.Info("account service deposit success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("funds deposited successfully", response), nil
}

func (s *AccountService) Withdraw(ctx context.Context, req models.MoneyRequest) (commons.Response[models.MoneyOperationResponse], error) {
	logger.Info("account service withdraw request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        req.Amount,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.MoneyOperationResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByNumber(ctx, req.AccountNumber)
	if err != nil {
		return commons.FailureResponse[models.MoneyOperationResponse]("Account not found", err), err
	}

	entries, err := account.Withdraw(req.AmountValue(), time.Now().UTC())
	if err != nil {
		logger.Error("account service withdraw failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.FailureResponse[models.MoneyOperationResponse]("Insufficient funds", err), err
		}
		return commons.FailureResponse[models.MoneyOperationResponse]("failed to withdraw funds", err), err
	}

	response := models.MoneyOperationResponse{
		AccountNumber: account.Number,
		Balance:       account.Balance().StringFixed(2),
		Transactions:  mapTransactions(entries),
	}

	logger.Info("account service withdraw success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("funds withdrawn successfully", response), nil
}

func (s *AccountService) GetStatement(ctx context.Context, accountNumber int64) (commons.Response[models.StatementResponse], error) {
	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return commons.FailureResponse[models.StatementResponse]("Account not found", err), err
	}

	response := models.StatementResponse{
		AccountNumber:  account.Number,
		BranchCode:     account.BranchCode,
		Variant:        string(account.Variant),
		CustomerName:   account.CustomerName,
		Balance:        account.Balance().StringFixed(2),
		FeesPaid:       account.FeesPaid().StringFixed(2),
		InterestEarned: account.InterestEarned().StringFixed(2),
		Transactions:   mapTransactions(account.History()),
	}

	return commons.SuccessResponse("statement fetched successfully", response), nil
}

func (s *AccountService) AccountsOf(ctx context.Context, taxID string) (commons.Response[[]models.AccountResponse], error) {
	normalized := domain.NormalizeTaxID(taxID)
	if normalized == "" {
		err := errors.New("taxId is required")
		return commons.ErrorResponse[[]models.AccountResponse]("validation failed", err.Error()), err
	}

	accounts, err := s.accountRepo.ListByCustomer(ctx, normalized)
	if err != nil {
		return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to list accounts right now"), err
	}

	out := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, mapAccount(account))
	}

	return commons.SuccessResponse("accounts fetched successfully", out), nil
}

func (s *AccountService) CloseAccount(ctx context.Context, accountNumber int64) (commons.Response[models.CloseAccountResponse], error) {
	logger.Info("account service close account request", logger.Fields{
		"accountNumber": accountNumber,
	})

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return commons.FailureResponse[models.CloseAccountResponse]("Account not found", err), err
	}

	if !account.Balance().IsZero() {
		err := domain.ErrAccountNotEmpty
		logger.Error("account service close account rejected", err, logger.Fields{
			"accountNumber": accountNumber,
			"balance":       account.Balance().StringFixed(2),
		})
		return commons.FailureResponse[models.CloseAccountResponse]("Account balance must be zero", err), err
	}

	if err := s.accountRepo.Remove(ctx, accountNumber); err != nil {
		return commons.FailureResponse[models.CloseAccountResponse]("Account not found", err), err
	}

	response := models.CloseAccountResponse{
		AccountNumber: accountNumber,
		ClosedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	logger.Info("account service close account success", logger.Fields{
		"accountNumber": accountNumber,
	})

	return commons.SuccessResponse("account closed successfully", response), nil
}

func (s *AccountService) CreditLimit(ctx context.Context, accountNumber int64) (commons.Response[models.CreditLimitResponse], error) {
	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return commons.FailureResponse[models.CreditLimitResponse]("Account not found", err), err
	}

	limit, err := account.CreditLimit()
	if err != nil {
		return commons.FailureResponse[models.CreditLimitResponse]("Credit limit is only available for checking accounts", err), err
	}

	response := models.CreditLimitResponse{
		AccountNumber: account.Number,
		Balance:       account.Balance().StringFixed(2),
		CreditLimit:   limit.StringFixed(2),
	}

	return commons.SuccessResponse("credit limit estimated successfully", response), nil
}

func (s *AccountService) RequestCreditCard(ctx context.Context, accountNumber int64) (commons.Response[models.CreditCardResponse], error) {
	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return commons.FailureResponse[models.CreditCardResponse]("Account not found", err), err
	}

	tx, err := account.RequestCreditCard(time.Now().UTC())
	if err != nil {
		return commons.FailureResponse[models.CreditCardResponse]("Credit cards are only available for checking accounts", err), err
	}

	response := models.CreditCardResponse{
		AccountNumber: account.Number,
		Acknowledged:  true,
		AuditEntry:    mapTransaction(tx),
	}

	return commons.SuccessResponse("credit card request received", response), nil
}
