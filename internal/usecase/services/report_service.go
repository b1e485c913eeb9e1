package services

import (
	"context"
	"sort"
	"time"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking/internal/commons"
	"github.com/api-sage/retail-banking/internal/domain"
	"github.com/shopspring/decimal"
)

// ReportService produces managerial aggregations. Everything here is a
// pure read over the current collections; nothing mutates.
type ReportService struct {
	customerRepo repo_interfaces.CustomerRepository
	accountRepo  repo_interfaces.AccountRepository
}

func NewReportService(customerRepo repo_interfaces.CustomerRepository, accountRepo repo_interfaces.AccountRepository) *ReportService {
	return &ReportService{customerRepo: customerRepo, accountRepo: accountRepo}
}

func (s *ReportService) BankReport(ctx context.Context, topN int) (commons.Response[models.BankReportResponse], error) {
	if topN <= 0 {
		topN = 5
	}

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return commons.ErrorResponse[models.BankReportResponse]("failed to build report", "Unable to build report right now"), err
	}
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return commons.ErrorResponse[models.BankReportResponse]("failed to build report", "Unable to build report right now"), err
	}

	report := models.BankReportResponse{
		TotalCustomers: len(customers),
		TotalAccounts:  len(accounts),
	}

	totalBalance := decimal.Zero
	balanceByTaxID := make(map[string]decimal.Decimal, len(customers))
	for _, account := range accounts {
		balance := account.Balance()
		totalBalance = totalBalance.Add(balance)
		balanceByTaxID[account.CustomerTaxID] = balanceByTaxID[account.CustomerTaxID].Add(balance)

		switch account.Variant {
		case domain.VariantChecking:
			report.CheckingAccounts++
		case domain.VariantSavings:
			report.SavingsAccounts++
		}
	}
	report.TotalBalance = totalBalance.StringFixed(2)

	report.TopCustomers = topCustomersByBalance(customers, balanceByTaxID, topN)
	report.AgeBrackets = ageBrackets(customers, time.Now().UTC())
	report.TopAccounts = topAccountsByActivity(accounts, topN)

	return commons.SuccessResponse("report built successfully", report), nil
}

func (s *ReportService) MovementReport(ctx context.Context, recentPerAccount int) (commons.Response[models.MovementReportResponse], error) {
	if recentPerAccount <= 0 {
		recentPerAccount = 3
	}

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return commons.ErrorResponse[models.MovementReportResponse]("failed to build report", "Unable to build report right now"), err
	}

	report := models.MovementReportResponse{
		Accounts: make([]models.AccountMovementModel, 0, len(accounts)),
	}
	for _, account := range accounts {
		history := account.History()
		if len(history) > recentPerAccount {
			history = history[len(history)-recentPerAccount:]
		}
		report.Accounts = append(report.Accounts, models.AccountMovementModel{
			AccountNumber: account.Number,
			Variant:       string(account.Variant),
			CustomerName:  account.CustomerName,
			Recent:        mapTransactions(history),
		})
	}

	return commons.SuccessResponse("movement report built successfully", report), nil
}

func topCustomersByBalance(customers []domain.Customer, balances map[string]decimal.Decimal, topN int) []models.CustomerBalanceModel {
	ranked := make([]models.CustomerBalanceModel, 0, len(customers))
	for _, customer := range customers {
		ranked = append(ranked, models.CustomerBalanceModel{
			Name:    customer.Name,
			TaxID:   customer.TaxID,
			Balance: balances[customer.TaxID].StringFixed(2),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, _ := decimal.NewFromString(ranked[i].Balance)
		b, _ := decimal.NewFromString(ranked[j].Balance)
		return a.GreaterThan(b)
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func ageBrackets(customers []domain.Customer, now time.Time) models.AgeBracketsModel {
	var brackets models.AgeBracketsModel
	for _, customer := range customers {
		switch age := customer.Age(now); {
		case age < 18:
			brackets.Minors++
		case age < 30:
			brackets.Young++
		case age < 60:
			brackets.Adults++
		default:
			brackets.Seniors++
		}
	}
	return brackets
}

func topAccountsByActivity(accounts []*domain.Account, topN int) []models.AccountActivityModel {
	ranked := make([]models.AccountActivityModel, 0, len(accounts))
	for _, account := range accounts {
		ranked = append(ranked, models.AccountActivityModel{
			AccountNumber: account.Number,
			Variant:       string(account.Variant),
			CustomerName:  account.CustomerName,
			Transactions:  account.TransactionCount(),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Transactions > ranked[j].Transactions
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
