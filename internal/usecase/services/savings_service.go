package services

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking/internal/commons"
	"github.com/api-sage/retail-banking/internal/domain"
	"github.com/api-sage/retail-banking/internal/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const accrualConcurrency = 4

type SavingsService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewSavingsService(accountRepo repo_interfaces.AccountRepository) *SavingsService {
	return &SavingsService{accountRepo: accountRepo}
}

func (s *SavingsService) AccrueInterest(ctx context.Context, accountNumber int64) (commons.Response[models.AccrueInterestResponse], error) {
	logger.Info("savings service accrue interest request", logger.Fields{
		"accountNumber": accountNumber,
	})

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return commons.FailureResponse[models.AccrueInterestResponse]("Account not found", err), err
	}

	now := time.Now().UTC()
	tx, err := account.AccrueInterest(now)
	if err != nil {
		logger.Error("savings service accrue interest failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.FailureResponse[models.AccrueInterestResponse]("Interest accrual is only available for savings accounts", err), err
	}

	interest := decimal.Zero
	if tx != nil {
		interest = tx.Amount
	}

	response := models.AccrueInterestResponse{
		AccountNumber:  account.Number,
		InterestAmount: interest.StringFixed(2),
		Balance:        account.Balance().StringFixed(2),
		AccruedAt:      account.LastAccrualAt().Format(time.RFC3339),
	}

	logger.Info("savings service accrue interest success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"interest":      response.InterestAmount,
	})

	return commons.SuccessResponse("interest accrued successfully", response), nil
}

// AccrueAllSavings runs the monthly accrual batch over every savings
// account. Accounts serialize on their own locks, so the batch fans out.
func (s *SavingsService) AccrueAllSavings(ctx context.Context) (commons.Response[models.AccrueAllResponse], error) {
	logger.Info("savings service accrue all request", nil)

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return commons.ErrorResponse[models.AccrueAllResponse]("failed to accrue interest", "Unable to accrue interest right now"), err
	}

	now := time.Now().UTC()

	var mu sync.Mutex
	accrued := 0
	total := decimal.Zero

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(accrualConcurrency)
	for _, account := range accounts {
		if account.Variant != domain.VariantSavings {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tx, err := account.AccrueInterest(now)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			accrued++
			if tx != nil {
				total = total.Add(tx.Amount)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("savings service accrue all failed", err, nil)
		return commons.ErrorResponse[models.AccrueAllResponse]("failed to accrue interest", "Unable to accrue interest right now"), err
	}

	response := models.AccrueAllResponse{
		AccountsAccrued: accrued,
		TotalInterest:   total.StringFixed(2),
	}

	logger.Info("savings service accrue all success", logger.Fields{
		"accountsAccrued": response.AccountsAccrued,
		"totalInterest":   response.TotalInterest,
	})

	return commons.SuccessResponse("interest accrued on all savings accounts", response), nil
}

func (s *SavingsService) ProjectBalance(ctx context.Context, req models.ProjectionRequest) (commons.Response[models.ProjectionResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.ProjectionResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByNumber(ctx, req.AccountNumber)
	if err != nil {
		return commons.FailureResponse[models.ProjectionResponse]("Account not found", err), err
	}

	projected, err := account.ProjectBalance(req.Months)
	if err != nil {
		return commons.FailureResponse[models.ProjectionResponse]("Projections are only available for savings accounts", err), err
	}

	current := account.Balance()
	response := models.ProjectionResponse{
		AccountNumber:    account.Number,
		Months:           req.Months,
		CurrentBalance:   current.StringFixed(2),
		ProjectedBalance: projected.StringFixed(2),
		ProjectedGain:    projected.Sub(current).StringFixed(2),
	}

	return commons.SuccessResponse("projection calculated successfully", response), nil
}

func (s *SavingsService) PlanGoal(ctx context.Context, req models.GoalPlanRequest) (commons.Response[models.GoalPlanResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.GoalPlanResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByNumber(ctx, req.AccountNumber)
	if err != nil {
		return commons.FailureResponse[models.GoalPlanResponse]("Account not found", err), err
	}

	target := req.TargetValue()
	monthly, err := account.PlanGoal(target, req.Months)
	if err != nil {
		return commons.FailureResponse[models.GoalPlanResponse]("Goal planning is only available for savings accounts", err), err
	}

	projected, err := account.ProjectBalance(req.Months)
	if err != nil {
		return commons.FailureResponse[models.GoalPlanResponse]("Goal planning is only available for savings accounts", err), err
	}

	response := models.GoalPlanResponse{
		AccountNumber:         account.Number,
		Target:                target.StringFixed(2),
		Months:                req.Months,
		ProjectedBalance:      projected.StringFixed(2),
		MonthlyDeposit:        monthly.StringFixed(2),
		GoalReachedByInterest: monthly.IsZero(),
	}

	return commons.SuccessResponse("goal plan calculated successfully", response), nil
}
