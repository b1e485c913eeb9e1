package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type AccrueInterestResponse struct {
	AccountNumber  int64  `json:"accountNumber"`
	InterestAmount string `json:"interestAmount"`
	Balance        string `json:"balance"`
	AccruedAt      string `json:"accruedAt"`
}

type AccrueAllResponse struct {
	AccountsAccrued int    `json:"accountsAccrued"`
	TotalInterest   string `json:"totalInterest"`
}

type ProjectionRequest struct {
	AccountNumber int64 `json:"accountNumber"`
	Months        int   `json:"months"`
}

func (r ProjectionRequest) Validate() error {
	var errs []string

	if r.AccountNumber <= 0 {
		errs = append(errs, "accountNumber is required")
	}
	if r.Months <= 0 || r.Months > 600 {
		errs = append(errs, "months must be between 1 and 600")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type ProjectionResponse struct {
	AccountNumber    int64  `json:"accountNumber"`
	Months           int    `json:"months"`
	CurrentBalance   string `json:"currentBalance"`
	ProjectedBalance string `json:"projectedBalance"`
	ProjectedGain    string `json:"projectedGain"`
}

type GoalPlanRequest struct {
	AccountNumber int64  `json:"accountNumber"`
	Target        string `json:"target"`
	Months        int    `json:"months"`
}

func (r GoalPlanRequest) Validate() error {
	var errs []string

	if r.AccountNumber <= 0 {
		errs = append(errs, "accountNumber is required")
	}
	if r.Months <= 0 || r.Months > 600 {
		errs = append(errs, "months must be between 1 and 600")
	}
	if msg := validateAmount(r.Target); msg != "" {
		errs = append(errs, strings.Replace(msg, "amount", "target", 1))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r GoalPlanRequest) TargetValue() decimal.Decimal {
	target, _ := decimal.NewFromString(strings.TrimSpace(r.Target))
	return target
}

type GoalPlanResponse struct {
	AccountNumber         int64  `json:"accountNumber"`
	Target                string `json:"target"`
	Months                int    `json:"months"`
	ProjectedBalance      string `json:"projectedBalance"`
	MonthlyDeposit        string `json:"monthlyDeposit"`
	GoalReachedByInterest bool   `json:"goalReachedByInterest"`
}
