package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/commons"
)

type SavingsService interface {
	AccrueInterest(ctx context.Context, accountNumber int64) (commons.Response[models.AccrueInterestResponse], error)
	AccrueAllSavings(ctx context.Context) (commons.Response[models.AccrueAllResponse], error)
	ProjectBalance(ctx context.Context, req models.ProjectionRequest) (commons.Response[models.ProjectionResponse], error)
	PlanGoal(ctx context.Context, req models.GoalPlanRequest) (commons.Response[models.GoalPlanResponse], error)
}
