package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/commons"
)

type ReportService interface {
	BankReport(ctx context.Context, topN int) (commons.Response[models.BankReportResponse], error)
	MovementReport(ctx context.Context, recentPerAccount int) (commons.Response[models.MovementReportResponse], error)
}
