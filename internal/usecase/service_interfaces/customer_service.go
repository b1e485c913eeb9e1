package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/commons"
)

type CustomerService interface {
	RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (commons.Response[models.CustomerResponse], error)
	GetCustomer(ctx context.Context, taxID string) (commons.Response[models.CustomerResponse], error)
}
