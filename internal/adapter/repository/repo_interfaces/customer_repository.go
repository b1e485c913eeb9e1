package repo_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}
