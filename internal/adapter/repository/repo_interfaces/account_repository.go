package repo_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking/internal/domain"
)

// AccountRepository is the owning registry of accounts. Numbering is its
// responsibility: Create assigns the next sequential account number and
// hands it to the build callback, all under the registry's own mutation
// scope, so accounts never self-assign numbers and a rejected open, such
// as a duplicate variant, never consumes one.
type AccountRepository interface {
	Create(ctx context.Context, taxID string, variant domain.AccountVariant, build func(number int64) *domain.Account) (*domain.Account, error)
	GetByNumber(ctx context.Context, number int64) (*domain.Account, error)
	ListByCustomer(ctx context.Context, taxID string) ([]*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	HasVariantForCustomer(ctx context.Context, taxID string, variant domain.AccountVariant) (bool, error)
	Remove(ctx context.Context, number int64) error
}
