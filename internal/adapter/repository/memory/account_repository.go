package memory

import (
	"context"
	"sync"

	"github.com/api-sage/retail-banking/internal/domain"
)

// firstAccountNumber is where the registry's monotonic counter starts.
const firstAccountNumber = 1001

// AccountRepository is the in-memory account registry. It owns the
// numbering counter and the uniqueness rules: numbers are strictly
// increasing from 1001 and never reused after closure, and a customer
// holds at most one account per variant. Structural mutations happen
// under the registry mutex; balance mutations are the account's own
// concern.
type AccountRepository struct {
	mu         sync.Mutex
	nextNumber int64
	ordered    []*domain.Account
	byNumber   map[int64]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		nextNumber: firstAccountNumber,
		byNumber:   make(map[int64]*domain.Account),
	}
}

func (r *AccountRepository) Create(_ context.Context, taxID string, variant domain.AccountVariant, build func(number int64) *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.ordered {
		if account.CustomerTaxID == taxID && account.Variant == variant {
			return nil, domain.ErrDuplicateAccountType
		}
	}

	account := build(r.nextNumber)
	r.nextNumber++

	r.byNumber[account.Number] = account
	r.ordered = append(r.ordered, account)
	return account, nil
}

func (r *AccountRepository) GetByNumber(_ context.Context, number int64) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byNumber[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (r *AccountRepository) ListByCustomer(_ context.Context, taxID string) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Account
	for _, account := range r.ordered {
		if account.CustomerTaxID == taxID {
			out = append(out, account)
		}
	}
	return out, nil
}

func (r *AccountRepository) List(_ context.Context) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Account, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

func (r *AccountRepository) HasVariantForCustomer(_ context.Context, taxID string, variant domain.AccountVariant) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.ordered {
		if account.CustomerTaxID == taxID && account.Variant == variant {
			return true, nil
		}
	}
	return false, nil
}

// Remove drops the account from the registry. The numbering counter is
// untouched, so a closed account's number is never handed out again.
func (r *AccountRepository) Remove(_ context.Context, number int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byNumber[number]; !ok {
		return domain.ErrAccountNotFound
	}

	delete(r.byNumber, number)
	for i, account := range r.ordered {
		if account.Number == number {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
	return nil
}
