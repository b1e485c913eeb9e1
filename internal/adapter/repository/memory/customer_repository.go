package memory

import (
	"context"
	"sync"

	"github.com/api-sage/retail-banking/internal/domain"
)

// CustomerRepository keeps customers in insertion order, keyed by
// normalized tax id.
type CustomerRepository struct {
	mu      sync.Mutex
	ordered []string
	byTaxID map[string]domain.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byTaxID: make(map[string]domain.Customer),
	}
}

func (r *CustomerRepository) Create(_ context.Context, customer domain.Customer) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTaxID[customer.TaxID]; exists {
		return domain.Customer{}, domain.ErrDuplicateCustomer
	}

	r.byTaxID[customer.TaxID] = customer
	r.ordered = append(r.ordered, customer.TaxID)
	return customer, nil
}

func (r *CustomerRepository) GetByTaxID(_ context.Context, taxID string) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.byTaxID[taxID]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (r *CustomerRepository) List(_ context.Context) ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Customer, 0, len(r.ordered))
	for _, taxID := range r.ordered {
		out = append(out, r.byTaxID[taxID])
	}
	return out, nil
}
