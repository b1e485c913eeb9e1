package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/retail-banking/internal/domain"
)

func TestCustomerRepositoryRejectsDuplicateTaxID(t *testing.T) {
	repo := NewCustomerRepository()
	ctx := context.Background()

	customer := domain.Customer{Name: "Ana Souza", TaxID: "12345678901", BirthDate: time.Date(1996, 3, 15, 0, 0, 0, 0, time.UTC)}

	if _, err := repo.Create(ctx, customer); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, customer); !errors.Is(err, domain.ErrDuplicateCustomer) {
		t.Fatalf("expected duplicate customer, got %v", err)
	}
}

func TestCustomerRepositoryListsInInsertionOrder(t *testing.T) {
	repo := NewCustomerRepository()
	ctx := context.Background()

	for _, taxID := range []string{"333", "111", "222"} {
		if _, err := repo.Create(ctx, domain.Customer{Name: "C" + taxID, TaxID: taxID}); err != nil {
			t.Fatalf("create %s: %v", taxID, err)
		}
	}

	customers, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(customers) != 3 {
		t.Fatalf("expected 3 customers, got %d", len(customers))
	}
	for i, want := range []string{"333", "111", "222"} {
		if customers[i].TaxID != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, customers[i].TaxID)
		}
	}

	if _, err := repo.GetByTaxID(ctx, "999"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected customer not found, got %v", err)
	}
}
