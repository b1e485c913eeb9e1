package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/retail-banking/internal/domain"
)

type RegisterCustomerRequest struct {
	Name          string `json:"name"`
	TaxID         string `json:"taxId"`
	BirthDate     string `json:"birthDate"`
	Emancipated   bool   `json:"emancipated,omitempty"`
	GuardianTaxID string `json:"guardianTaxId,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Email         string `json:"email,omitempty"`
}

func (r RegisterCustomerRequest) Validate() error {
	var errs []string

	if len(strings.TrimSpace(r.Name)) < 2 {
		errs = append(errs, "name must have at least 2 characters")
	}

	if domain.NormalizeTaxID(r.TaxID) == "" {
		errs = append(errs, "taxId is required")
	}

	birthDate, err := time.Parse("2006-01-02", strings.TrimSpace(r.BirthDate))
	if err != nil {
		errs = append(errs, "birthDate must be in YYYY-MM-DD format")
	} else if birthDate.After(time.Now()) {
		errs = append(errs, "birthDate cannot be in the future")
	}

	if email := strings.TrimSpace(r.Email); email != "" && !strings.Contains(email, "@") {
		errs = append(errs, "email is invalid")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r RegisterCustomerRequest) BirthDateValue() time.Time {
	birthDate, _ := time.Parse("2006-01-02", strings.TrimSpace(r.BirthDate))
	return birthDate
}

type CustomerResponse struct {
	Name          string `json:"name"`
	TaxID         string `json:"taxId"`
	BirthDate     string `json:"birthDate"`
	Age           int    `json:"age"`
	Emancipated   bool   `json:"emancipated"`
	GuardianTaxID string `json:"guardianTaxId,omitempty"`
	GuardianName  string `json:"guardianName,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Email         string `json:"email,omitempty"`
	CreatedAt     string `json:"createdAt"`
}
