package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking/internal/commons"
	"github.com/api-sage/retail-banking/internal/domain"
	"github.com/api-sage/retail-banking/internal/logger"
)

type CustomerService struct {
	customerRepo repo_interfaces.CustomerRepository
}

func NewCustomerService(customerRepo repo_interfaces.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (commons.Response[models.CustomerResponse], error) {
	logger.Info("customer service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("customer service register validation failed", err, nil)
		return commons.ErrorResponse[models.CustomerResponse]("validation failed", err.Error()), err
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		Name:        strings.TrimSpace(req.Name),
		TaxID:       domain.NormalizeTaxID(req.TaxID),
		BirthDate:   req.BirthDateValue(),
		Emancipated: req.Emancipated,
		CreatedAt:   now,
	}

	if guardian := domain.NormalizeTaxID(req.GuardianTaxID); guardian != "" {
		if !customer.IsMinor(now) {
			err := errors.New("guardianTaxId is only accepted for minors")
			return commons.ErrorResponse[models.CustomerResponse]("validation failed", err.Error()), err
		}
		customer.GuardianTaxID = &guardian
	}
	if phone := strings.TrimSpace(req.PhoneNumber); phone != "" {
		customer.PhoneNumber = &phone
	}
	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" {
		customer.Email = &email
	}

	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		logger.Error("customer service register repository failed", err, nil)
		if errors.Is(err, domain.ErrDuplicateCustomer) {
			return commons.FailureResponse[models.CustomerResponse]("Customer already registered", err), err
		}
		return commons.ErrorResponse[models.CustomerResponse]("failed to register customer", "Unable to register customer right now"), err
	}

	response := s.mapCustomer(ctx, created)
	logger.Info("customer service register success", logger.Fields{
		"name": response.Name,
		"age":  response.Age,
	})

	return commons.SuccessResponse("customer registered successfully", response), nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, taxID string) (commons.Response[models.CustomerResponse], error) {
	normalized := domain.NormalizeTaxID(taxID)
	if normalized == "" {
		err := errors.New("taxId is required")
		return commons.ErrorResponse[models.CustomerResponse]("validation failed", err.Error()), err
	}

	customer, err := s.customerRepo.GetByTaxID(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return commons.FailureResponse[models.CustomerResponse]("Customer not found", err), err
		}
		return commons.ErrorResponse[models.CustomerResponse]("failed to fetch customer", "Unable to fetch customer right now"), err
	}

	return commons.SuccessResponse("customer fetched successfully", s.mapCustomer(ctx, customer)), nil
}

// mapCustomer resolves the guardian weak reference through the registry;
// a dangling guardian tax id is rendered without a name.
func (s *CustomerService) mapCustomer(ctx context.Context, customer domain.Customer) models.CustomerResponse {
	response := models.CustomerResponse{
		Name:        customer.Name,
		TaxID:       customer.TaxID,
		BirthDate:   customer.BirthDate.Format("2006-01-02"),
		Age:         customer.Age(time.Now().UTC()),
		Emancipated: customer.Emancipated,
		CreatedAt:   customer.CreatedAt.Format(time.RFC3339),
	}

	if customer.PhoneNumber != nil {
		response.PhoneNumber = *customer.PhoneNumber
	}
	if customer.Email != nil {
		response.Email = *customer.Email
	}
	if customer.GuardianTaxID != nil {
		response.GuardianTaxID = *customer.GuardianTaxID
		if guardian, err := s.customerRepo.GetByTaxID(ctx, *customer.GuardianTaxID); err == nil {
			response.GuardianName = guardian.Name
		}
	}

	return response
}
