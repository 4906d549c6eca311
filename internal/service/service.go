package service

import (
	"github.com/nordfast/estate-server/internal/operator"
	"github.com/nordfast/estate-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Apartment  *ApartmentService
	Company    *CompanyService
	Investment *InvestmentService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.Storage, op *operator.OperatorDelegator) *Service {
	return &Service{
		Apartment:  NewApartmentService(store),
		Company:    NewCompanyService(store),
		Investment: NewInvestmentService(store, op),
	}
}
