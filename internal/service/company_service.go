package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/nordfast/estate-server/internal/storage"
	"github.com/nordfast/estate-server/internal/storage/company"
)

// Company represents a company in the service layer.
type Company struct {
	CompanyID uuid.UUID
	Name      string
	CreatedAt time.Time
}

// CompanyService handles company read operations.
type CompanyService struct {
	storage *storage.Storage
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(store *storage.Storage) *CompanyService {
	return &CompanyService{storage: store}
}

// ListCompanies returns all companies.
func (s *CompanyService) ListCompanies(ctx context.Context) ([]Company, error) {
	rows, err := s.storage.Companies.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	converted := make([]Company, len(rows))
	for i, row := range rows {
		converted[i] = companyFromStorage(row)
	}
	return converted, nil
}

func companyFromStorage(row *company.Company) Company {
	return Company{
		CompanyID: row.CompanyID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
