package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/nordfast/estate-server/internal/storage"
	"github.com/nordfast/estate-server/internal/storage/apartment"
)

var (
	// ErrEmptyID rejects zero UUID arguments before touching storage.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrInvalidWindow rejects non-positive lease expiry windows.
	ErrInvalidWindow = errors.New("expiry window must be positive")
)

// ApartmentService handles apartment read operations.
type ApartmentService struct {
	storage *storage.Storage
}

// NewApartmentService creates a new ApartmentService.
func NewApartmentService(store *storage.Storage) *ApartmentService {
	return &ApartmentService{storage: store}
}

// GetApartment retrieves an apartment by ID. Returns nil when absent.
func (s *ApartmentService) GetApartment(ctx context.Context, id uuid.UUID) (*Apartment, error) {
	if id == uuid.Nil {
		return nil, ErrEmptyID
	}

	row, err := s.storage.Apartments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	converted := apartmentFromStorage(row)
	return &converted, nil
}

// ListByCompany returns all apartments owned by a company.
func (s *ApartmentService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Apartment, error) {
	if companyID == uuid.Nil {
		return nil, ErrEmptyID
	}

	return s.listApartments(ctx, &apartment.ApartmentFilter{CompanyID: &companyID})
}

// ExpiringLeases returns a company's apartments whose lease ends within the
// given window from now. The boundary is inclusive.
func (s *ApartmentService) ExpiringLeases(ctx context.Context, companyID uuid.UUID, within time.Duration) ([]Apartment, error) {
	if companyID == uuid.Nil {
		return nil, ErrEmptyID
	}
	if within <= 0 {
		return nil, ErrInvalidWindow
	}

	cutoff := time.Now().UTC().Add(within)
	return s.listApartments(ctx, &apartment.ApartmentFilter{
		CompanyID:      &companyID,
		LeaseEndBefore: &cutoff,
	})
}

func (s *ApartmentService) listApartments(ctx context.Context, filter *apartment.ApartmentFilter) ([]Apartment, error) {
	rows, err := s.storage.Apartments.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	converted := make([]Apartment, len(rows))
	for i, row := range rows {
		converted[i] = apartmentFromStorage(row)
	}
	return converted, nil
}

func apartmentFromStorage(row *apartment.Apartment) Apartment {
	return Apartment{
		ApartmentID:    row.ApartmentID,
		CompanyID:      row.CompanyID,
		Address:        row.Address,
		Floor:          row.Floor,
		Rooms:          row.Rooms,
		RentPerMonth:   row.RentPerMonth,
		LeaseStartDate: row.LeaseStartDate,
		LeaseEndDate:   row.LeaseEndDate,
		IsOccupied:     row.IsOccupied,
	}
}
