package apartment

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Apartment represents an apartment record. CompanyID and the lease dates
// are immutable once the record exists; only IsOccupied and RentPerMonth
// change, and only through the webhook update flow.
type Apartment struct {
	ApartmentID    uuid.UUID       `db:"apartment_id"`
	CompanyID      uuid.UUID       `db:"company_id"`
	Address        string          `db:"address"`
	Floor          int             `db:"floor"`
	Rooms          int             `db:"rooms"`
	RentPerMonth   decimal.Decimal `db:"rent_per_month"`
	LeaseStartDate time.Time       `db:"lease_start_date"`
	LeaseEndDate   time.Time       `db:"lease_end_date"`
	IsOccupied     bool            `db:"is_occupied"`
}

// ApartmentFilter specifies filters for listing apartments.
type ApartmentFilter struct {
	CompanyID *uuid.UUID
	// LeaseEndBefore keeps only apartments whose lease ends on or before
	// the given instant.
	LeaseEndBefore *time.Time
}

// IApartmentsTable defines the interface for apartment storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IApartmentsTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Apartment, error)
	List(ctx context.Context, filter *ApartmentFilter) ([]*Apartment, error)
	Update(ctx context.Context, ap *Apartment) (int64, error)
}
