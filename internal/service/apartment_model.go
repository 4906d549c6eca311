package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Apartment represents an apartment in the service layer.
type Apartment struct {
	ApartmentID    uuid.UUID
	CompanyID      uuid.UUID
	Address        string
	Floor          int
	Rooms          int
	RentPerMonth   decimal.Decimal
	LeaseStartDate time.Time
	LeaseEndDate   time.Time
	IsOccupied     bool
}
