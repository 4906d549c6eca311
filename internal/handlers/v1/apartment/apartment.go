package apartment

import (
	"time"

	"github.com/nordfast/estate-server/internal/service"
)

// Apartment is the API response model for an apartment.
type Apartment struct {
	ID             string `json:"id" doc:"Apartment UUID"`
	CompanyID      string `json:"companyId" doc:"Owning company UUID"`
	Address        string `json:"address" doc:"Street address"`
	Floor          int    `json:"floor" doc:"Floor number"`
	Rooms          int    `json:"rooms" doc:"Number of rooms"`
	RentPerMonth   string `json:"rentPerMonth" doc:"Decimal monthly rent"`
	LeaseStartDate string `json:"leaseStartDate" doc:"RFC3339 lease start"`
	LeaseEndDate   string `json:"leaseEndDate" doc:"RFC3339 lease end"`
	IsOccupied     bool   `json:"isOccupied" doc:"Whether the apartment is occupied"`
}

func toAPIApartment(ap service.Apartment) Apartment {
	return Apartment{
		ID:             ap.ApartmentID.String(),
		CompanyID:      ap.CompanyID.String(),
		Address:        ap.Address,
		Floor:          ap.Floor,
		Rooms:          ap.Rooms,
		RentPerMonth:   ap.RentPerMonth.String(),
		LeaseStartDate: ap.LeaseStartDate.Format(time.RFC3339),
		LeaseEndDate:   ap.LeaseEndDate.Format(time.RFC3339),
		IsOccupied:     ap.IsOccupied,
	}
}
