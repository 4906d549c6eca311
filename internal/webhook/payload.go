package webhook

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// AttributeUpdate is the partial-update payload delivered by an external
// system. Every optional field that is present signals an intended mutation;
// absent fields leave the apartment untouched.
type AttributeUpdate struct {
	ApartmentID  uuid.UUID        `json:"apartmentId"`
	SourceID     string           `json:"sourceId,omitempty"`
	IsOccupied   *bool            `json:"isOccupied,omitempty"`
	RentPerMonth *decimal.Decimal `json:"rentPerMonth,omitempty"`
}
