package webhook

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/nordfast/estate-server/internal/storage/apartment"
)

// apartmentUpdater is the slice of the apartments table the processor needs.
type apartmentUpdater interface {
	FindByID(ctx context.Context, id uuid.UUID) (*apartment.Apartment, error)
	Update(ctx context.Context, ap *apartment.Apartment) (int64, error)
}

// Processor applies webhook attribute updates to apartments.
type Processor struct {
	logger     *logrus.Logger
	apartments apartmentUpdater
}

func NewProcessor(logger *logrus.Logger, apartments apartmentUpdater) *Processor {
	return &Processor{
		logger:     logger,
		apartments: apartments,
	}
}

// ApplyAttributeUpdate runs the full update flow for one payload: validate,
// fetch, mutate the present fields, persist. It always returns a structured
// result; storage failures are folded into it rather than surfaced as
// errors.
func (p *Processor) ApplyAttributeUpdate(ctx context.Context, payload *AttributeUpdate) UpdateResult {
	if payload == nil {
		p.logger.Error("webhook received null payload")
		return NewInvalidPayload("Webhook payload is null")
	}

	if errs := ValidatePayload(payload); len(errs) > 0 {
		return NewValidationFailed(payload.ApartmentID, payload.SourceID, errs)
	}

	ap, err := p.apartments.FindByID(ctx, payload.ApartmentID)
	if err != nil {
		return NewSystemError(payload.ApartmentID, payload.SourceID,
			fmt.Sprintf("Internal server error: %v", err), "INTERNAL_ERROR")
	}
	if ap == nil {
		p.logger.WithField("apartmentId", payload.ApartmentID).
			Warn("apartment not found for webhook update")
		return NewNotFound(payload.ApartmentID, payload.SourceID)
	}

	changed := p.applyAttributes(ap, payload)

	rows, err := p.apartments.Update(ctx, ap)
	if err != nil {
		return NewSystemError(payload.ApartmentID, payload.SourceID,
			fmt.Sprintf("Internal server error: %v", err), "INTERNAL_ERROR")
	}
	if rows == 0 {
		p.logger.WithField("apartmentId", payload.ApartmentID).
			Warn("no changes were saved for apartment")
		return NewSystemError(payload.ApartmentID, payload.SourceID,
			"No changes were saved to the database", "SAVE_FAILED")
	}

	p.logger.WithFields(logrus.Fields{
		"apartmentId":   payload.ApartmentID,
		"changedFields": changed,
	}).Info("apartment updated via webhook")

	return NewSuccess(payload.ApartmentID, payload.SourceID)
}

// applyAttributes overwrites the apartment fields present in the payload
// and returns how many actually changed in value. The count feeds logging
// only; the record is persisted either way.
func (p *Processor) applyAttributes(ap *apartment.Apartment, payload *AttributeUpdate) int {
	changed := 0

	if payload.RentPerMonth != nil {
		if !ap.RentPerMonth.Equal(*payload.RentPerMonth) {
			changed++
		}
		ap.RentPerMonth = *payload.RentPerMonth
	}

	if payload.IsOccupied != nil {
		if ap.IsOccupied != *payload.IsOccupied {
			changed++
		}
		ap.IsOccupied = *payload.IsOccupied
	}

	return changed
}
