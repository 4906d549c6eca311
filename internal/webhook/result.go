package webhook

import (
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
)

// ResultKind tags the outcome of an attribute update attempt.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultInvalidPayload
	ResultValidationFailed
	ResultUnauthorized
	ResultNotFound
	ResultSystemError
)

// UpdateResult is the structured outcome of one webhook delivery. It fully
// determines the HTTP response; nothing about the outcome escapes as an
// error.
type UpdateResult struct {
	Kind        ResultKind
	Message     string
	ApartmentID uuid.UUID
	SourceID    string
	ProcessedAt time.Time
	Errors      []ValidationError
	ErrorCode   string
}

// Success reports whether the update was applied.
func (r UpdateResult) Success() bool {
	return r.Kind == ResultSuccess
}

// HTTPStatus maps the result kind to the response status code.
func (r UpdateResult) HTTPStatus() int {
	switch r.Kind {
	case ResultSuccess:
		return http.StatusOK
	case ResultInvalidPayload, ResultValidationFailed:
		return http.StatusBadRequest
	case ResultUnauthorized:
		return http.StatusUnauthorized
	case ResultNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func NewSuccess(apartmentID uuid.UUID, sourceID string) UpdateResult {
	return UpdateResult{
		Kind:        ResultSuccess,
		Message:     "Apartment attributes updated successfully",
		ApartmentID: apartmentID,
		SourceID:    sourceID,
		ProcessedAt: time.Now().UTC(),
	}
}

func NewInvalidPayload(message string) UpdateResult {
	return UpdateResult{
		Kind:        ResultInvalidPayload,
		Message:     message,
		ProcessedAt: time.Now().UTC(),
		ErrorCode:   "NULL_PAYLOAD",
	}
}

func NewValidationFailed(apartmentID uuid.UUID, sourceID string, errs []ValidationError) UpdateResult {
	return UpdateResult{
		Kind:        ResultValidationFailed,
		Message:     "Validation errors occurred while processing webhook",
		ApartmentID: apartmentID,
		SourceID:    sourceID,
		ProcessedAt: time.Now().UTC(),
		Errors:      errs,
		ErrorCode:   "VALIDATION_FAILED",
	}
}

func NewUnauthorized() UpdateResult {
	return UpdateResult{
		Kind:        ResultUnauthorized,
		Message:     "Webhook signature validation failed",
		ProcessedAt: time.Now().UTC(),
		ErrorCode:   "UNAUTHORIZED",
	}
}

func NewNotFound(apartmentID uuid.UUID, sourceID string) UpdateResult {
	return UpdateResult{
		Kind:        ResultNotFound,
		Message:     "Apartment " + apartmentID.String() + " not found",
		ApartmentID: apartmentID,
		SourceID:    sourceID,
		ProcessedAt: time.Now().UTC(),
		ErrorCode:   "APARTMENT_NOT_FOUND",
	}
}

func NewSystemError(apartmentID uuid.UUID, sourceID, message, errorCode string) UpdateResult {
	return UpdateResult{
		Kind:        ResultSystemError,
		Message:     message,
		ApartmentID: apartmentID,
		SourceID:    sourceID,
		ProcessedAt: time.Now().UTC(),
		ErrorCode:   errorCode,
	}
}
