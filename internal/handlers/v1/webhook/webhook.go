package webhook

import (
	"time"

	"github.com/nordfast/estate-server/internal/webhook"
)

// UpdateResultResponse is the API response model for a webhook delivery.
// It is returned on every outcome; httpStatusCode always mirrors the
// response status.
type UpdateResultResponse struct {
	Success          bool                      `json:"success" doc:"Whether the update was applied"`
	Message          string                    `json:"message" doc:"Human-readable outcome description"`
	ApartmentID      string                    `json:"apartmentId" doc:"Target apartment UUID"`
	SourceID         string                    `json:"sourceId,omitempty" doc:"Caller-supplied source system identifier"`
	ProcessedAt      string                    `json:"processedAt" doc:"RFC3339 processing timestamp"`
	HTTPStatusCode   int                       `json:"httpStatusCode" doc:"Mirrors the HTTP response status"`
	ValidationErrors []webhook.ValidationError `json:"validationErrors,omitempty" doc:"Field-level validation failures"`
	ErrorCode        string                    `json:"errorCode,omitempty" doc:"Machine-readable error code"`
}

func toUpdateResultResponse(result webhook.UpdateResult) UpdateResultResponse {
	return UpdateResultResponse{
		Success:          result.Success(),
		Message:          result.Message,
		ApartmentID:      result.ApartmentID.String(),
		SourceID:         result.SourceID,
		ProcessedAt:      result.ProcessedAt.Format(time.RFC3339),
		HTTPStatusCode:   result.HTTPStatus(),
		ValidationErrors: result.Errors,
		ErrorCode:        result.ErrorCode,
	}
}
