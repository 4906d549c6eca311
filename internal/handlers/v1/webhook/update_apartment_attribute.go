package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nordfast/estate-server/internal/logging"
	"github.com/nordfast/estate-server/internal/webhook"
)

// UpdateApartmentAttributeInput is the Huma input for the webhook endpoint.
// The body is taken raw so the signature can be computed over the exact
// bytes the caller signed.
type UpdateApartmentAttributeInput struct {
	Signature string `header:"X-Signature" doc:"Hex HMAC-SHA256 of the raw request body"`
	RawBody   []byte
}

// UpdateApartmentAttributeOutput is the Huma output for the webhook endpoint.
type UpdateApartmentAttributeOutput struct {
	Status int
	Body   UpdateResultResponse
}

// attributeUpdater is the interface for applying webhook attribute updates.
type attributeUpdater interface {
	ApplyAttributeUpdate(ctx context.Context, payload *webhook.AttributeUpdate) webhook.UpdateResult
}

// UpdateApartmentAttributeHandler handles POST /v1/webhook/apartment-attribute.
type UpdateApartmentAttributeHandler struct {
	Processor attributeUpdater
	Verifier  *webhook.SignatureVerifier
}

// NewUpdateApartmentAttributeHandler creates a new UpdateApartmentAttributeHandler.
func NewUpdateApartmentAttributeHandler(processor attributeUpdater, verifier *webhook.SignatureVerifier) *UpdateApartmentAttributeHandler {
	return &UpdateApartmentAttributeHandler{Processor: processor, Verifier: verifier}
}

// Register registers the webhook endpoint with the Huma API.
func (h *UpdateApartmentAttributeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-apartment-attribute",
		Method:      http.MethodPost,
		Path:        "/v1/webhook/apartment-attribute",
		Summary:     "Update apartment attributes",
		Description: "Webhook endpoint for external systems to push partial apartment attribute updates.",
		Tags:        []string{"Webhooks"},
	}, h.handle)
}

func (h *UpdateApartmentAttributeHandler) handle(ctx context.Context, input *UpdateApartmentAttributeInput) (*UpdateApartmentAttributeOutput, error) {
	logData := logging.GetLogData(ctx)

	// Signature check comes first; payload bytes are not even parsed for
	// an unauthenticated delivery.
	if h.Verifier.Enabled() && !h.Verifier.Verify(input.RawBody, input.Signature) {
		result := webhook.NewUnauthorized()
		return &UpdateApartmentAttributeOutput{
			Status: result.HTTPStatus(),
			Body:   toUpdateResultResponse(result),
		}, nil
	}

	payload, ok := decodePayload(input.RawBody)
	var result webhook.UpdateResult
	if !ok {
		result = webhook.NewInvalidPayload("Webhook payload is null or not valid JSON")
	} else {
		result = h.Processor.ApplyAttributeUpdate(ctx, payload)
	}

	if logData != nil {
		logData.AddData("apartmentId", result.ApartmentID.String())
		logData.AddData("resultCode", result.HTTPStatus())
	}

	return &UpdateApartmentAttributeOutput{
		Status: result.HTTPStatus(),
		Body:   toUpdateResultResponse(result),
	}, nil
}

// decodePayload parses the raw body. A missing body, a JSON null, or
// undecodable JSON all count as a null payload.
func decodePayload(raw []byte) (*webhook.AttributeUpdate, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, false
	}

	var payload webhook.AttributeUpdate
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, false
	}
	return &payload, true
}
