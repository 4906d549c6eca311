package apartment

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/nordfast/estate-server/internal/service"
)

// GetApartmentInput is the Huma input for fetching one apartment.
type GetApartmentInput struct {
	ApartmentID string `path:"apartmentId" doc:"Apartment UUID"`
}

// GetApartmentOutput is the Huma output for fetching one apartment.
type GetApartmentOutput struct {
	Body Apartment
}

// apartmentGetter is the interface for fetching a single apartment.
type apartmentGetter interface {
	GetApartment(ctx context.Context, id uuid.UUID) (*service.Apartment, error)
}

// GetApartmentHandler handles GET /v1/apartment/{apartmentId}.
type GetApartmentHandler struct {
	ApartmentService apartmentGetter
}

// NewGetApartmentHandler creates a new GetApartmentHandler.
func NewGetApartmentHandler(svc apartmentGetter) *GetApartmentHandler {
	return &GetApartmentHandler{ApartmentService: svc}
}

// Register registers the get apartment endpoint with the Huma API.
func (h *GetApartmentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-apartment",
		Method:      http.MethodGet,
		Path:        "/v1/apartment/{apartmentId}",
		Summary:     "Get apartment",
		Description: "Returns a single apartment by ID.",
		Tags:        []string{"Apartments"},
	}, h.handle)
}

func (h *GetApartmentHandler) handle(ctx context.Context, input *GetApartmentInput) (*GetApartmentOutput, error) {
	apartmentID, err := uuid.FromString(input.ApartmentID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid apartmentId", err)
	}

	ap, err := h.ApartmentService.GetApartment(ctx, apartmentID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch apartment", err)
	}
	if ap == nil {
		return nil, huma.NewError(http.StatusNotFound, "apartment not found")
	}

	return &GetApartmentOutput{Body: toAPIApartment(*ap)}, nil
}
