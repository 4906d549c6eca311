package apartment

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/nordfast/estate-server/internal/logging"
	"github.com/nordfast/estate-server/internal/service"
)

// ListCompanyApartmentsInput is the Huma input for listing a company's apartments.
type ListCompanyApartmentsInput struct {
	CompanyID          string `path:"companyId" doc:"Company UUID"`
	ExpiringWithinDays int    `query:"expiringWithinDays" minimum:"0" doc:"When positive, only apartments whose lease ends within this many days"`
}

// ListCompanyApartmentsResponseBody is the response body for listing apartments.
type ListCompanyApartmentsResponseBody struct {
	Apartments []Apartment `json:"apartments" doc:"The company's apartments"`
}

// ListCompanyApartmentsOutput is the Huma output for listing apartments.
type ListCompanyApartmentsOutput struct {
	Body ListCompanyApartmentsResponseBody
}

// apartmentLister is the interface for listing a company's apartments.
type apartmentLister interface {
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]service.Apartment, error)
	ExpiringLeases(ctx context.Context, companyID uuid.UUID, within time.Duration) ([]service.Apartment, error)
}

// ListCompanyApartmentsHandler handles GET /v1/company/{companyId}/apartments.
type ListCompanyApartmentsHandler struct {
	ApartmentService apartmentLister
}

// NewListCompanyApartmentsHandler creates a new ListCompanyApartmentsHandler.
func NewListCompanyApartmentsHandler(svc apartmentLister) *ListCompanyApartmentsHandler {
	return &ListCompanyApartmentsHandler{ApartmentService: svc}
}

// Register registers the list endpoint with the Huma API.
func (h *ListCompanyApartmentsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-company-apartments",
		Method:      http.MethodGet,
		Path:        "/v1/company/{companyId}/apartments",
		Summary:     "List company apartments",
		Description: "Returns a company's apartments, optionally only those with leases expiring soon.",
		Tags:        []string{"Apartments"},
	}, h.handle)
}

func (h *ListCompanyApartmentsHandler) handle(ctx context.Context, input *ListCompanyApartmentsInput) (*ListCompanyApartmentsOutput, error) {
	companyID, err := uuid.FromString(input.CompanyID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid companyId", err)
	}

	var apartments []service.Apartment
	if input.ExpiringWithinDays > 0 {
		window := time.Duration(input.ExpiringWithinDays) * 24 * time.Hour
		apartments, err = h.ApartmentService.ExpiringLeases(ctx, companyID, window)
	} else {
		apartments, err = h.ApartmentService.ListByCompany(ctx, companyID)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list apartments", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("apartmentCount", len(apartments))
	}

	resp := ListCompanyApartmentsResponseBody{
		Apartments: make([]Apartment, len(apartments)),
	}
	for i, ap := range apartments {
		resp.Apartments[i] = toAPIApartment(ap)
	}

	return &ListCompanyApartmentsOutput{Body: resp}, nil
}
