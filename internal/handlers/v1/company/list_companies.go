package company

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nordfast/estate-server/internal/logging"
	"github.com/nordfast/estate-server/internal/service"
)

// Company is the API response model for a company.
type Company struct {
	ID        string `json:"id" doc:"Company UUID"`
	Name      string `json:"name" doc:"Company name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation timestamp"`
}

// ListCompaniesResponseBody is the response body for listing companies.
type ListCompaniesResponseBody struct {
	Companies []Company `json:"companies" doc:"All registered companies"`
}

// ListCompaniesOutput is the Huma output for listing companies.
type ListCompaniesOutput struct {
	Body ListCompaniesResponseBody
}

// companyLister is the interface for listing companies.
type companyLister interface {
	ListCompanies(ctx context.Context) ([]service.Company, error)
}

// ListCompaniesHandler handles GET /v1/companies.
type ListCompaniesHandler struct {
	CompanyService companyLister
}

// NewListCompaniesHandler creates a new ListCompaniesHandler.
func NewListCompaniesHandler(svc companyLister) *ListCompaniesHandler {
	return &ListCompaniesHandler{CompanyService: svc}
}

// Register registers the list endpoint with the Huma API.
func (h *ListCompaniesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-companies",
		Method:      http.MethodGet,
		Path:        "/v1/companies",
		Summary:     "List companies",
		Description: "Returns all property-owning companies.",
		Tags:        []string{"Companies"},
	}, h.handle)
}

func (h *ListCompaniesHandler) handle(ctx context.Context, _ *struct{}) (*ListCompaniesOutput, error) {
	companies, err := h.CompanyService.ListCompanies(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list companies", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("companyCount", len(companies))
	}

	resp := ListCompaniesResponseBody{
		Companies: make([]Company, len(companies)),
	}
	for i, c := range companies {
		resp.Companies[i] = Company{
			ID:        c.CompanyID.String(),
			Name:      c.Name,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListCompaniesOutput{Body: resp}, nil
}
