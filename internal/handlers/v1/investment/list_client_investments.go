package investment

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/nordfast/estate-server/internal/logging"
	"github.com/nordfast/estate-server/internal/service"
)

// ListClientInvestmentsInput is the Huma input for listing a client's investments.
type ListClientInvestmentsInput struct {
	ClientID string `path:"clientId" doc:"Client UUID"`
}

// ListClientInvestmentsResponseBody is the response body for listing investments.
type ListClientInvestmentsResponseBody struct {
	Investments []Investment `json:"investments" doc:"The client's investments"`
}

// ListClientInvestmentsOutput is the Huma output for listing investments.
type ListClientInvestmentsOutput struct {
	Body ListClientInvestmentsResponseBody
}

// investmentLister is the interface for listing a client's investments.
type investmentLister interface {
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]service.Investment, error)
}

// ListClientInvestmentsHandler handles GET /v1/client/{clientId}/investments.
type ListClientInvestmentsHandler struct {
	InvestmentService investmentLister
}

// NewListClientInvestmentsHandler creates a new ListClientInvestmentsHandler.
func NewListClientInvestmentsHandler(svc investmentLister) *ListClientInvestmentsHandler {
	return &ListClientInvestmentsHandler{InvestmentService: svc}
}

// Register registers the list endpoint with the Huma API.
func (h *ListClientInvestmentsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-client-investments",
		Method:      http.MethodGet,
		Path:        "/v1/client/{clientId}/investments",
		Summary:     "List client investments",
		Description: "Returns all investments owned by a client.",
		Tags:        []string{"Investments"},
	}, h.handle)
}

func (h *ListClientInvestmentsHandler) handle(ctx context.Context, input *ListClientInvestmentsInput) (*ListClientInvestmentsOutput, error) {
	clientID, err := uuid.FromString(input.ClientID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid clientId", err)
	}

	investments, err := h.InvestmentService.ListByClient(ctx, clientID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list investments", err)
	}

	if len(investments) == 0 {
		return nil, huma.NewError(http.StatusNotFound, "no investments found for client")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("investmentCount", len(investments))
	}

	resp := ListClientInvestmentsResponseBody{
		Investments: make([]Investment, len(investments)),
	}
	for i, inv := range investments {
		resp.Investments[i] = Investment{
			ID:             inv.InvestmentID.String(),
			ClientID:       inv.ClientID.String(),
			InvestmentName: inv.InvestmentName,
			Category:       inv.Category,
			RiskLevel:      inv.RiskLevel,
			Status:         inv.Status,
			CurrentValue:   inv.CurrentValue.String(),
			DateInvested:   inv.DateInvested.Format(time.RFC3339),
		}
	}

	return &ListClientInvestmentsOutput{Body: resp}, nil
}
