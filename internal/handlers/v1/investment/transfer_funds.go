package investment

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/nordfast/estate-server/internal/logging"
	"github.com/nordfast/estate-server/internal/operator/actions"
)

// TransferFundsInput is the Huma input for transferring funds.
type TransferFundsInput struct {
	SourceInvestmentID      string `query:"sourceInvestmentId" required:"true" doc:"Source investment UUID"`
	DestinationInvestmentID string `query:"destinationInvestmentId" required:"true" doc:"Destination investment UUID"`
	Amount                  string `query:"amount" required:"true" doc:"Decimal amount to transfer, must be positive"`
}

// TransferFundsResponse is the response body for a completed transfer.
type TransferFundsResponse struct {
	Message string `json:"message" doc:"Outcome description"`
}

// TransferFundsOutput is the Huma output for transferring funds.
type TransferFundsOutput struct {
	Body TransferFundsResponse
}

// fundsTransferrer is the interface for moving value between investments.
type fundsTransferrer interface {
	TransferFunds(ctx context.Context, sourceID, destinationID uuid.UUID, amount decimal.Decimal) error
}

// TransferFundsHandler handles POST /v1/investment/transfer.
type TransferFundsHandler struct {
	InvestmentService fundsTransferrer
}

// NewTransferFundsHandler creates a new TransferFundsHandler.
func NewTransferFundsHandler(svc fundsTransferrer) *TransferFundsHandler {
	return &TransferFundsHandler{InvestmentService: svc}
}

// Register registers the transfer endpoint with the Huma API.
func (h *TransferFundsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer-funds",
		Method:      http.MethodPost,
		Path:        "/v1/investment/transfer",
		Summary:     "Transfer funds",
		Description: "Atomically moves value from one investment to another owned by the same client.",
		Tags:        []string{"Investments"},
	}, h.handle)
}

func (h *TransferFundsHandler) handle(ctx context.Context, input *TransferFundsInput) (*TransferFundsOutput, error) {
	sourceID, err := uuid.FromString(input.SourceInvestmentID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid sourceInvestmentId", err)
	}
	destinationID, err := uuid.FromString(input.DestinationInvestmentID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid destinationInvestmentId", err)
	}
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("sourceInvestmentId", sourceID.String())
		logData.AddData("destinationInvestmentId", destinationID.String())
	}

	err = h.InvestmentService.TransferFunds(ctx, sourceID, destinationID, amount)
	switch {
	case err == nil:
	case errors.Is(err, actions.ErrInvestmentNotFound):
		return nil, huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, actions.ErrInvalidAmount),
		errors.Is(err, actions.ErrSameInvestment),
		errors.Is(err, actions.ErrDifferentClients),
		errors.Is(err, actions.ErrInsufficientFunds):
		return nil, huma.NewError(http.StatusBadRequest, err.Error())
	default:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to transfer funds", err)
	}

	return &TransferFundsOutput{
		Body: TransferFundsResponse{Message: "Funds transferred successfully"},
	}, nil
}
