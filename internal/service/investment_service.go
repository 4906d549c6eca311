package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/nordfast/estate-server/internal/operator/actions"
	"github.com/nordfast/estate-server/internal/storage"
)

// actionProcessor is the interface for running transactional actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// InvestmentService handles investment business logic.
type InvestmentService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(store *storage.Storage, op actionProcessor) *InvestmentService {
	return &InvestmentService{storage: store, operator: op}
}

// GetInvestment retrieves an investment by ID. Returns nil when absent.
func (s *InvestmentService) GetInvestment(ctx context.Context, id uuid.UUID) (*Investment, error) {
	if id == uuid.Nil {
		return nil, ErrEmptyID
	}

	row, err := s.storage.Investments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	converted := investmentFromStorage(row)
	return &converted, nil
}

// ListByClient returns all investments owned by the given client.
func (s *InvestmentService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]Investment, error) {
	if clientID == uuid.Nil {
		return nil, ErrEmptyID
	}

	rows, err := s.storage.Investments.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	converted := make([]Investment, len(rows))
	for i, row := range rows {
		converted[i] = investmentFromStorage(row)
	}
	return converted, nil
}

// TransferFunds atomically moves value from one investment to another. The
// amount is checked here so invalid requests never reach the operator queue.
func (s *InvestmentService) TransferFunds(ctx context.Context, sourceID, destinationID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return actions.ErrInvalidAmount
	}
	if sourceID == destinationID {
		return actions.ErrSameInvestment
	}

	action := &actions.TransferFunds{
		SourceInvestmentID:      sourceID,
		DestinationInvestmentID: destinationID,
		Amount:                  amount,
	}

	return s.operator.Process(ctx, action)
}
