package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/nordfast/estate-server/internal/storage"
)

var (
	// ErrInvalidAmount rejects non-positive transfer amounts before any
	// record is fetched.
	ErrInvalidAmount = errors.New("transfer amount must be positive")

	// ErrSameInvestment rejects transfers where source and destination are
	// the same row. Both updates would read the same pre-transaction value,
	// so the credit would overwrite the debit and create money.
	ErrSameInvestment = errors.New("source and destination investments must differ")

	// ErrInvestmentNotFound means the source or destination id is unknown.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrDifferentClients means the two investments have different owners.
	ErrDifferentClients = errors.New("investments must belong to the same client")

	// ErrInsufficientFunds means the source cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds in source investment")
)

// TransferFunds atomically moves value between two investments owned by the
// same client. It runs under the operator, so the whole Perform is one
// transaction: either both balances move or neither does.
type TransferFunds struct {
	SourceInvestmentID      uuid.UUID
	DestinationInvestmentID uuid.UUID
	Amount                  decimal.Decimal

	IAction
}

func (t *TransferFunds) Perform(ctx context.Context, writer *storage.Writer) error {
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if t.SourceInvestmentID == t.DestinationInvestmentID {
		return ErrSameInvestment
	}

	source, err := writer.Investments.FindByIDForUpdate(ctx, t.SourceInvestmentID)
	if err != nil {
		return err
	}
	if source == nil {
		return fmt.Errorf("source %s: %w", t.SourceInvestmentID, ErrInvestmentNotFound)
	}

	destination, err := writer.Investments.FindByIDForUpdate(ctx, t.DestinationInvestmentID)
	if err != nil {
		return err
	}
	if destination == nil {
		return fmt.Errorf("destination %s: %w", t.DestinationInvestmentID, ErrInvestmentNotFound)
	}

	if source.ClientID != destination.ClientID {
		return ErrDifferentClients
	}

	if source.CurrentValue.LessThan(t.Amount) {
		return ErrInsufficientFunds
	}

	err = writer.Investments.UpdateCurrentValue(ctx, source.InvestmentID, source.CurrentValue.Sub(t.Amount))
	if err != nil {
		return err
	}

	err = writer.Investments.UpdateCurrentValue(ctx, destination.InvestmentID, destination.CurrentValue.Add(t.Amount))
	if err != nil {
		return err
	}

	return nil
}
