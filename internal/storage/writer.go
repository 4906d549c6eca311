package storage

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"

	"github.com/nordfast/estate-server/internal/storage/investment"
)

// TxHandle is the slice of bob.Tx the Writer needs to finish a transaction.
type TxHandle interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// InvestmentWriter is the transactional view of the investments table used
// by actions.
type InvestmentWriter interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*investment.Investment, error)
	UpdateCurrentValue(ctx context.Context, id uuid.UUID, value decimal.Decimal) error
}

type Writer struct {
	Tx          TxHandle
	Investments InvestmentWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:          tx,
		Investments: investment.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.Tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.Tx.Rollback(context.Background())
}
