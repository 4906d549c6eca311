package investment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks the investment row for the remainder of the
// transaction. Returns nil without an error when no row matches.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Investment, error) {
	q := psql.Select(
		sm.Columns(investmentColumns...),
		sm.From("investments"),
		sm.Where(psql.Quote("investment_id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Investment]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateCurrentValue sets a new current value for the given investment.
func (w *Writer) UpdateCurrentValue(ctx context.Context, id uuid.UUID, value decimal.Decimal) error {
	q := psql.Update(
		um.Table("investments"),
		um.SetCol("current_value").ToArg(value),
		um.Where(psql.Quote("investment_id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
