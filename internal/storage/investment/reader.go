package investment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var investmentColumns = []any{
	"investment_id",
	"client_id",
	"investment_name",
	"category",
	"risk_level",
	"status",
	"current_value",
	"date_invested",
}

type Reader struct {
	exec bob.Executor
}

var _ IInvestmentsTable = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// NewTable creates a Reader backed directly by the database pool.
func NewTable(db *sql.DB) *Reader {
	return NewReader(bob.NewDB(db))
}

// FindByID retrieves an investment by primary key. Returns nil without an
// error when no row matches.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Investment, error) {
	q := psql.Select(
		sm.Columns(investmentColumns...),
		sm.From("investments"),
		sm.Where(psql.Quote("investment_id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Investment]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByClient returns all investments owned by the given client.
func (r *Reader) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*Investment, error) {
	q := psql.Select(
		sm.Columns(investmentColumns...),
		sm.From("investments"),
		sm.Where(psql.Quote("client_id").EQ(psql.Arg(clientID))),
		sm.OrderBy("date_invested").Desc(),
		sm.OrderBy("investment_id").Asc(),
	)

	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[*Investment]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}
