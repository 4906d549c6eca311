package company

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var companyColumns = []any{
	"company_id",
	"name",
	"created_at",
}

// Table provides access to the companies table.
type Table struct {
	exec bob.Executor
}

var _ ICompaniesTable = (*Table)(nil)

// NewTable creates a Table for the given database.
func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

// List returns all companies.
func (t *Table) List(ctx context.Context) ([]*Company, error) {
	q := psql.Select(
		sm.Columns(companyColumns...),
		sm.From("companies"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("company_id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*Company]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}
