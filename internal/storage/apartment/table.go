package apartment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var apartmentColumns = []any{
	"apartment_id",
	"company_id",
	"address",
	"floor",
	"rooms",
	"rent_per_month",
	"lease_start_date",
	"lease_end_date",
	"is_occupied",
}

// Table provides access to the apartments table.
type Table struct {
	exec bob.Executor
}

// Ensure Table implements IApartmentsTable at compile time.
var _ IApartmentsTable = (*Table)(nil)

// NewTable creates a Table for the given database.
func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

// FindByID retrieves an apartment by primary key. Returns nil without an
// error when no row matches.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Apartment, error) {
	q := psql.Select(
		sm.Columns(apartmentColumns...),
		sm.From("apartments"),
		sm.Where(psql.Quote("apartment_id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Apartment]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns apartments matching the filter. Nil filter returns all.
func (t *Table) List(ctx context.Context, filter *ApartmentFilter) ([]*Apartment, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(apartmentColumns...),
		sm.From("apartments"),
	}
	if filter != nil {
		if filter.CompanyID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("company_id").EQ(psql.Arg(*filter.CompanyID))))
		}
		if filter.LeaseEndBefore != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("lease_end_date").LTE(psql.Arg(*filter.LeaseEndBefore))))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("lease_end_date").Asc(),
		sm.OrderBy("apartment_id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Apartment]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update persists the mutable apartment attributes and reports how many
// rows were affected.
func (t *Table) Update(ctx context.Context, ap *Apartment) (int64, error) {
	q := psql.Update(
		um.Table("apartments"),
		um.SetCol("is_occupied").ToArg(ap.IsOccupied),
		um.SetCol("rent_per_month").ToArg(ap.RentPerMonth),
		um.Where(psql.Quote("apartment_id").EQ(psql.Arg(ap.ApartmentID))),
	)

	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
