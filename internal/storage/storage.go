package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/nordfast/estate-server/internal/config"
	"github.com/nordfast/estate-server/internal/storage/apartment"
	"github.com/nordfast/estate-server/internal/storage/company"
	"github.com/nordfast/estate-server/internal/storage/investment"
)

type Storage struct {
	DB          *sql.DB
	Apartments  apartment.IApartmentsTable
	Companies   company.ICompaniesTable
	Investments investment.IInvestmentsTable

	bobDB bob.DB
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:          db,
		Apartments:  apartment.NewTable(db),
		Companies:   company.NewTable(db),
		Investments: investment.NewTable(db),
		bobDB:       bob.NewDB(db),
	}
}

// Write begins a transaction and returns a Writer scoped to it. The caller
// must finish with exactly one Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
