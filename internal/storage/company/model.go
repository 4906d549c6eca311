package company

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Company represents a property-owning company.
type Company struct {
	CompanyID uuid.UUID `db:"company_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// ICompaniesTable defines the interface for company storage operations.
type ICompaniesTable interface {
	List(ctx context.Context) ([]*Company, error)
}
