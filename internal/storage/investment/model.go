package investment

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type InvestmentCategory int16

const (
	CategoryEquities InvestmentCategory = iota
	CategoryBonds
	CategoryFunds
	CategoryRealEstate
	CategoryCashDeposits
	CategoryOther
)

type RiskLevel int16

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

type InvestmentStatus int16

const (
	StatusActive InvestmentStatus = iota
	StatusSold
	StatusClosed
)

// Investment represents an investment record. ClientID never changes; only
// CurrentValue is mutated, and only inside a fund transfer transaction.
type Investment struct {
	InvestmentID   uuid.UUID          `db:"investment_id"`
	ClientID       uuid.UUID          `db:"client_id"`
	InvestmentName string             `db:"investment_name"`
	Category       InvestmentCategory `db:"category"`
	RiskLevel      RiskLevel          `db:"risk_level"`
	Status         InvestmentStatus   `db:"status"`
	CurrentValue   decimal.Decimal    `db:"current_value"`
	DateInvested   time.Time          `db:"date_invested"`
}

// IInvestmentsTable defines the interface for non-transactional investment
// storage operations.
type IInvestmentsTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Investment, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*Investment, error)
}
