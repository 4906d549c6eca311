package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/nordfast/estate-server/internal/storage/investment"
)

// Investment represents an investment in the service layer.
type Investment struct {
	InvestmentID   uuid.UUID
	ClientID       uuid.UUID
	InvestmentName string
	Category       int
	RiskLevel      int
	Status         int
	CurrentValue   decimal.Decimal
	DateInvested   time.Time
}

func investmentFromStorage(row *investment.Investment) Investment {
	return Investment{
		InvestmentID:   row.InvestmentID,
		ClientID:       row.ClientID,
		InvestmentName: row.InvestmentName,
		Category:       int(row.Category),
		RiskLevel:      int(row.RiskLevel),
		Status:         int(row.Status),
		CurrentValue:   row.CurrentValue,
		DateInvested:   row.DateInvested,
	}
}
