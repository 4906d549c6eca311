package webhook

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ValidationError describes one violated payload rule.
type ValidationError struct {
	Field          string `json:"field"`
	Message        string `json:"message"`
	InvalidValue   any    `json:"invalidValue,omitempty"`
	ValidationRule string `json:"validationRule,omitempty"`
	Context        string `json:"context,omitempty"`
}

// maxRentPerMonth is the upper bound accepted for rent updates.
var maxRentPerMonth = decimal.NewFromInt(1_000_000)

// rule is a pure check over the payload. It returns nil when the rule
// passes, or the single error it produces when it fails.
type rule func(*AttributeUpdate) *ValidationError

// payloadRules is the ordered rule list applied to every payload. All rules
// run; failures accumulate rather than short-circuiting.
var payloadRules = []rule{
	func(p *AttributeUpdate) *ValidationError {
		if p.ApartmentID != uuid.Nil {
			return nil
		}
		return &ValidationError{
			Field:          "apartmentId",
			Message:        "Apartment ID is required and cannot be empty",
			InvalidValue:   p.ApartmentID,
			ValidationRule: "Required",
			Context:        "Apartment ID must be a valid UUID",
		}
	},
	func(p *AttributeUpdate) *ValidationError {
		if p.RentPerMonth == nil || !p.RentPerMonth.IsNegative() {
			return nil
		}
		return &ValidationError{
			Field:          "rentPerMonth",
			Message:        "Rent per month cannot be negative",
			InvalidValue:   p.RentPerMonth.String(),
			ValidationRule: "MinValue",
			Context:        "Rent must be a positive number",
		}
	},
	func(p *AttributeUpdate) *ValidationError {
		if p.RentPerMonth == nil || p.RentPerMonth.LessThanOrEqual(maxRentPerMonth) {
			return nil
		}
		return &ValidationError{
			Field:          "rentPerMonth",
			Message:        "Rent per month exceeds maximum allowed value of 1,000,000",
			InvalidValue:   p.RentPerMonth.String(),
			ValidationRule: "MaxValue",
			Context:        "Rent must be reasonable for the market",
		}
	},
}

// ValidatePayload applies every payload rule and collects all failures.
// An empty slice means the payload is valid.
func ValidatePayload(p *AttributeUpdate) []ValidationError {
	var errs []ValidationError
	for _, r := range payloadRules {
		if err := r(p); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}
