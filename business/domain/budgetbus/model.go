package budgetbus

import (
	"github.com/google/uuid"
	"github.com/granazap/painel/business/types/alertlevel"
	"github.com/granazap/painel/business/types/money"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending limit for a category.
type Budget struct {
	ID             uuid.UUID
	CategoryID     uuid.UUID
	CategoryName   string
	MonthlyLimit   money.Money
	CurrentSpent   money.Money
	MonthKey       string
	AlertThreshold float64
	Alert          alertlevel.Level
}

// NewBudget contains information needed to create a new budget.
type NewBudget struct {
	CategoryHint   string
	MonthlyLimit   money.Money
	MonthKey       string
	AlertThreshold float64
}

// Classify determines the alert level from the spent amount, the limit, and
// the warning threshold.
func Classify(spent money.Money, limit money.Money, threshold float64) alertlevel.Level {
	if limit.IsZero() {
		return alertlevel.OK
	}

	if spent.GreaterThanOrEqual(limit) {
		return alertlevel.Exceeded
	}

	warnAt := limit.Mul(decimal.NewFromFloat(threshold))
	if spent.GreaterThanOrEqual(warnAt) {
		return alertlevel.Warning
	}

	return alertlevel.OK
}
