package categorybus

import (
	"github.com/google/uuid"
	"github.com/granazap/painel/business/types/entrykind"
	"github.com/granazap/painel/business/types/money"
)

// Category represents a transaction category configured for the tenant.
type Category struct {
	ID   uuid.UUID
	Name string
	Kind entrykind.Kind
	Icon string
}

// Spending represents the amount spent in a category over a period.
type Spending struct {
	CategoryID        uuid.UUID
	CategoryName      string
	TotalSpent        money.Money
	PercentageOfTotal float64
	TransactionCount  int
}

// Filter returns the categories matching the specified kind.
func Filter(categories []Category, kind entrykind.Kind) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Kind.Equal(kind) {
			out = append(out, c)
		}
	}
	return out
}
