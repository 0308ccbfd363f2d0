package categoryapp

import (
	"encoding/json"

	"github.com/granazap/painel/business/domain/categorybus"
)

// Category represents a transaction category configured for the tenant.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	Icon string `json:"icon,omitempty"`
}

// Encode implements the web.Encoder interface.
func (c Category) Encode() ([]byte, string, error) {
	data, err := json.Marshal(c)
	return data, "application/json", err
}

func toAppCategory(bus categorybus.Category) Category {
	return Category{
		ID:   bus.ID.String(),
		Name: bus.Name,
		Kind: bus.Kind.String(),
		Icon: bus.Icon,
	}
}

func toAppCategories(categories []categorybus.Category) []Category {
	app := make([]Category, len(categories))
	for i, c := range categories {
		app[i] = toAppCategory(c)
	}
	return app
}

// Spending represents the amount spent in a category over the period.
type Spending struct {
	CategoryID        string  `json:"categoryId"`
	CategoryName      string  `json:"categoryName"`
	TotalSpent        string  `json:"totalSpent"`
	PercentageOfTotal float64 `json:"percentageOfTotal"`
	TransactionCount  int     `json:"transactionCount"`
}

// Encode implements the web.Encoder interface.
func (s Spending) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

func toAppSpending(bus categorybus.Spending) Spending {
	return Spending{
		CategoryID:        bus.CategoryID.String(),
		CategoryName:      bus.CategoryName,
		TotalSpent:        bus.TotalSpent.String(),
		PercentageOfTotal: bus.PercentageOfTotal,
		TransactionCount:  bus.TransactionCount,
	}
}

func toAppSpendings(spending []categorybus.Spending) []Spending {
	app := make([]Spending, len(spending))
	for i, s := range spending {
		app[i] = toAppSpending(s)
	}
	return app
}
