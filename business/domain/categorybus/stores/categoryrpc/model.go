package categoryrpc

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/granazap/painel/business/domain/categorybus"
	"github.com/granazap/painel/business/types/entrykind"
	"github.com/granazap/painel/business/types/money"
)

// categoryRow represents the wire shape of a category record.
type categoryRow struct {
	ID   string  `json:"category_id"`
	Name string  `json:"category_name"`
	Type string  `json:"category_type"`
	Icon *string `json:"category_icon"`
}

// spendingRow represents the wire shape of a spending aggregate record.
type spendingRow struct {
	CategoryID       string `json:"category_id"`
	CategoryName     string `json:"category_name"`
	TotalSpent       string `json:"total_spent"`
	PercentageOfTotal string `json:"percentage_of_total"`
	TransactionCount int    `json:"transaction_count"`
}

func toBusCategory(row categoryRow) (categorybus.Category, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return categorybus.Category{}, fmt.Errorf("parse id: %w", err)
	}

	kind, err := entrykind.Parse(row.Type)
	if err != nil {
		return categorybus.Category{}, fmt.Errorf("parse type: %w", err)
	}

	var icon string
	if row.Icon != nil {
		icon = *row.Icon
	}

	return categorybus.Category{
		ID:   id,
		Name: row.Name,
		Kind: kind,
		Icon: icon,
	}, nil
}

func toBusSpending(row spendingRow) (categorybus.Spending, error) {
	id, err := uuid.Parse(row.CategoryID)
	if err != nil {
		return categorybus.Spending{}, fmt.Errorf("parse category id: %w", err)
	}

	pct, err := strconv.ParseFloat(row.PercentageOfTotal, 64)
	if err != nil {
		pct = 0
	}

	return categorybus.Spending{
		CategoryID:        id,
		CategoryName:      row.CategoryName,
		TotalSpent:        money.Parse(row.TotalSpent),
		PercentageOfTotal: pct,
		TransactionCount:  row.TransactionCount,
	}, nil
}
