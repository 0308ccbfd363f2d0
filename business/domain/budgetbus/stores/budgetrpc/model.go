package budgetrpc

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/granazap/painel/business/domain/budgetbus"
	"github.com/granazap/painel/business/types/alertlevel"
	"github.com/granazap/painel/business/types/money"
)

// budgetRow represents the wire shape of a budget record.
type budgetRow struct {
	ID             string `json:"id"`
	CategoryID     string `json:"category_id"`
	CategoryName   string `json:"category_name"`
	MonthlyLimit   string `json:"monthly_limit"`
	CurrentSpent   string `json:"current_spent"`
	MonthKey       string `json:"month_year"`
	AlertThreshold string `json:"alert_threshold"`
	AlertLevel     string `json:"alert_level"`
}

func toBusBudget(row budgetRow) (budgetbus.Budget, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return budgetbus.Budget{}, fmt.Errorf("parse id: %w", err)
	}

	categoryID, err := uuid.Parse(row.CategoryID)
	if err != nil {
		return budgetbus.Budget{}, fmt.Errorf("parse category id: %w", err)
	}

	limit := money.Parse(row.MonthlyLimit)
	spent := money.Parse(row.CurrentSpent)

	threshold, err := strconv.ParseFloat(row.AlertThreshold, 64)
	if err != nil || threshold <= 0 {
		threshold = budgetbus.DefaultAlertThreshold
	}

	// The backend computes the alert level too; trust it when it is a known
	// value and recompute otherwise.
	level, err := alertlevel.Parse(row.AlertLevel)
	if err != nil {
		level = budgetbus.Classify(spent, limit, threshold)
	}

	return budgetbus.Budget{
		ID:             id,
		CategoryID:     categoryID,
		CategoryName:   row.CategoryName,
		MonthlyLimit:   limit,
		CurrentSpent:   spent,
		MonthKey:       row.MonthKey,
		AlertThreshold: threshold,
		Alert:          level,
	}, nil
}
