package budgetapp

import (
	"encoding/json"
	"fmt"

	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/business/domain/budgetbus"
	"github.com/granazap/painel/business/types/money"
)

// =============================================================================
// Budget (Output)
// =============================================================================

// Budget represents the status of a monthly budget for a category.
type Budget struct {
	ID             string  `json:"id"`
	CategoryID     string  `json:"categoryId"`
	CategoryName   string  `json:"categoryName"`
	MonthlyLimit   string  `json:"monthlyLimit"`
	CurrentSpent   string  `json:"currentSpent"`
	MonthKey       string  `json:"monthKey"`
	AlertThreshold float64 `json:"alertThreshold"`
	Alert          string  `json:"alert"`
}

// Encode implements the web.Encoder interface.
func (b Budget) Encode() ([]byte, string, error) {
	data, err := json.Marshal(b)
	return data, "application/json", err
}

func toAppBudget(bus budgetbus.Budget) Budget {
	return Budget{
		ID:             bus.ID.String(),
		CategoryID:     bus.CategoryID.String(),
		CategoryName:   bus.CategoryName,
		MonthlyLimit:   bus.MonthlyLimit.String(),
		CurrentSpent:   bus.CurrentSpent.String(),
		MonthKey:       bus.MonthKey,
		AlertThreshold: bus.AlertThreshold,
		Alert:          bus.Alert.String(),
	}
}

func toAppBudgets(budgets []budgetbus.Budget) []Budget {
	app := make([]Budget, len(budgets))
	for i, b := range budgets {
		app[i] = toAppBudget(b)
	}
	return app
}

// =============================================================================
// NewBudget (Input)
// =============================================================================

// NewBudget defines the data needed to add a new budget.
type NewBudget struct {
	CategoryHint   string  `json:"categoryHint" validate:"required"`
	MonthlyLimit   string  `json:"monthlyLimit" validate:"required"`
	MonthKey       string  `json:"monthKey"`
	AlertThreshold float64 `json:"alertThreshold" validate:"omitempty,gt=0,lte=1"`
}

// Decode implements the web.Decoder interface.
func (app *NewBudget) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewBudget) Validate() error {
	if err := errs.Check(app); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	return nil
}

func toBusNewBudget(app NewBudget) budgetbus.NewBudget {
	return budgetbus.NewBudget{
		CategoryHint:   app.CategoryHint,
		MonthlyLimit:   money.Parse(app.MonthlyLimit),
		MonthKey:       app.MonthKey,
		AlertThreshold: app.AlertThreshold,
	}
}
