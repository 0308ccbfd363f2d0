// Package budgetrpc provides budget access through the remote backend.
package budgetrpc

import (
	"context"
	"fmt"

	"github.com/granazap/painel/business/domain/budgetbus"
	"github.com/granazap/painel/business/sdk/rpc"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
)

// Store manages budget calls against the remote backend.
type Store struct {
	log    *logger.Logger
	client *rpc.Client
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, client *rpc.Client) *Store {
	return &Store{
		log:    log,
		client: client,
	}
}

// Query fetches the budgets for the tenant.
func (s *Store) Query(ctx context.Context, tenantPhone phone.Phone) ([]budgetbus.Budget, error) {
	args := struct {
		Phone string `json:"p_phone"`
	}{
		Phone: tenantPhone.String(),
	}

	raw, err := s.client.Call(ctx, "get_budgets_status", args)
	if err != nil {
		return nil, err
	}

	rows, err := rpc.DecodeRows[budgetRow](raw)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	budgets := make([]budgetbus.Budget, 0, len(rows))
	for _, row := range rows {
		b, err := toBusBudget(row)
		if err != nil {
			return nil, fmt.Errorf("tobus: %w", err)
		}
		budgets = append(budgets, b)
	}

	return budgets, nil
}

// Create inserts a new budget for the tenant.
func (s *Store) Create(ctx context.Context, tenantPhone phone.Phone, nb budgetbus.NewBudget) error {
	args := struct {
		Phone          string  `json:"p_phone"`
		CategoryHint   string  `json:"p_category_hint"`
		MonthlyLimit   string  `json:"p_monthly_limit"`
		MonthKey       string  `json:"p_month_year"`
		AlertThreshold float64 `json:"p_alert_threshold"`
	}{
		Phone:          tenantPhone.String(),
		CategoryHint:   nb.CategoryHint,
		MonthlyLimit:   nb.MonthlyLimit.String(),
		MonthKey:       nb.MonthKey,
		AlertThreshold: nb.AlertThreshold,
	}

	if _, err := s.client.Call(ctx, "create_budget", args); err != nil {
		return err
	}

	return nil
}
