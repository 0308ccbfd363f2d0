// Package budgetbus provides access to the tenant's monthly budgets.
package budgetbus

import (
	"context"
	"fmt"
	"time"

	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
	"github.com/granazap/painel/foundation/otel"
)

// DefaultAlertThreshold is the warning threshold applied when the caller
// does not specify one.
const DefaultAlertThreshold = 0.8

// Storer defines the behavior required by the budgetbus to reach the
// remote backend.
type Storer interface {
	Query(ctx context.Context, tenantPhone phone.Phone) ([]Budget, error)
	Create(ctx context.Context, tenantPhone phone.Phone, nb NewBudget) error
}

// Core manages the set of APIs for budget access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for budget access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		log:    log,
		storer: storer,
	}
}

// Query retrieves the budgets for the tenant with their alert levels.
func (c *Core) Query(ctx context.Context, tenantPhone phone.Phone) ([]Budget, error) {
	ctx, span := otel.AddSpan(ctx, "business.budgetbus.query")
	defer span.End()

	budgets, err := c.storer.Query(ctx, tenantPhone)
	if err != nil {
		return nil, fmt.Errorf("query: phone[%s]: %w", tenantPhone, err)
	}

	return budgets, nil
}

// Create adds a new budget for the tenant and returns the refreshed budget
// list so the caller sees the new alert levels.
func (c *Core) Create(ctx context.Context, tenantPhone phone.Phone, nb NewBudget) ([]Budget, error) {
	ctx, span := otel.AddSpan(ctx, "business.budgetbus.create")
	defer span.End()

	if nb.AlertThreshold == 0 {
		nb.AlertThreshold = DefaultAlertThreshold
	}

	if nb.MonthKey == "" {
		nb.MonthKey = time.Now().Format("2006-01")
	}

	if err := c.storer.Create(ctx, tenantPhone, nb); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}

	budgets, err := c.storer.Query(ctx, tenantPhone)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	return budgets, nil
}
