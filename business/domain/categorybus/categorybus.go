// Package categorybus provides access to the tenant's categories and the
// spending aggregated per category.
package categorybus

import (
	"context"
	"fmt"

	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
	"github.com/granazap/painel/foundation/otel"
)

// Storer defines the behavior required by the categorybus to reach the
// remote backend.
type Storer interface {
	Query(ctx context.Context, tenantPhone phone.Phone) ([]Category, error)
	QuerySpending(ctx context.Context, tenantPhone phone.Phone) ([]Spending, error)
}

// Core manages the set of APIs for category access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for category access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		log:    log,
		storer: storer,
	}
}

// Query retrieves the categories for the tenant.
func (c *Core) Query(ctx context.Context, tenantPhone phone.Phone) ([]Category, error) {
	ctx, span := otel.AddSpan(ctx, "business.categorybus.query")
	defer span.End()

	categories, err := c.storer.Query(ctx, tenantPhone)
	if err != nil {
		return nil, fmt.Errorf("query: phone[%s]: %w", tenantPhone, err)
	}

	return categories, nil
}

// QuerySpending retrieves the per category spending for the tenant.
func (c *Core) QuerySpending(ctx context.Context, tenantPhone phone.Phone) ([]Spending, error) {
	ctx, span := otel.AddSpan(ctx, "business.categorybus.querySpending")
	defer span.End()

	spending, err := c.storer.QuerySpending(ctx, tenantPhone)
	if err != nil {
		return nil, fmt.Errorf("query spending: phone[%s]: %w", tenantPhone, err)
	}

	return spending, nil
}
