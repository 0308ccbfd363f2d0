// Package transactionbus provides access to the tenant's transactions.
package transactionbus

import (
	"context"
	"fmt"

	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
	"github.com/granazap/painel/foundation/otel"
)

// DefaultLimit is the number of transactions returned when the caller does
// not specify one.
const DefaultLimit = 50

// Storer defines the behavior required by the transactionbus to reach the
// remote backend.
type Storer interface {
	Query(ctx context.Context, tenantPhone phone.Phone, limit int) ([]Transaction, error)
	Create(ctx context.Context, tenantPhone phone.Phone, nt NewTransaction) (Transaction, error)
}

// Core manages the set of APIs for transaction access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for transaction access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		log:    log,
		storer: storer,
	}
}

// Query retrieves the most recent transactions for the tenant.
func (c *Core) Query(ctx context.Context, tenantPhone phone.Phone, limit int) ([]Transaction, error) {
	ctx, span := otel.AddSpan(ctx, "business.transactionbus.query")
	defer span.End()

	if limit <= 0 {
		limit = DefaultLimit
	}

	txns, err := c.storer.Query(ctx, tenantPhone, limit)
	if err != nil {
		return nil, fmt.Errorf("query: phone[%s]: %w", tenantPhone, err)
	}

	return txns, nil
}

// Create adds a new transaction for the tenant.
func (c *Core) Create(ctx context.Context, tenantPhone phone.Phone, nt NewTransaction) (Transaction, error) {
	ctx, span := otel.AddSpan(ctx, "business.transactionbus.create")
	defer span.End()

	txn, err := c.storer.Create(ctx, tenantPhone, nt)
	if err != nil {
		return Transaction{}, fmt.Errorf("create: %w", err)
	}

	return txn, nil
}
