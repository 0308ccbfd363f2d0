// Package reminderbus provides access to the tenant's payment reminders.
package reminderbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
	"github.com/granazap/painel/foundation/otel"
)

// ErrNotFound indicates no reminder matched the requested title.
var ErrNotFound = errors.New("reminder not found")

// Storer defines the behavior required by the reminderbus to reach the
// remote backend.
type Storer interface {
	Query(ctx context.Context, tenantPhone phone.Phone) ([]Reminder, error)
	MarkPaid(ctx context.Context, tenantPhone phone.Phone, title string) error
}

// Core manages the set of APIs for reminder access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for reminder access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		log:    log,
		storer: storer,
	}
}

// Query retrieves the upcoming reminders for the tenant.
func (c *Core) Query(ctx context.Context, tenantPhone phone.Phone) ([]Reminder, error) {
	ctx, span := otel.AddSpan(ctx, "business.reminderbus.query")
	defer span.End()

	reminders, err := c.storer.Query(ctx, tenantPhone)
	if err != nil {
		return nil, fmt.Errorf("query: phone[%s]: %w", tenantPhone, err)
	}

	return reminders, nil
}

// MarkPaid marks the reminder with the specified title as paid. Reminders
// are addressed by title because that is how the tenant refers to them over
// the messaging channel that created them.
func (c *Core) MarkPaid(ctx context.Context, tenantPhone phone.Phone, title string) error {
	ctx, span := otel.AddSpan(ctx, "business.reminderbus.markPaid")
	defer span.End()

	if err := c.storer.MarkPaid(ctx, tenantPhone, title); err != nil {
		return fmt.Errorf("markpaid: title[%s]: %w", title, err)
	}

	return nil
}
