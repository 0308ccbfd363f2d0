// Package summarybus provides the tenant's monthly and historical summary
// figures.
package summarybus

import (
	"context"
	"fmt"
	"time"

	"github.com/granazap/painel/business/sdk/timeout"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
	"github.com/granazap/painel/foundation/otel"
)

// DefaultMonthsBack is how many months of history are returned when the
// caller does not specify.
const DefaultMonthsBack = 6

// monthTimeout bounds the current month query, which backs the first paint
// of the dashboard. The call is abandoned on timeout, not cancelled.
const monthTimeout = 10 * time.Second

// Storer defines the behavior required by the summarybus to reach the
// remote backend.
type Storer interface {
	QueryMonth(ctx context.Context, tenantPhone phone.Phone) ([]Month, error)
	QueryHistory(ctx context.Context, tenantPhone phone.Phone, monthsBack int) ([]HistoryPoint, error)
}

// Core manages the set of APIs for summary access.
type Core struct {
	log     *logger.Logger
	storer  Storer
	timeout time.Duration
}

// NewCore constructs a core for summary access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		log:     log,
		storer:  storer,
		timeout: monthTimeout,
	}
}

// Month retrieves the current month summary. A backend with no transactions
// this month returns zero rows, which is reported as not found rather than
// an error.
func (c *Core) Month(ctx context.Context, tenantPhone phone.Phone) (Month, bool, error) {
	ctx, span := otel.AddSpan(ctx, "business.summarybus.month")
	defer span.End()

	rows, err := timeout.Run(ctx, c.timeout, func(ctx context.Context) ([]Month, error) {
		return c.storer.QueryMonth(ctx, tenantPhone)
	})
	if err != nil {
		return Month{}, false, fmt.Errorf("query month: phone[%s]: %w", tenantPhone, err)
	}

	if len(rows) == 0 {
		return Month{}, false, nil
	}

	return rows[0], true, nil
}

// History retrieves the summary figures for the past months.
func (c *Core) History(ctx context.Context, tenantPhone phone.Phone, monthsBack int) ([]HistoryPoint, error) {
	ctx, span := otel.AddSpan(ctx, "business.summarybus.history")
	defer span.End()

	if monthsBack <= 0 {
		monthsBack = DefaultMonthsBack
	}

	points, err := c.storer.QueryHistory(ctx, tenantPhone, monthsBack)
	if err != nil {
		return nil, fmt.Errorf("query history: phone[%s]: %w", tenantPhone, err)
	}

	return points, nil
}

// SetTimeout overrides the month query timeout. Tests use it to avoid
// waiting on the production value.
func (c *Core) SetTimeout(d time.Duration) {
	c.timeout = d
}
