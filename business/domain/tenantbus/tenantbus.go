// Package tenantbus resolves an authenticated user to their tenant record
// through the remote procedure boundary.
package tenantbus

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/granazap/painel/business/sdk/timeout"
	"github.com/granazap/painel/foundation/logger"
	"github.com/granazap/painel/foundation/otel"
)

// ErrNotFound is the fixed user facing message for the steady state
// violation of an authenticated user with no tenant record.
var ErrNotFound = errors.New("Tenant nao encontrado. Entre em contato com o suporte.")

// resolveTimeout bounds how long a resolution may wait on the backend. The
// remote call is abandoned on timeout, not cancelled.
const resolveTimeout = 10 * time.Second

// Storer defines the behavior required by the tenantbus to reach the
// remote backend.
type Storer interface {
	QueryByIdentity(ctx context.Context) ([]Tenant, error)
}

// Sink receives the outcome of a resolution. It is implemented by the auth
// lifecycle state owner, which is the only writer of lifecycle state; the
// resolver reports through it rather than returning results.
type Sink interface {
	SetTenant(t Tenant)
	SetTenantError(msg string)
}

// Core manages the set of APIs for tenant resolution.
type Core struct {
	log     *logger.Logger
	storer  Storer
	timeout time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewCore constructs a core for tenant resolution.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		log:      log,
		storer:   storer,
		timeout:  resolveTimeout,
		inflight: make(map[string]struct{}),
	}
}

// Resolve looks up the tenant for the specified user and reports the outcome
// through the sink. It never returns an error to the caller: every failure is
// recorded as lifecycle error text. A call for a user whose resolution is
// already in flight is a no-op; calls for other users are not blocked.
func (c *Core) Resolve(ctx context.Context, userID string, sink Sink) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.resolve")
	defer span.End()

	c.mu.Lock()
	if _, exists := c.inflight[userID]; exists {
		c.mu.Unlock()
		c.log.Info(ctx, "tenantbus: resolution already in flight, skipping", "user_id", userID)
		return
	}
	c.inflight[userID] = struct{}{}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inflight, userID)
		c.mu.Unlock()
	}()

	rows, err := timeout.Run(ctx, c.timeout, func(ctx context.Context) ([]Tenant, error) {
		return c.storer.QueryByIdentity(ctx)
	})

	switch {
	case errors.Is(err, timeout.ErrTimeout):
		c.log.Error(ctx, "tenantbus: resolve timed out", "user_id", userID)
		sink.SetTenantError("RPC timeout after 10 seconds")
		return

	case err != nil:
		c.log.Error(ctx, "tenantbus: resolve", "user_id", userID, "err", err)
		sink.SetTenantError(err.Error())
		return
	}

	if len(rows) == 0 {
		c.log.Error(ctx, "tenantbus: no tenant for user", "user_id", userID)
		sink.SetTenantError(ErrNotFound.Error())
		return
	}

	sink.SetTenant(rows[0])
}

// Lookup performs a one-shot tenant query without touching lifecycle state.
// Used by tooling.
func (c *Core) Lookup(ctx context.Context) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.lookup")
	defer span.End()

	rows, err := c.storer.QueryByIdentity(ctx)
	if err != nil {
		return Tenant{}, err
	}

	if len(rows) == 0 {
		return Tenant{}, ErrNotFound
	}

	return rows[0], nil
}

// SetTimeout overrides the resolution timeout. Tests use it to avoid
// waiting on the production value.
func (c *Core) SetTimeout(d time.Duration) {
	c.timeout = d
}
