// Package authbus owns the process wide session/tenant lifecycle. It is the
// single writer of lifecycle state: it observes the provider's session
// stream, drives tenant resolution, and exposes the state to consumers.
package authbus

import (
	"context"
	"sync"
	"time"

	"github.com/granazap/painel/business/domain/tenantbus"
	"github.com/granazap/painel/business/sdk/session"
	"github.com/granazap/painel/foundation/logger"
)

// safetyTimeout bounds how long the controller waits for the first
// notification before it gives up on the provider.
const safetyTimeout = 10 * time.Second

// timeoutError is the fixed message surfaced when the provider never calls
// back. The UI must never hang on an indefinite loading state.
const timeoutError = "Timeout ao carregar autenticacao. Tente recarregar a pagina."

// Resolver is the subset of the tenant resolver the controller drives.
type Resolver interface {
	Resolve(ctx context.Context, userID string, sink tenantbus.Sink)
}

// Core manages the auth lifecycle state machine.
type Core struct {
	log      *logger.Logger
	provider session.Provider
	resolver Resolver
	safety   time.Duration

	mu          sync.Mutex
	state       State
	alive       bool
	firstDone   bool
	safetyTimer *time.Timer
	unsubscribe func()
	subs        map[int]func(State)
	nextSub     int
}

// NewCore constructs a core for auth lifecycle access.
func NewCore(log *logger.Logger, provider session.Provider, resolver Resolver) *Core {
	return &Core{
		log:      log,
		provider: provider,
		resolver: resolver,
		safety:   safetyTimeout,
		state:    State{Loading: true},
		subs:     make(map[int]func(State)),
	}
}

// Start subscribes to the provider's session stream and arms the safety
// timeout. It must be called before the provider starts emitting.
func (c *Core) Start(ctx context.Context) {
	c.mu.Lock()
	c.alive = true
	c.safetyTimer = time.AfterFunc(c.safety, func() {
		c.safetyFired(ctx)
	})
	c.mu.Unlock()

	c.unsubscribe = c.provider.Subscribe(func(event session.Event, s *session.Session) {
		c.handleEvent(ctx, event, s)
	})
}

// Stop unsubscribes from the stream. No state mutation happens after Stop
// returns; late resolver or timer callbacks are discarded.
func (c *Core) Stop() {
	c.mu.Lock()
	c.alive = false
	if c.safetyTimer != nil {
		c.safetyTimer.Stop()
	}
	c.mu.Unlock()

	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

// Snapshot returns a copy of the current lifecycle state.
func (c *Core) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Subscribe registers a callback invoked with a state snapshot after every
// notification cycle. The returned function cancels the subscription.
func (c *Core) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// SignOut revokes the session with the provider and clears local state. The
// local clear happens even when the remote call fails: stale local state is
// worse than a failed network revocation.
func (c *Core) SignOut(ctx context.Context) {
	if err := c.provider.SignOut(ctx); err != nil {
		c.log.Error(ctx, "authbus: provider sign out", "err", err)
	}

	c.mu.Lock()
	c.state.User = nil
	c.state.Session = nil
	c.state.Tenant = nil
	c.mu.Unlock()

	c.notify()
}

// =============================================================================
// tenantbus.Sink implementation. The resolver writes its outcome through
// these setters so lifecycle state keeps a single owner.

// SetTenant records a successful resolution and clears any prior error.
func (c *Core) SetTenant(t tenantbus.Tenant) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.alive {
		return
	}

	c.state.Tenant = &t
	c.state.Error = ""
}

// SetTenantError records a failed resolution. The prior tenant, if any, is
// left in place.
func (c *Core) SetTenantError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.alive {
		return
	}

	c.state.Error = msg
}

// =============================================================================

func (c *Core) handleEvent(ctx context.Context, event session.Event, s *session.Session) {
	c.mu.Lock()

	if !c.alive {
		c.mu.Unlock()
		return
	}

	c.state.Session = s
	if s != nil {
		user := s.User
		c.state.User = &user
	} else {
		c.state.User = nil
	}

	firstDone := c.firstDone
	c.mu.Unlock()

	c.log.Info(ctx, "authbus: session event", "event", event, "has_user", s != nil)

	// The provider can fire SIGNED_IN before the canonical INITIAL_SESSION
	// during first load. Fetching on that early event would double resolve,
	// so SIGNED_IN only counts once the first cycle has completed.
	shouldFetch := s != nil && (event.Equal(session.Initial) ||
		event.Equal(session.TokenRefreshed) ||
		(event.Equal(session.SignedIn) && firstDone))

	switch {
	case shouldFetch:
		c.resolver.Resolve(ctx, s.User.ID, c)

	case s != nil:
		c.log.Info(ctx, "authbus: skipping tenant fetch", "event", event)

	default:
		c.mu.Lock()
		if c.alive {
			c.state.Tenant = nil
		}
		c.mu.Unlock()
	}

	c.mu.Lock()
	if c.alive {
		c.state.Loading = false
		c.firstDone = true
		if c.safetyTimer != nil {
			c.safetyTimer.Stop()
		}
	}
	c.mu.Unlock()

	c.notify()
}

// safetyFired forces the loading flag down when no notification has
// completed in time.
func (c *Core) safetyFired(ctx context.Context) {
	c.mu.Lock()

	if !c.alive || c.firstDone {
		c.mu.Unlock()
		return
	}

	c.log.Error(ctx, "authbus: safety timeout reached, forcing loading false")

	c.state.Loading = false
	c.state.Error = timeoutError
	c.mu.Unlock()

	c.notify()
}

func (c *Core) notify() {
	c.mu.Lock()
	snapshot := c.state
	fns := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// SetSafetyTimeout overrides the safety timeout. Tests use it to avoid
// waiting on the production value.
func (c *Core) SetSafetyTimeout(d time.Duration) {
	c.safety = d
}
