package authbus_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/domain/tenantbus"
	"github.com/granazap/painel/business/sdk/session"
	"github.com/granazap/painel/foundation/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
}

// stubProvider drives the session stream by hand.
type stubProvider struct {
	mu         sync.Mutex
	fn         func(session.Event, *session.Session)
	signOutErr error
	signOuts   atomic.Int64
}

func (p *stubProvider) Subscribe(fn func(session.Event, *session.Session)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fn = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.fn = nil
	}
}

func (p *stubProvider) SignOut(ctx context.Context) error {
	p.signOuts.Add(1)
	return p.signOutErr
}

func (p *stubProvider) emit(event session.Event, s *session.Session) {
	p.mu.Lock()
	fn := p.fn
	p.mu.Unlock()
	if fn != nil {
		fn(event, s)
	}
}

// stubResolver reports a fixed outcome on every resolution.
type stubResolver struct {
	calls  atomic.Int64
	tenant *tenantbus.Tenant
	errMsg string
}

func (r *stubResolver) Resolve(ctx context.Context, userID string, sink tenantbus.Sink) {
	r.calls.Add(1)
	if r.errMsg != "" {
		sink.SetTenantError(r.errMsg)
		return
	}
	if r.tenant != nil {
		sink.SetTenant(*r.tenant)
	}
}

func newSession(userID string) *session.Session {
	return &session.Session{
		AccessToken: "token",
		ExpiresAt:   time.Now().Add(time.Hour),
		User:        session.User{ID: userID, Email: "maria@example.com"},
	}
}

func TestInitialSession(t *testing.T) {
	provider := &stubProvider{}
	resolver := &stubResolver{tenant: &tenantbus.Tenant{ID: uuid.New(), Name: "Maria"}}

	core := authbus.NewCore(newTestLogger(), provider, resolver)
	core.Start(context.Background())
	defer core.Stop()

	if state := core.Snapshot(); !state.Loading {
		t.Fatal("state should start loading")
	}

	provider.emit(session.Initial, newSession("user-1"))

	state := core.Snapshot()
	if state.Loading {
		t.Error("loading should be false after the initial notification")
	}
	if state.User == nil || state.User.ID != "user-1" {
		t.Errorf("user = %+v, want user-1", state.User)
	}
	if state.Tenant == nil || state.Tenant.Name != "Maria" {
		t.Errorf("tenant = %+v, want Maria", state.Tenant)
	}
	if got := resolver.calls.Load(); got != 1 {
		t.Errorf("resolver calls = %d, want 1", got)
	}
}

func TestInitialSessionSignedOut(t *testing.T) {
	provider := &stubProvider{}
	resolver := &stubResolver{}

	core := authbus.NewCore(newTestLogger(), provider, resolver)
	core.Start(context.Background())
	defer core.Stop()

	provider.emit(session.Initial, nil)

	state := core.Snapshot()
	if state.Loading {
		t.Error("loading should be false after the initial notification")
	}
	if state.User != nil {
		t.Error("user should be nil")
	}
	if got := resolver.calls.Load(); got != 0 {
		t.Errorf("resolver calls = %d, want 0", got)
	}
}

func TestSignedInDuringInitialLoadSkipsFetch(t *testing.T) {
	provider := &stubProvider{}
	resolver := &stubResolver{tenant: &tenantbus.Tenant{ID: uuid.New()}}

	core := authbus.NewCore(newTestLogger(), provider, resolver)
	core.Start(context.Background())
	defer core.Stop()

	// The provider can fire SIGNED_IN before the canonical initial
	// notification. That early event must not trigger resolution.
	provider.emit(session.SignedIn, newSession("user-1"))

	if got := resolver.calls.Load(); got != 0 {
		t.Fatalf("resolver calls = %d, want 0", got)
	}

	state := core.Snapshot()
	if state.Loading {
		t.Error("loading should be false after any notification cycle")
	}
	if state.User == nil {
		t.Error("user should still be recorded from the early event")
	}

	// A later SIGNED_IN, after the first cycle completed, does fetch.
	provider.emit(session.SignedIn, newSession("user-1"))

	if got := resolver.calls.Load(); got != 1 {
		t.Errorf("resolver calls = %d, want 1", got)
	}
}

func TestTokenRefreshedFetches(t *testing.T) {
	provider := &stubProvider{}
	resolver := &stubResolver{tenant: &tenantbus.Tenant{ID: uuid.New()}}

	core := authbus.NewCore(newTestLogger(), provider, resolver)
	core.Start(context.Background())
	defer core.Stop()

	provider.emit(session.Initial, newSession("user-1"))
	provider.emit(session.TokenRefreshed, newSession("user-1"))

	if got := resolver.calls.Load(); got != 2 {
		t.Errorf("resolver calls = %d, want 2", got)
	}
}

func TestSignedOutClearsTenant(t *testing.T) {
	provider := &stubProvider{}
	resolver := &stubResolver{tenant: &tenantbus.Tenant{ID: uuid.New()}}

	core := authbus.NewCore(newTestLogger(), provider, resolver)
	core.Start(context.Background())
	defer core.Stop()

	provider.emit(session.Initial, newSession("user-1"))
	provider.emit(session.SignedOut, nil)

	state := core.Snapshot()
	if state.User != nil || state.Tenant != nil || state.Session != nil {
		t.Errorf("state not cleared: %+v", state)
	}
}

func TestResolutionErrorKeepsPriorTenant(t *testing.T) {
	provider := &stubProvider{}
	resolver := &stubResolver{tenant: &tenantbus.Tenant{ID: uuid.New(), Name: "Maria"}}

	core := authbus.NewCore(newTestLogger(), provider, resolver)
	core.Start(context.Background())
	defer core.Stop()

	provider.emit(session.Initial, newSession("user-1"))

	resolver.errMsg = "RPC timeout after 10 seconds"
	provider.emit(session.TokenRefreshed, newSession("user-1"))

	state := core.Snapshot()
	if state.Tenant == nil || state.Tenant.Name != "Maria" {
		t.Errorf("prior tenant should be kept, got %+v", state.Tenant)
	}
	if state.Error != "RPC timeout after 10 seconds" {
		t.Errorf("error = %q", state.Error)
	}
}

func TestSafetyTimeout(t *testing.T) {
	provider := &stubProvider{}
	resolver := &stubResolver{}

	core := authbus.NewCore(newTestLogger(), provider, resolver)
	core.SetSafetyTimeout(20 * time.Millisecond)

	var notifications atomic.Int64
	core.Subscribe(func(authbus.State) {
		notifications.Add(1)
	})

	core.Start(context.Background())
	defer core.Stop()

	deadline := time.Now().Add(time.Second)
	for core.Snapshot().Loading {
		if time.Now().After(deadline) {
			t.Fatal("safety timeout never fired")
		}
		time.Sleep(5 * time.Millisecond)
	}

	state := core.Snapshot()
	if state.Error != "Timeout ao carregar autenticacao. Tente recarregar a pagina." {
		t.Errorf("error = %q", state.Error)
	}
	if got := notifications.Load(); got != 1 {
		t.Errorf("notifications = %d, want 1", got)
	}
}

func TestSafetyTimeoutDisarmedByEvent(t *testing.T) {
	provider := &stubProvider{}
	resolver := &stubResolver{}

	core := authbus.NewCore(newTestLogger(), provider, resolver)
	core.SetSafetyTimeout(20 * time.Millisecond)
	core.Start(context.Background())
	defer core.Stop()

	provider.emit(session.Initial, nil)

	time.Sleep(50 * time.Millisecond)

	if state := core.Snapshot(); state.Error != "" {
		t.Errorf("error = %q, want empty", state.Error)
	}
}

func TestSignOutFailOpen(t *testing.T) {
	provider := &stubProvider{signOutErr: errors.New("network down")}
	resolver := &stubResolver{tenant: &tenantbus.Tenant{ID: uuid.New()}}

	core := authbus.NewCore(newTestLogger(), provider, resolver)
	core.Start(context.Background())
	defer core.Stop()

	provider.emit(session.Initial, newSession("user-1"))

	core.SignOut(context.Background())

	if got := provider.signOuts.Load(); got != 1 {
		t.Errorf("provider sign outs = %d, want 1", got)
	}

	state := core.Snapshot()
	if state.User != nil || state.Tenant != nil || state.Session != nil {
		t.Errorf("local state must clear even when revocation fails: %+v", state)
	}
}

func TestNoMutationAfterStop(t *testing.T) {
	provider := &stubProvider{}
	resolver := &stubResolver{tenant: &tenantbus.Tenant{ID: uuid.New()}}

	core := authbus.NewCore(newTestLogger(), provider, resolver)
	core.Start(context.Background())

	provider.emit(session.Initial, newSession("user-1"))
	before := core.Snapshot()

	core.Stop()

	core.SetTenant(tenantbus.Tenant{ID: uuid.New(), Name: "late"})
	core.SetTenantError("late error")

	after := core.Snapshot()
	if after.Error != before.Error {
		t.Errorf("error mutated after stop: %q", after.Error)
	}
	if after.Tenant == nil || after.Tenant.ID != before.Tenant.ID {
		t.Error("tenant mutated after stop")
	}
}

func TestSubscribeNotifies(t *testing.T) {
	provider := &stubProvider{}
	resolver := &stubResolver{}

	core := authbus.NewCore(newTestLogger(), provider, resolver)

	var states []authbus.State
	var mu sync.Mutex
	unsubscribe := core.Subscribe(func(s authbus.State) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, s)
	})

	core.Start(context.Background())
	defer core.Stop()

	provider.emit(session.Initial, nil)

	mu.Lock()
	count := len(states)
	mu.Unlock()
	if count != 1 {
		t.Fatalf("notifications = %d, want 1", count)
	}

	unsubscribe()
	provider.emit(session.SignedOut, nil)

	mu.Lock()
	count = len(states)
	mu.Unlock()
	if count != 1 {
		t.Errorf("notifications after unsubscribe = %d, want 1", count)
	}
}
