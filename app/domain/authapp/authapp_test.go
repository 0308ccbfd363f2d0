package authapp_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/granazap/painel/app/domain/authapp"
	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/domain/tenantbus"
	"github.com/granazap/painel/business/sdk/session"
	"github.com/granazap/painel/business/sdk/web"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/business/types/tenantstatus"
	"github.com/granazap/painel/foundation/logger"
	"go.opentelemetry.io/otel/trace/noop"
)

type stubProvider struct {
	mu sync.Mutex
	fn func(session.Event, *session.Session)
}

func (p *stubProvider) Subscribe(fn func(session.Event, *session.Session)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fn = fn
	return func() {}
}

func (p *stubProvider) SignOut(ctx context.Context) error { return nil }

func (p *stubProvider) emit(event session.Event, s *session.Session) {
	p.mu.Lock()
	fn := p.fn
	p.mu.Unlock()
	if fn != nil {
		fn(event, s)
	}
}

type stubResolver struct {
	tenant tenantbus.Tenant
}

func (r *stubResolver) Resolve(ctx context.Context, userID string, sink tenantbus.Sink) {
	sink.SetTenant(r.tenant)
}

func TestStateEndpoint(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)

	tenant := tenantbus.Tenant{
		ID:     uuid.New(),
		Phone:  phone.MustParse("+5511999999999"),
		Name:   "Maria",
		Status: tenantstatus.Active,
	}

	provider := &stubProvider{}
	core := authbus.NewCore(log, provider, &stubResolver{tenant: tenant})
	core.Start(context.Background())
	defer core.Stop()

	app := web.NewApp(log.Info, noop.NewTracerProvider().Tracer("test"))
	authapp.Routes(app, authapp.Config{AuthBus: core})

	// While loading, the endpoint reports loading true with no user.
	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/auth/state", nil))

	var state struct {
		User *struct {
			ID string `json:"id"`
		} `json:"user"`
		Tenant *struct {
			Phone string `json:"phone"`
		} `json:"tenant"`
		Loading bool   `json:"loading"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !state.Loading || state.User != nil {
		t.Errorf("state = %+v, want loading with no user", state)
	}

	// After the initial notification the state carries user and tenant.
	provider.emit(session.Initial, &session.Session{User: session.User{ID: "user-1"}})

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/auth/state", nil))

	if err := json.NewDecoder(w.Body).Decode(&state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Loading {
		t.Error("loading should be false")
	}
	if state.User == nil || state.User.ID != "user-1" {
		t.Errorf("user = %+v, want user-1", state.User)
	}
	if state.Tenant == nil || state.Tenant.Phone != "+5511999999999" {
		t.Errorf("tenant = %+v", state.Tenant)
	}
}

func TestLogoutEndpoint(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)

	provider := &stubProvider{}
	core := authbus.NewCore(log, provider, &stubResolver{})
	core.Start(context.Background())
	defer core.Stop()

	provider.emit(session.Initial, &session.Session{User: session.User{ID: "user-1"}})

	app := web.NewApp(log.Info, noop.NewTracerProvider().Tracer("test"))
	authapp.Routes(app, authapp.Config{AuthBus: core})

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}

	if state := core.Snapshot(); state.User != nil {
		t.Error("user should be cleared after logout")
	}
}
