package mid_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/app/sdk/mid"
	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/domain/tenantbus"
	"github.com/granazap/painel/business/sdk/session"
	"github.com/granazap/painel/business/sdk/web"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
}

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
	tenant *tenantbus.Tenant
	errMsg string
}

func (r *stubResolver) Resolve(ctx context.Context, userID string, sink tenantbus.Sink) {
	if r.errMsg != "" {
		sink.SetTenantError(r.errMsg)
		return
	}
	if r.tenant != nil {
		sink.SetTenant(*r.tenant)
	}
}

func errCode(t *testing.T, enc web.Encoder) errs.ErrCode {
	t.Helper()

	err, ok := enc.(*errs.Error)
	if !ok {
		t.Fatalf("encoder type = %T, want *errs.Error", enc)
	}
	return err.Code
}

func TestGateLoading(t *testing.T) {
	provider := &stubProvider{}
	core := authbus.NewCore(newTestLogger(), provider, &stubResolver{})
	core.Start(context.Background())
	defer core.Stop()

	handler := mid.Gate(core)(func(ctx context.Context, r *http.Request) web.Encoder {
		t.Fatal("handler must not run while loading")
		return nil
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/transactions", nil)

	// While loading the gate returns unavailable even though a user may
	// already be recorded from an intermediate notification.
	got := handler(context.Background(), r)
	if code := errCode(t, got); code != errs.Unavailable {
		t.Errorf("code = %s, want unavailable", code)
	}
}

func TestGateNotSignedIn(t *testing.T) {
	provider := &stubProvider{}
	core := authbus.NewCore(newTestLogger(), provider, &stubResolver{})
	core.Start(context.Background())
	defer core.Stop()

	provider.emit(session.Initial, nil)

	handler := mid.Gate(core)(func(ctx context.Context, r *http.Request) web.Encoder {
		t.Fatal("handler must not run without a user")
		return nil
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/transactions", nil)

	got := handler(context.Background(), r)
	if code := errCode(t, got); code != errs.Unauthenticated {
		t.Errorf("code = %s, want unauthenticated", code)
	}
}

func TestGateTenantUnresolved(t *testing.T) {
	provider := &stubProvider{}
	core := authbus.NewCore(newTestLogger(), provider, &stubResolver{errMsg: "Tenant nao encontrado. Entre em contato com o suporte."})
	core.Start(context.Background())
	defer core.Stop()

	provider.emit(session.Initial, &session.Session{User: session.User{ID: "user-1"}})

	handler := mid.Gate(core)(func(ctx context.Context, r *http.Request) web.Encoder {
		t.Fatal("handler must not run without a tenant")
		return nil
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/transactions", nil)

	got := handler(context.Background(), r)
	err, ok := got.(*errs.Error)
	if !ok {
		t.Fatalf("encoder type = %T, want *errs.Error", got)
	}
	if err.Code != errs.FailedPrecondition {
		t.Errorf("code = %s, want failed_precondition", err.Code)
	}
	if err.Message != "Tenant nao encontrado. Entre em contato com o suporte." {
		t.Errorf("message = %q", err.Message)
	}
}

func TestGatePasses(t *testing.T) {
	tenant := tenantbus.Tenant{
		ID:    uuid.New(),
		Phone: phone.MustParse("+5511999999999"),
		Name:  "Maria",
	}

	provider := &stubProvider{}
	core := authbus.NewCore(newTestLogger(), provider, &stubResolver{tenant: &tenant})
	core.Start(context.Background())
	defer core.Stop()

	provider.emit(session.Initial, &session.Session{User: session.User{ID: "user-1"}})

	var gotUser session.User
	var gotPhone phone.Phone
	handler := mid.Gate(core)(func(ctx context.Context, r *http.Request) web.Encoder {
		var err error
		if gotUser, err = mid.GetUser(ctx); err != nil {
			t.Fatalf("user not in context: %v", err)
		}
		if gotPhone, err = mid.GetTenantPhone(ctx); err != nil {
			t.Fatalf("tenant not in context: %v", err)
		}
		return web.NewNoResponse()
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/transactions", nil)

	if got := handler(context.Background(), r); got == nil {
		t.Fatal("expected a response")
	}

	if gotUser.ID != "user-1" {
		t.Errorf("user id = %s, want user-1", gotUser.ID)
	}
	if !gotPhone.Equal(tenant.Phone) {
		t.Errorf("phone = %s, want %s", gotPhone, tenant.Phone)
	}
}
