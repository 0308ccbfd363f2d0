// Package authapp exposes the auth lifecycle state over HTTP.
package authapp

import (
	"context"
	"net/http"

	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/sdk/web"
)

type app struct {
	authBus *authbus.Core
}

func newApp(authBus *authbus.Core) *app {
	return &app{
		authBus: authBus,
	}
}

// state returns the current lifecycle snapshot. It is deliberately not
// gated: the client reads it to decide whether to show the loading screen,
// the login redirect, or the dashboard.
func (a *app) state(ctx context.Context, r *http.Request) web.Encoder {
	return toAppState(a.authBus.Snapshot())
}

// logout revokes the session. The response is success even when the remote
// revocation failed: local state is cleared regardless, and the client
// treats the user as signed out.
func (a *app) logout(ctx context.Context, r *http.Request) web.Encoder {
	a.authBus.SignOut(ctx)

	return web.NewNoResponse()
}
