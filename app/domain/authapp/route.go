package authapp

import (
	"net/http"

	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	AuthBus *authbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	api := newApp(cfg.AuthBus)

	// GET /auth/state
	app.HandlerFunc(http.MethodGet, version, "/auth/state", api.state)

	// POST /auth/logout
	app.HandlerFunc(http.MethodPost, version, "/auth/logout", api.logout)
}
