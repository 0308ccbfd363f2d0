package categoryapp

import (
	"net/http"

	"github.com/granazap/painel/app/sdk/mid"
	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/domain/categorybus"
	"github.com/granazap/painel/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	AuthBus     *authbus.Core
	CategoryBus *categorybus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	gate := mid.Gate(cfg.AuthBus)

	api := newApp(cfg.CategoryBus)

	// GET /categories
	app.HandlerFunc(http.MethodGet, version, "/categories", api.query, gate)

	// GET /categories/spending
	app.HandlerFunc(http.MethodGet, version, "/categories/spending", api.querySpending, gate)
}
