package dashboardapp

import (
	"net/http"

	"github.com/granazap/painel/app/sdk/mid"
	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/domain/summarybus"
	"github.com/granazap/painel/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	AuthBus    *authbus.Core
	SummaryBus *summarybus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	gate := mid.Gate(cfg.AuthBus)

	api := newApp(cfg.SummaryBus)

	// GET /dashboard/summary
	app.HandlerFunc(http.MethodGet, version, "/dashboard/summary", api.summary, gate)

	// GET /dashboard/history
	app.HandlerFunc(http.MethodGet, version, "/dashboard/history", api.history, gate)
}
