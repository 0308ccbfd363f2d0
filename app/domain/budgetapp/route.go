package budgetapp

import (
	"net/http"

	"github.com/granazap/painel/app/sdk/mid"
	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/domain/budgetbus"
	"github.com/granazap/painel/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	AuthBus   *authbus.Core
	BudgetBus *budgetbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	gate := mid.Gate(cfg.AuthBus)

	api := newApp(cfg.BudgetBus)

	// GET /budgets
	app.HandlerFunc(http.MethodGet, version, "/budgets", api.query, gate)

	// POST /budgets
	app.HandlerFunc(http.MethodPost, version, "/budgets", api.create, gate)
}
