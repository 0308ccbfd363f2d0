package transactionapp

import (
	"net/http"

	"github.com/granazap/painel/app/sdk/mid"
	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/domain/transactionbus"
	"github.com/granazap/painel/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	AuthBus        *authbus.Core
	TransactionBus *transactionbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	gate := mid.Gate(cfg.AuthBus)

	api := newApp(cfg.TransactionBus)

	// GET /transactions
	app.HandlerFunc(http.MethodGet, version, "/transactions", api.query, gate)

	// POST /transactions
	app.HandlerFunc(http.MethodPost, version, "/transactions", api.create, gate)
}
