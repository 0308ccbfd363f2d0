package reminderapp

import (
	"net/http"

	"github.com/granazap/painel/app/sdk/mid"
	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/domain/reminderbus"
	"github.com/granazap/painel/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	AuthBus     *authbus.Core
	ReminderBus *reminderbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	gate := mid.Gate(cfg.AuthBus)

	api := newApp(cfg.ReminderBus)

	// GET /reminders
	app.HandlerFunc(http.MethodGet, version, "/reminders", api.query, gate)

	// POST /reminders/paid
	app.HandlerFunc(http.MethodPost, version, "/reminders/paid", api.markPaid, gate)
}
