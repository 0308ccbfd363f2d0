package checkapp

import (
	"net/http"

	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/sdk/web"
	"github.com/granazap/painel/foundation/logger"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Build   string
	Log     *logger.Logger
	AuthBus *authbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	api := newApp(cfg.Build, cfg.Log, cfg.AuthBus)

	app.HandlerFuncNoMid(http.MethodGet, version, "/liveness", api.liveness)
	app.HandlerFuncNoMid(http.MethodGet, version, "/readiness", api.readiness)
}
