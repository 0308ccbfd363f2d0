// Package checkapp maintains the app layer api for the check domain.
package checkapp

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/sdk/web"
	"github.com/granazap/painel/foundation/logger"
)

type app struct {
	build   string
	log     *logger.Logger
	authBus *authbus.Core
}

func newApp(build string, log *logger.Logger, authBus *authbus.Core) *app {
	return &app{
		build:   build,
		log:     log,
		authBus: authBus,
	}
}

// readiness reports whether the service can serve protected traffic. It
// stays not-ready until the first auth lifecycle cycle has completed.
func (a *app) readiness(ctx context.Context, r *http.Request) web.Encoder {
	if state := a.authBus.Snapshot(); state.Loading {
		a.log.Info(ctx, "readiness failure", "status", "auth lifecycle still loading")
		return errs.Newf(errs.Unavailable, "auth lifecycle still loading")
	}

	return Info{Status: "OK"}
}

// liveness returns status info if the service is alive. If the app is
// deployed to a Kubernetes cluster, it will also return pod, node, and
// namespace details via the Downward API.
func (a *app) liveness(ctx context.Context, r *http.Request) web.Encoder {
	host, err := os.Hostname()
	if err != nil {
		host = "unavailable"
	}

	info := Info{
		Status:     "up",
		Build:      a.build,
		Host:       host,
		Name:       os.Getenv("KUBERNETES_NAME"),
		PodIP:      os.Getenv("KUBERNETES_POD_IP"),
		Node:       os.Getenv("KUBERNETES_NODE_NAME"),
		Namespace:  os.Getenv("KUBERNETES_NAMESPACE"),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}

	return info
}
