package main

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/granazap/painel/api/cmd/build/all"
	"github.com/granazap/painel/app/sdk/mux"
	"github.com/granazap/painel/business/domain/authbus"
	"github.com/granazap/painel/business/domain/tenantbus"
	"github.com/granazap/painel/business/domain/tenantbus/stores/tenantrpc"
	"github.com/granazap/painel/business/sdk/rpc"
	"github.com/granazap/painel/business/sdk/session"
	"github.com/granazap/painel/foundation/logger"
	"github.com/granazap/painel/foundation/otel"
	"github.com/kelseyhightower/envconfig"
)

var build = "develop"

type Config struct {
	Version struct {
		Build string `json:"build"`
		Desc  string `json:"desc"`
	} `json:"version"`

	Web struct {
		ReadTimeout        time.Duration `envconfig:"WEB_READ_TIMEOUT" default:"5s"`
		WriteTimeout       time.Duration `envconfig:"WEB_WRITE_TIMEOUT" default:"10s"`
		IdleTimeout        time.Duration `envconfig:"WEB_IDLE_TIMEOUT" default:"120s"`
		ShutdownTimeout    time.Duration `envconfig:"WEB_SHUTDOWN_TIMEOUT" default:"20s"`
		APIHost            string        `envconfig:"WEB_API_HOST" default:"0.0.0.0:3000"`
		CORSAllowedOrigins []string      `envconfig:"WEB_CORS_ALLOWED_ORIGINS" default:"*"`
	}
	Backend struct {
		URL    string `envconfig:"BACKEND_URL" default:"http://localhost:54321"`
		APIKey string `envconfig:"BACKEND_API_KEY" default:""`
	}
	Auth struct {
		RefreshToken string `envconfig:"AUTH_REFRESH_TOKEN" default:""`
	}
	Tempo struct {
		Host        string  `envconfig:"TEMPO_HOST" default:"tempo:4317"`
		ServiceName string  `envconfig:"TEMPO_SERVICE_NAME" default:"GRANAZAP"`
		Probability float64 `envconfig:"TEMPO_PROBABILITY" default:"0.05"`
		Enabled     bool    `envconfig:"TEMPO_ENABLED" default:"false"`
	}
}

func main() {
	var log *logger.Logger

	events := logger.Events{
		Error: func(ctx context.Context, r logger.Record) {
			log.Info(ctx, "******* SEND ALERT *******")
		},
	}

	log = logger.NewWithEvents(os.Stdout, logger.LevelInfo, "GRANAZAP", otel.GetTraceID, events)

	// -------------------------------------------------------------------------

	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {

	// -------------------------------------------------------------------------
	// GOMAXPROCS

	log.Info(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// -------------------------------------------------------------------------
	// Configuration

	var cfg Config

	cfg.Version.Build = build
	cfg.Version.Desc = "GRANAZAP"

	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	log.Info(ctx, "startup", "version", cfg.Version)
	log.Info(ctx, "startup", "config", sanitizeConfig(cfg))

	// -------------------------------------------------------------------------
	// App Starting

	log.Info(ctx, "starting service", "version", cfg.Version.Build)
	defer log.Info(ctx, "shutdown complete")

	log.BuildInfo(ctx)

	expvar.NewString("build").Set(cfg.Version.Build)

	// -------------------------------------------------------------------------
	// Start Tracing Support

	log.Info(ctx, "startup", "status", "initializing tracing support")

	traceProvider, teardown, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.Tempo.ServiceName,
		Host:        cfg.Tempo.Host,
		ExcludedRoutes: map[string]struct{}{
			"/v1/liveness":  {},
			"/v1/readiness": {},
		},
		Probability: cfg.Tempo.Probability,
		Enabled:     cfg.Tempo.Enabled,
	})
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}

	defer teardown(context.Background())

	tracer := traceProvider.Tracer(cfg.Tempo.ServiceName)

	// -------------------------------------------------------------------------
	// Session and RPC Support

	log.Info(ctx, "startup", "status", "initializing session support", "host", cfg.Backend.URL)

	sessClient := session.NewClient(session.Config{
		Log:          log,
		BaseURL:      cfg.Backend.URL + "/auth/v1",
		APIKey:       cfg.Backend.APIKey,
		RefreshToken: cfg.Auth.RefreshToken,
	})
	defer sessClient.Stop()

	rpcClient := rpc.New(rpc.Config{
		Log:     log,
		BaseURL: cfg.Backend.URL + "/rest/v1",
		APIKey:  cfg.Backend.APIKey,
		Token:   sessClient.AccessToken,
	})

	// -------------------------------------------------------------------------
	// Auth Lifecycle Support

	log.Info(ctx, "startup", "status", "initializing auth lifecycle support")

	tenantBus := tenantbus.NewCore(log, tenantrpc.NewStore(log, rpcClient))
	authBus := authbus.NewCore(log, sessClient, tenantBus)

	// The controller must observe the stream before the provider emits the
	// initial notification.
	authBus.Start(ctx)
	defer authBus.Stop()

	sessClient.Start(ctx)

	// -------------------------------------------------------------------------
	// Start API Service

	log.Info(ctx, "startup", "status", "initializing V1 API support")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	cfgMux := mux.Config{
		Build:   cfg.Version.Build,
		Log:     log,
		RPC:     rpcClient,
		AuthBus: authBus,
		Tracer:  tracer,
	}

	webAPI := mux.WebAPI(cfgMux,
		all.Routes(),
		mux.WithCORS(cfg.Web.CORSAllowedOrigins),
	)

	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      webAPI,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     logger.NewStdLogger(log, logger.LevelError),
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info(ctx, "startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// -------------------------------------------------------------------------
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.Info(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func sanitizeConfig(cfg Config) string {
	cfg.Backend.APIKey = "[MASKED]"
	cfg.Auth.RefreshToken = "[MASKED]"

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Sprintf("%+v", cfg)
	}
	return string(data)
}
