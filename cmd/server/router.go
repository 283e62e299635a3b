package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"approvaldash/internal/dashboard/handler"
	httpmetrics "approvaldash/internal/platform/metrics"
	"approvaldash/pkg/platform/httputil"
	"approvaldash/pkg/platform/middleware/auth"
	"approvaldash/pkg/platform/middleware/metadata"
	"approvaldash/pkg/platform/middleware/request"
	"approvaldash/pkg/platform/middleware/requesttime"
	"approvaldash/pkg/platform/middleware/tracing"
)

type routerDeps struct {
	service        handler.Service
	validator      auth.JWTValidator
	httpMetrics    *httpmetrics.Metrics
	gatherer       prometheus.Gatherer
	logger         *slog.Logger
	requestTimeout time.Duration
	clock          func() time.Time
}

// newRouter assembles the middleware chain and mounts the dashboard routes
// behind bearer auth. Probes and metrics stay public.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(request.AccessLog(deps.logger))
	r.Use(chimw.Recoverer)
	r.Use(tracing.Middleware)
	r.Use(deps.httpMetrics.Middleware)
	r.Use(requesttime.Middleware(deps.clock))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteSuccess(w, map[string]string{"status": "ok"})
	})
	if deps.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		if deps.requestTimeout > 0 {
			r.Use(chimw.Timeout(deps.requestTimeout))
		}
		r.Use(auth.RequireAuth(deps.validator, deps.logger))
		handler.New(deps.service, deps.logger).Register(r)
	})
	return r
}
