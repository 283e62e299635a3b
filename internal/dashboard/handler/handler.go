package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"approvaldash/internal/dashboard"
	id "approvaldash/pkg/domain"
	"approvaldash/pkg/platform/httputil"
	"approvaldash/pkg/platform/sentinel"
	"approvaldash/pkg/requestcontext"
)

// Service defines the dashboard views served over HTTP.
type Service interface {
	Statistics(ctx context.Context, initiator id.UserID) (*dashboard.Statistics, error)
	RecentActivities(ctx context.Context, initiator id.UserID, limit int) ([]dashboard.Activity, error)
	Trend(ctx context.Context, days int) ([]dashboard.TrendPoint, error)
	TypeDistribution(ctx context.Context) ([]dashboard.TypeShare, error)
	Efficiency(ctx context.Context) (*dashboard.EfficiencyMetrics, error)
	Todos(ctx context.Context, approver id.UserID, limit int) ([]dashboard.TodoItem, error)
	TypeEfficiency(ctx context.Context, initiator id.UserID) ([]dashboard.TypeEfficiency, error)
	Heatmap(ctx context.Context, initiator id.UserID) ([]dashboard.DailySubmission, error)
	Overview(ctx context.Context, user id.UserID) (*dashboard.Overview, error)
}

// Handler wires dashboard endpoints to the analytics engine.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a dashboard handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts dashboard endpoints on the router. Routes expect an
// authenticated caller in the request context.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/dashboard", func(r chi.Router) {
		r.Get("/statistics", h.HandleStatistics)
		r.Get("/recent-activities", h.HandleRecentActivities)
		r.Get("/trend", h.HandleTrend)
		r.Get("/type-distribution", h.HandleTypeDistribution)
		r.Get("/efficiency", h.HandleEfficiency)
		r.Get("/todos", h.HandleTodos)
		r.Get("/efficiency/breakdown", h.HandleTypeEfficiency)
		r.Get("/activities/heatmap", h.HandleHeatmap)
		r.Get("/overview", h.HandleOverview)
	})
}

// HandleStatistics handles GET /api/dashboard/statistics.
func (h *Handler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "statistics", func(ctx context.Context, user id.UserID) (any, error) {
		return h.service.Statistics(ctx, user)
	})
}

// HandleRecentActivities handles GET /api/dashboard/recent-activities?limit=N.
func (h *Handler) HandleRecentActivities(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", dashboard.DefaultActivityLimit)
	h.serve(w, r, "recent_activities", func(ctx context.Context, user id.UserID) (any, error) {
		return h.service.RecentActivities(ctx, user, limit)
	})
}

// HandleTrend handles GET /api/dashboard/trend?days=N.
func (h *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", dashboard.DefaultTrendDays)
	h.serve(w, r, "trend", func(ctx context.Context, _ id.UserID) (any, error) {
		return h.service.Trend(ctx, days)
	})
}

// HandleTypeDistribution handles GET /api/dashboard/type-distribution.
func (h *Handler) HandleTypeDistribution(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "type_distribution", func(ctx context.Context, _ id.UserID) (any, error) {
		return h.service.TypeDistribution(ctx)
	})
}

// HandleEfficiency handles GET /api/dashboard/efficiency.
func (h *Handler) HandleEfficiency(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "efficiency", func(ctx context.Context, _ id.UserID) (any, error) {
		return h.service.Efficiency(ctx)
	})
}

// HandleTodos handles GET /api/dashboard/todos?limit=N.
func (h *Handler) HandleTodos(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", dashboard.DefaultTodoLimit)
	h.serve(w, r, "todos", func(ctx context.Context, user id.UserID) (any, error) {
		return h.service.Todos(ctx, user, limit)
	})
}

// HandleTypeEfficiency handles GET /api/dashboard/efficiency/breakdown.
func (h *Handler) HandleTypeEfficiency(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "type_efficiency", func(ctx context.Context, user id.UserID) (any, error) {
		return h.service.TypeEfficiency(ctx, user)
	})
}

// HandleHeatmap handles GET /api/dashboard/activities/heatmap.
func (h *Handler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "heatmap", func(ctx context.Context, user id.UserID) (any, error) {
		return h.service.Heatmap(ctx, user)
	})
}

// HandleOverview handles GET /api/dashboard/overview.
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "overview", func(ctx context.Context, user id.UserID) (any, error) {
		return h.service.Overview(ctx, user)
	})
}

// serve resolves the caller, runs view and writes the envelope.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request, view string, build func(context.Context, id.UserID) (any, error)) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		httputil.WriteError(w, sentinel.ErrUnauthorized)
		return
	}

	data, err := build(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard view failed",
			"request_id", requestID,
			"user_id", userID,
			"view", view,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "dashboard view served",
		"request_id", requestID,
		"user_id", userID,
		"view", view,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteSuccess(w, data)
}

// queryInt reads an integer query parameter. Missing or non-numeric values
// yield def; range checks belong to the engine.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
