package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/FahadAljabr/arms/internal/application"
	"github.com/FahadAljabr/arms/pkg/readiness"
)

// DashboardHandler handles HTTP requests for readiness dashboard views
type DashboardHandler struct {
	dashboardService *application.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// RegisterRoutes registers the routes for DashboardHandler
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/alerts", h.GetAlerts)
		r.Get("/sectors", h.GetSectorStats)
		r.Get("/performance", h.GetPerformance)
		r.Get("/overview", h.GetOverview)
		r.Get("/recency", h.GetRecency)
	})
}

// GetAlerts handles GET /dashboard/alerts
func (h *DashboardHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	alerts, err := h.dashboardService.Alerts(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// ?placeholder=1 substitutes an informational line when nothing fired,
	// so thin clients can render the list verbatim
	if alerts.Empty() && r.URL.Query().Get("placeholder") == "1" {
		alerts.Messages = []readiness.AlertMessage{
			{Severity: readiness.AlertInfo, Text: "No active alerts"},
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(alerts); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetSectorStats handles GET /dashboard/sectors
func (h *DashboardHandler) GetSectorStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.dashboardService.SectorStats(ctx, assetClass(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetPerformance handles GET /dashboard/performance
func (h *DashboardHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// ?sla= overrides the SLA window in hours; invalid values fall back
	// to the engine default
	slaHours := 0.0
	if slaStr := r.URL.Query().Get("sla"); slaStr != "" {
		parsed, err := strconv.ParseFloat(slaStr, 64)
		if err == nil && parsed > 0 {
			slaHours = parsed
		}
	}

	stats, err := h.dashboardService.Performance(ctx, slaHours)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetOverview handles GET /dashboard/overview
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	overview, err := h.dashboardService.Overview(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(overview); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetRecency handles GET /dashboard/recency
func (h *DashboardHandler) GetRecency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.dashboardService.Recency(ctx, assetClass(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// assetClass reads the ?class= query parameter, defaulting to the whole fleet
func assetClass(r *http.Request) application.AssetClass {
	if class := r.URL.Query().Get("class"); class != "" {
		return application.AssetClass(class)
	}
	return application.ClassAll
}
