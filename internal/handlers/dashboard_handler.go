package handlers

import (
	"net/http"
	"strconv"

	"github.com/vidhive/backend/internal/views"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the channel studio dashboard
type DashboardHandler struct {
	viewService *views.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(viewService *views.Service) *DashboardHandler {
	return &DashboardHandler{viewService: viewService}
}

// RegisterDashboardRoutes registers dashboard-related routes
func (h *DashboardHandler) RegisterDashboardRoutes(g *echo.Group) {
	g.GET("/dashboard/stats", h.GetStats)
	g.GET("/dashboard/analytics", h.GetAnalytics)
	g.GET("/dashboard/top-videos", h.GetTopVideos)
	g.GET("/dashboard/activity", h.GetRecentActivity)
}

// GetStats returns the caller's channel totals
func (h *DashboardHandler) GetStats(c echo.Context) error {
	userID := getUserIDFromContext(c)

	stats, err := h.viewService.ChannelStatsFor(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, stats)
}

// GetAnalytics returns per-day upload buckets for the trailing window
func (h *DashboardHandler) GetAnalytics(c echo.Context) error {
	userID := getUserIDFromContext(c)

	days := 30
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 365 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid days parameter")
		}
		days = n
	}

	analytics, err := h.viewService.ChannelAnalytics(c.Request().Context(), userID, days)
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, echo.Map{"daily": analytics})
}

// GetTopVideos returns the caller's videos ranked by engagement
func (h *DashboardHandler) GetTopVideos(c echo.Context) error {
	userID := getUserIDFromContext(c)

	limit := 5
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit parameter")
		}
		limit = n
	}

	videos, err := h.viewService.TopPerformingVideos(c.Request().Context(), userID, limit)
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, echo.Map{"videos": videos})
}

// GetRecentActivity returns latest comments and subscribers on the channel
func (h *DashboardHandler) GetRecentActivity(c echo.Context) error {
	userID := getUserIDFromContext(c)

	activity, err := h.viewService.RecentActivity(c.Request().Context(), userID, 10)
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, activity)
}
