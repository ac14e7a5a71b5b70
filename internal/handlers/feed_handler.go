package handlers

import (
	"github.com/vidhive/backend/internal/views"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles the subscription feed
type FeedHandler struct {
	viewService *views.Service
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(viewService *views.Service) *FeedHandler {
	return &FeedHandler{viewService: viewService}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the merged timeline of the caller's subscribed channels
func (h *FeedHandler) GetFeed(c echo.Context) error {
	userID := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.SubscriptionFeed(c.Request().Context(), userID, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "videos", result)
}
