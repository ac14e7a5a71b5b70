package handlers

import (
	"net/http"
	"strconv"

	"github.com/vidhive/backend/internal/views"
	"github.com/labstack/echo/v4"
)

// SubscriptionHandler handles HTTP requests related to channel subscriptions
type SubscriptionHandler struct {
	viewService *views.Service
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(viewService *views.Service) *SubscriptionHandler {
	return &SubscriptionHandler{viewService: viewService}
}

// RegisterSubscriptionRoutes registers subscription-related routes
func (h *SubscriptionHandler) RegisterSubscriptionRoutes(g *echo.Group) {
	g.POST("/channels/:id/subscribe", h.ToggleSubscription)
	g.GET("/channels/:id/subscribers", h.GetChannelSubscribers)
	g.GET("/channels/:id/subscription-status", h.GetSubscriptionStatus)
	g.GET("/users/:id/subscriptions", h.GetSubscribedChannels)
	g.GET("/subscriptions/my", h.GetMySubscriptions)
}

func channelIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid channel ID")
	}
	return uint(id), nil
}

// ToggleSubscription flips the caller's subscription to a channel
func (h *SubscriptionHandler) ToggleSubscription(c echo.Context) error {
	userID := getUserIDFromContext(c)

	channelID, err := channelIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.ToggleSubscription(userID, channelID)
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, result)
}

// GetChannelSubscribers lists a channel's subscribers, newest first
func (h *SubscriptionHandler) GetChannelSubscribers(c echo.Context) error {
	channelID, err := channelIDParam(c)
	if err != nil {
		return err
	}

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.ChannelSubscribers(channelID, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "subscribers", result)
}

// GetSubscriptionStatus reports whether the caller subscribes to a channel
func (h *SubscriptionHandler) GetSubscriptionStatus(c echo.Context) error {
	userID := getUserIDFromContext(c)

	channelID, err := channelIDParam(c)
	if err != nil {
		return err
	}

	subscribed, err := h.viewService.SubscriptionStatus(userID, channelID)
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, echo.Map{"is_subscribed": subscribed})
}

// GetSubscribedChannels lists the channels a user subscribes to
func (h *SubscriptionHandler) GetSubscribedChannels(c echo.Context) error {
	subscriberID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.SubscribedChannels(c.Request().Context(), uint(subscriberID), page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "channels", result)
}

// GetMySubscriptions returns the caller's subscription sidebar
func (h *SubscriptionHandler) GetMySubscriptions(c echo.Context) error {
	userID := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.MySubscriptions(c.Request().Context(), userID, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "subscriptions", result)
}
