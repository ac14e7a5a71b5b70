package handlers

import (
	"net/http"

	"github.com/vidhive/backend/internal/models"
	"github.com/vidhive/backend/internal/views"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	viewService *views.Service
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(viewService *views.Service) *LikeHandler {
	return &LikeHandler{viewService: viewService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/likes/video/:id/toggle", h.ToggleVideoLike)
	g.POST("/likes/comment/:id/toggle", h.ToggleCommentLike)
	g.POST("/likes/tweet/:id/toggle", h.ToggleTweetLike)
	g.GET("/likes/videos", h.GetLikedVideos)
	g.GET("/likes/comments", h.GetLikedComments)
	g.GET("/likes/tweets", h.GetLikedTweets)
	g.GET("/likes/stats", h.GetLikeStats)
}

func (h *LikeHandler) toggle(c echo.Context, kind models.LikeTargetKind) error {
	userID := getUserIDFromContext(c)

	result, err := h.viewService.ToggleLike(c.Request().Context(), userID, models.LikeTarget{
		Kind: kind,
		ID:   c.Param("id"),
	})
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, result)
}

// ToggleVideoLike flips the caller's like on a video
func (h *LikeHandler) ToggleVideoLike(c echo.Context) error {
	return h.toggle(c, models.LikeTargetVideo)
}

// ToggleCommentLike flips the caller's like on a comment
func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	return h.toggle(c, models.LikeTargetComment)
}

// ToggleTweetLike flips the caller's like on a tweet
func (h *LikeHandler) ToggleTweetLike(c echo.Context) error {
	return h.toggle(c, models.LikeTargetTweet)
}

// GetLikedVideos lists the caller's liked videos, most recently liked first
func (h *LikeHandler) GetLikedVideos(c echo.Context) error {
	userID := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.LikedVideos(c.Request().Context(), userID, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "videos", result)
}

// GetLikedComments lists the caller's liked comments with video teasers
func (h *LikeHandler) GetLikedComments(c echo.Context) error {
	userID := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.LikedComments(c.Request().Context(), userID, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "comments", result)
}

// GetLikedTweets lists the caller's liked tweets
func (h *LikeHandler) GetLikedTweets(c echo.Context) error {
	userID := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.LikedTweets(c.Request().Context(), userID, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "tweets", result)
}

// GetLikeStats summarizes the caller's likes per target kind
func (h *LikeHandler) GetLikeStats(c echo.Context) error {
	userID := getUserIDFromContext(c)

	stats, err := h.viewService.LikeStatsFor(userID)
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, stats)
}
