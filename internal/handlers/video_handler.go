package handlers

import (
	"context"
	"net/http"

	"github.com/vidhive/backend/internal/models"
	"github.com/vidhive/backend/internal/repositories"
	"github.com/vidhive/backend/internal/views"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// VideoHandler handles HTTP requests related to videos
type VideoHandler struct {
	videoRepository repositories.VideoRepository
	viewService     *views.Service
}

// NewVideoHandler creates a new VideoHandler
func NewVideoHandler(videoRepo repositories.VideoRepository, viewService *views.Service) *VideoHandler {
	return &VideoHandler{
		videoRepository: videoRepo,
		viewService:     viewService,
	}
}

// RegisterVideoRoutes registers video-related routes
func (h *VideoHandler) RegisterVideoRoutes(g *echo.Group) {
	g.POST("/videos", h.PublishVideo)
	g.GET("/videos", h.GetVideos)
	g.GET("/videos/trending", h.GetTrendingVideos)
	g.GET("/videos/recommended", h.GetRecommendedVideos)
	g.GET("/videos/my", h.GetMyVideos)
	g.GET("/videos/:id", h.GetVideo)
	g.PUT("/videos/:id", h.UpdateVideo)
	g.DELETE("/videos/:id", h.DeleteVideo)
	g.PATCH("/videos/:id/toggle-publish", h.TogglePublish)
	g.GET("/videos/:id/stats", h.GetVideoStats)
}

// PublishVideo creates a new video document. It starts published; owners
// can pull it back with the toggle endpoint.
func (h *VideoHandler) PublishVideo(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.PublishVideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	video := &models.Video{
		OwnerID:      userID,
		Title:        req.Title,
		Description:  req.Description,
		MediaURL:     req.MediaURL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		IsPublished:  true,
	}

	if err := h.videoRepository.CreateVideo(c.Request().Context(), video); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respondData(c, http.StatusCreated, video)
}

// GetVideos returns the public catalogue with optional search and sorting
func (h *VideoHandler) GetVideos(c echo.Context) error {
	viewer := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	filters := views.Filters{Query: c.QueryParam("query")}
	result, err := h.viewService.ListVideos(c.Request().Context(), viewer, filters, parseSort(c), page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "videos", result)
}

// GetVideo returns the watch-page view and records the view hit in the
// background so the response never waits on the counter write.
func (h *VideoHandler) GetVideo(c echo.Context) error {
	viewer := getUserIDFromContext(c)
	videoID := c.Param("id")

	video, err := h.viewService.VideoByID(c.Request().Context(), viewer, videoID)
	if err != nil {
		return httpError(err)
	}

	go h.videoRepository.IncrementViews(context.Background(), videoID)

	return respondData(c, http.StatusOK, video)
}

// GetMyVideos lists the authenticated owner's uploads, drafts included
func (h *VideoHandler) GetMyVideos(c echo.Context) error {
	userID := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.OwnerVideos(c.Request().Context(), userID, parseSort(c), page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "videos", result)
}

// GetTrendingVideos returns recent videos ranked by views and likes
func (h *VideoHandler) GetTrendingVideos(c echo.Context) error {
	viewer := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.TrendingVideos(c.Request().Context(), viewer, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "videos", result)
}

// GetRecommendedVideos returns ranked suggestions from other channels
func (h *VideoHandler) GetRecommendedVideos(c echo.Context) error {
	viewer := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.RecommendedVideos(c.Request().Context(), viewer, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "videos", result)
}

// UpdateVideo updates a video's editable fields; owner only
func (h *VideoHandler) UpdateVideo(c echo.Context) error {
	userID := getUserIDFromContext(c)
	videoID := c.Param("id")

	var req models.UpdateVideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	video, err := h.videoRepository.GetVideoByID(c.Request().Context(), videoID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}
	if err := views.RequireOwner(video.OwnerID, userID); err != nil {
		return httpError(err)
	}

	fields := map[string]interface{}{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.ThumbnailURL != "" {
		fields["thumbnail_url"] = req.ThumbnailURL
	}

	if err := h.videoRepository.UpdateVideo(c.Request().Context(), videoID, fields); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	updated, err := h.videoRepository.GetVideoByID(c.Request().Context(), videoID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respondData(c, http.StatusOK, updated)
}

// TogglePublish flips a video between published and draft; owner only
func (h *VideoHandler) TogglePublish(c echo.Context) error {
	userID := getUserIDFromContext(c)
	videoID := c.Param("id")

	video, err := h.videoRepository.GetVideoByID(c.Request().Context(), videoID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}
	if err := views.RequireOwner(video.OwnerID, userID); err != nil {
		return httpError(err)
	}

	if err := h.videoRepository.SetPublished(c.Request().Context(), videoID, !video.IsPublished); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respondData(c, http.StatusOK, echo.Map{"is_published": !video.IsPublished})
}

// DeleteVideo deletes a video; owner only
func (h *VideoHandler) DeleteVideo(c echo.Context) error {
	userID := getUserIDFromContext(c)
	videoID := c.Param("id")

	video, err := h.videoRepository.GetVideoByID(c.Request().Context(), videoID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}
	if err := views.RequireOwner(video.OwnerID, userID); err != nil {
		return httpError(err)
	}

	if err := h.videoRepository.DeleteVideo(c.Request().Context(), videoID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// GetVideoStats returns a video's engagement numbers; owner only
func (h *VideoHandler) GetVideoStats(c echo.Context) error {
	userID := getUserIDFromContext(c)
	videoID := c.Param("id")

	video, err := h.videoRepository.GetVideoByID(c.Request().Context(), videoID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}
	if err := views.RequireOwner(video.OwnerID, userID); err != nil {
		return httpError(err)
	}

	stats, err := h.viewService.VideoStatsByID(c.Request().Context(), videoID)
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, stats)
}
