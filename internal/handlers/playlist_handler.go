package handlers

import (
	"net/http"
	"strconv"

	"github.com/vidhive/backend/internal/models"
	"github.com/vidhive/backend/internal/repositories"
	"github.com/vidhive/backend/internal/views"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaylistHandler handles HTTP requests related to playlists
type PlaylistHandler struct {
	playlistRepository repositories.PlaylistRepository
	videoRepository    repositories.VideoRepository
	viewService        *views.Service
}

// NewPlaylistHandler creates a new PlaylistHandler
func NewPlaylistHandler(playlistRepo repositories.PlaylistRepository, videoRepo repositories.VideoRepository, viewService *views.Service) *PlaylistHandler {
	return &PlaylistHandler{
		playlistRepository: playlistRepo,
		videoRepository:    videoRepo,
		viewService:        viewService,
	}
}

// RegisterPlaylistRoutes registers playlist-related routes
func (h *PlaylistHandler) RegisterPlaylistRoutes(g *echo.Group) {
	g.POST("/playlists", h.CreatePlaylist)
	g.GET("/playlists", h.GetPublicPlaylists)
	g.GET("/playlists/my", h.GetMyPlaylists)
	g.GET("/playlists/:id", h.GetPlaylist)
	g.PUT("/playlists/:id", h.UpdatePlaylist)
	g.DELETE("/playlists/:id", h.DeletePlaylist)
	g.POST("/playlists/:id/videos/:videoId", h.AddVideo)
	g.DELETE("/playlists/:id/videos/:videoId", h.RemoveVideo)
	g.GET("/users/:id/playlists", h.GetUserPlaylists)
}

// CreatePlaylist creates an empty playlist
func (h *PlaylistHandler) CreatePlaylist(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	playlist := &models.Playlist{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.playlistRepository.CreatePlaylist(c.Request().Context(), playlist); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respondData(c, http.StatusCreated, playlist)
}

// GetPublicPlaylists returns the global playlist catalogue
func (h *PlaylistHandler) GetPublicPlaylists(c echo.Context) error {
	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	filters := views.Filters{Query: c.QueryParam("query")}
	result, err := h.viewService.PublicPlaylists(c.Request().Context(), filters, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "playlists", result)
}

// GetMyPlaylists lists the caller's playlists
func (h *PlaylistHandler) GetMyPlaylists(c echo.Context) error {
	userID := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.UserPlaylists(c.Request().Context(), userID, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "playlists", result)
}

// GetUserPlaylists lists another user's playlists
func (h *PlaylistHandler) GetUserPlaylists(c echo.Context) error {
	ownerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.UserPlaylists(c.Request().Context(), uint(ownerID), page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "playlists", result)
}

// GetPlaylist resolves a playlist with its visible member videos
func (h *PlaylistHandler) GetPlaylist(c echo.Context) error {
	playlist, err := h.viewService.PlaylistByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, playlist)
}

// UpdatePlaylist edits name and description; owner only
func (h *PlaylistHandler) UpdatePlaylist(c echo.Context) error {
	userID := getUserIDFromContext(c)
	playlistID := c.Param("id")

	var req models.UpdatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	playlist, err := h.playlistRepository.GetPlaylistByID(c.Request().Context(), playlistID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Playlist not found")
	}
	if err := views.RequireOwner(playlist.OwnerID, userID); err != nil {
		return httpError(err)
	}

	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}

	if err := h.playlistRepository.UpdatePlaylist(c.Request().Context(), playlistID, fields); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	updated, err := h.playlistRepository.GetPlaylistByID(c.Request().Context(), playlistID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respondData(c, http.StatusOK, updated)
}

// AddVideo appends a video to a playlist; adding a video twice is a conflict
func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	userID := getUserIDFromContext(c)
	playlistID := c.Param("id")

	videoObjID, err := primitive.ObjectIDFromHex(c.Param("videoId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid video ID")
	}

	playlist, err := h.playlistRepository.GetPlaylistByID(c.Request().Context(), playlistID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Playlist not found")
	}
	if err := views.RequireOwner(playlist.OwnerID, userID); err != nil {
		return httpError(err)
	}

	if _, err := h.videoRepository.GetVideoByID(c.Request().Context(), c.Param("videoId")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}
	for _, id := range playlist.VideoIDs {
		if id == videoObjID {
			return echo.NewHTTPError(http.StatusConflict, "Video already in playlist")
		}
	}

	if err := h.playlistRepository.AddVideo(c.Request().Context(), playlistID, videoObjID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respondData(c, http.StatusOK, echo.Map{"added": true})
}

// RemoveVideo removes a video reference from a playlist; owner only.
// Removing a video that is not a member is a conflict, not a no-op.
func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	userID := getUserIDFromContext(c)
	playlistID := c.Param("id")

	videoObjID, err := primitive.ObjectIDFromHex(c.Param("videoId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid video ID")
	}

	playlist, err := h.playlistRepository.GetPlaylistByID(c.Request().Context(), playlistID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Playlist not found")
	}
	if err := views.RequireOwner(playlist.OwnerID, userID); err != nil {
		return httpError(err)
	}

	member := false
	for _, id := range playlist.VideoIDs {
		if id == videoObjID {
			member = true
			break
		}
	}
	if !member {
		return echo.NewHTTPError(http.StatusConflict, "Video is not in the playlist")
	}

	if err := h.playlistRepository.RemoveVideo(c.Request().Context(), playlistID, videoObjID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respondData(c, http.StatusOK, echo.Map{"removed": true})
}

// DeletePlaylist deletes a playlist; owner only
func (h *PlaylistHandler) DeletePlaylist(c echo.Context) error {
	userID := getUserIDFromContext(c)
	playlistID := c.Param("id")

	playlist, err := h.playlistRepository.GetPlaylistByID(c.Request().Context(), playlistID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Playlist not found")
	}
	if err := views.RequireOwner(playlist.OwnerID, userID); err != nil {
		return httpError(err)
	}

	if err := h.playlistRepository.DeletePlaylist(c.Request().Context(), playlistID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
