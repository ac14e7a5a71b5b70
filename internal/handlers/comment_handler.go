package handlers

import (
	"net/http"

	"github.com/vidhive/backend/internal/models"
	"github.com/vidhive/backend/internal/repositories"
	"github.com/vidhive/backend/internal/views"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentHandler handles HTTP requests related to video comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	videoRepository   repositories.VideoRepository
	viewService       *views.Service
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, videoRepo repositories.VideoRepository, viewService *views.Service) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		videoRepository:   videoRepo,
		viewService:       viewService,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/videos/:id/comments", h.AddComment)
	g.GET("/videos/:id/comments", h.GetVideoComments)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// AddComment posts a comment on a video
func (h *CommentHandler) AddComment(c echo.Context) error {
	userID := getUserIDFromContext(c)
	videoID := c.Param("id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	objID, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid video ID")
	}
	if _, err := h.videoRepository.GetVideoByID(c.Request().Context(), videoID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}

	comment := &models.Comment{
		VideoID: objID,
		OwnerID: userID,
		Content: req.Content,
	}
	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respondData(c, http.StatusCreated, comment)
}

// GetVideoComments returns a video's comment thread, newest first
func (h *CommentHandler) GetVideoComments(c echo.Context) error {
	viewer := getUserIDFromContext(c)
	videoID := c.Param("id")

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.VideoComments(c.Request().Context(), viewer, videoID, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "comments", result)
}

// UpdateComment edits a comment's content; owner only
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	userID := getUserIDFromContext(c)
	commentID := c.Param("id")

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentRepository.GetCommentByID(c.Request().Context(), commentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	if err := views.RequireOwner(comment.OwnerID, userID); err != nil {
		return httpError(err)
	}

	if err := h.commentRepository.UpdateComment(c.Request().Context(), commentID, req.Content); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	updated, err := h.commentRepository.GetCommentByID(c.Request().Context(), commentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respondData(c, http.StatusOK, updated)
}

// DeleteComment removes a comment; owner only
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	userID := getUserIDFromContext(c)
	commentID := c.Param("id")

	comment, err := h.commentRepository.GetCommentByID(c.Request().Context(), commentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	if err := views.RequireOwner(comment.OwnerID, userID); err != nil {
		return httpError(err)
	}

	if err := h.commentRepository.DeleteComment(c.Request().Context(), commentID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
