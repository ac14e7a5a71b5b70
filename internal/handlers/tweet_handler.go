package handlers

import (
	"net/http"
	"strconv"

	"github.com/vidhive/backend/internal/models"
	"github.com/vidhive/backend/internal/repositories"
	"github.com/vidhive/backend/internal/views"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TweetHandler handles HTTP requests related to tweets
type TweetHandler struct {
	tweetRepository repositories.TweetRepository
	viewService     *views.Service
}

// NewTweetHandler creates a new TweetHandler
func NewTweetHandler(tweetRepo repositories.TweetRepository, viewService *views.Service) *TweetHandler {
	return &TweetHandler{
		tweetRepository: tweetRepo,
		viewService:     viewService,
	}
}

// RegisterTweetRoutes registers tweet-related routes
func (h *TweetHandler) RegisterTweetRoutes(g *echo.Group) {
	g.POST("/tweets", h.CreateTweet)
	g.GET("/tweets", h.GetTweets)
	g.GET("/tweets/my", h.GetMyTweets)
	g.GET("/tweets/:id", h.GetTweet)
	g.PUT("/tweets/:id", h.UpdateTweet)
	g.DELETE("/tweets/:id", h.DeleteTweet)
	g.GET("/tweets/:id/stats", h.GetTweetStats)
	g.GET("/users/:id/tweets", h.GetUserTweets)
}

// CreateTweet posts a new tweet
func (h *TweetHandler) CreateTweet(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreateTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tweet := &models.Tweet{
		OwnerID: userID,
		Content: req.Content,
	}
	if err := h.tweetRepository.CreateTweet(c.Request().Context(), tweet); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respondData(c, http.StatusCreated, tweet)
}

// GetTweets returns the global tweet timeline
func (h *TweetHandler) GetTweets(c echo.Context) error {
	viewer := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	filters := views.Filters{Query: c.QueryParam("query")}
	result, err := h.viewService.ListTweets(c.Request().Context(), viewer, filters, parseSort(c), page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "tweets", result)
}

// GetTweet returns a single tweet with its like join
func (h *TweetHandler) GetTweet(c echo.Context) error {
	viewer := getUserIDFromContext(c)

	tweet, err := h.viewService.TweetByID(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, tweet)
}

// GetMyTweets returns the caller's own tweets, newest first
func (h *TweetHandler) GetMyTweets(c echo.Context) error {
	userID := getUserIDFromContext(c)

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.UserTweets(c.Request().Context(), userID, userID, page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "tweets", result)
}

// GetUserTweets returns one author's tweets, newest first
func (h *TweetHandler) GetUserTweets(c echo.Context) error {
	viewer := getUserIDFromContext(c)

	ownerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	page, limit, err := parsePageParams(c)
	if err != nil {
		return err
	}

	result, err := h.viewService.UserTweets(c.Request().Context(), viewer, uint(ownerID), page, limit)
	if err != nil {
		return httpError(err)
	}
	return respondPage(c, "tweets", result)
}

// UpdateTweet edits a tweet's content; owner only
func (h *TweetHandler) UpdateTweet(c echo.Context) error {
	userID := getUserIDFromContext(c)
	tweetID := c.Param("id")

	var req models.UpdateTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tweet, err := h.tweetRepository.GetTweetByID(c.Request().Context(), tweetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
	}
	if err := views.RequireOwner(tweet.OwnerID, userID); err != nil {
		return httpError(err)
	}

	if err := h.tweetRepository.UpdateTweet(c.Request().Context(), tweetID, req.Content); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	updated, err := h.tweetRepository.GetTweetByID(c.Request().Context(), tweetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respondData(c, http.StatusOK, updated)
}

// DeleteTweet removes a tweet; owner only
func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	userID := getUserIDFromContext(c)
	tweetID := c.Param("id")

	tweet, err := h.tweetRepository.GetTweetByID(c.Request().Context(), tweetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
	}
	if err := views.RequireOwner(tweet.OwnerID, userID); err != nil {
		return httpError(err)
	}

	if err := h.tweetRepository.DeleteTweet(c.Request().Context(), tweetID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// GetTweetStats returns a tweet's like count; owner only
func (h *TweetHandler) GetTweetStats(c echo.Context) error {
	userID := getUserIDFromContext(c)
	tweetID := c.Param("id")

	tweet, err := h.tweetRepository.GetTweetByID(c.Request().Context(), tweetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
	}
	if err := views.RequireOwner(tweet.OwnerID, userID); err != nil {
		return httpError(err)
	}

	stats, err := h.viewService.TweetStatsByID(c.Request().Context(), tweetID)
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, stats)
}
