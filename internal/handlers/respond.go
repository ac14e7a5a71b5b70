package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vidhive/backend/internal/models"
	"github.com/vidhive/backend/internal/views"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext extracts the authenticated user's ID from the JWT
// claims placed on the context by the auth middleware. Zero means
// unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// httpError translates pipeline errors into HTTP errors. Anything outside
// the known taxonomy is a 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, views.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, views.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, views.ErrPermissionDenied):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, views.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// parsePageParams reads page and limit from the query string. Absent
// params get defaults; present-but-invalid params are a client error, not
// a silent fallback.
func parsePageParams(c echo.Context) (page, limit int, err error) {
	page, limit = 1, 10
	if raw := c.QueryParam("page"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid page parameter")
		}
		page = n
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid limit parameter")
		}
		if n > 50 {
			n = 50
		}
		limit = n
	}
	return page, limit, nil
}

// parseSort reads sortBy/sortType from the query string. Key validation
// happens downstream where the listing knows its sortable fields.
func parseSort(c echo.Context) views.Sort {
	return views.Sort{
		Key:       c.QueryParam("sortBy"),
		Direction: c.QueryParam("sortType"),
	}
}

// respondData wraps a single payload in the standard response envelope.
func respondData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, echo.Map{
		"success": true,
		"data":    data,
	})
}

// respondPage wraps a paginated listing in the standard envelope with
// pagination meta.
func respondPage[T any](c echo.Context, key string, p views.Page[T]) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{key: p.Items},
		"meta": echo.Map{
			"currentPage":     p.Page,
			"totalPages":      p.TotalPages,
			"totalItems":      p.TotalItems,
			"itemsPerPage":    p.Limit,
			"hasNextPage":     p.HasNext,
			"hasPreviousPage": p.HasPrev,
		},
	})
}
