package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestTweetRoutesIncludeOwnTimeline(t *testing.T) {
	e := echo.New()
	h := NewTweetHandler(nil, nil)
	h.RegisterTweetRoutes(e.Group("/api/v1"))

	paths := make(map[string]bool)
	for _, r := range e.Routes() {
		if r.Method == http.MethodGet {
			paths[r.Path] = true
		}
	}

	assert.True(t, paths["/api/v1/tweets/my"])
	assert.True(t, paths["/api/v1/tweets/:id"])
	assert.True(t, paths["/api/v1/users/:id/tweets"])
}
