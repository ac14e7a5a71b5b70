package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vidhive/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubVideoRepo serves a single video; mutations are recorded, not applied.
type stubVideoRepo struct {
	video   models.Video
	deleted bool
}

func (s *stubVideoRepo) CreateVideo(ctx context.Context, video *models.Video) error {
	video.ID = primitive.NewObjectID()
	return nil
}

func (s *stubVideoRepo) GetVideoByID(ctx context.Context, id string) (*models.Video, error) {
	if s.video.ID.Hex() == id {
		v := s.video
		return &v, nil
	}
	return nil, errors.New("video not found")
}

func (s *stubVideoRepo) GetVideos(ctx context.Context) ([]models.Video, error) {
	return []models.Video{s.video}, nil
}

func (s *stubVideoRepo) GetVideosByOwner(ctx context.Context, ownerID uint) ([]models.Video, error) {
	return nil, nil
}

func (s *stubVideoRepo) GetVideosByOwners(ctx context.Context, ownerIDs []uint) ([]models.Video, error) {
	return nil, nil
}

func (s *stubVideoRepo) GetVideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Video, error) {
	return nil, nil
}

func (s *stubVideoRepo) UpdateVideo(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (s *stubVideoRepo) SetPublished(ctx context.Context, id string, published bool) error {
	return nil
}

func (s *stubVideoRepo) DeleteVideo(ctx context.Context, id string) error {
	s.deleted = true
	return nil
}

func (s *stubVideoRepo) IncrementViews(ctx context.Context, id string) error {
	return nil
}

func deleteRequest(t *testing.T, repo *stubVideoRepo, actor uint, videoID string) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/videos/"+videoID, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(videoID)
	c.Set("user", &models.JwtCustomClaims{UserID: actor})

	h := NewVideoHandler(repo, nil)
	return h.DeleteVideo(c)
}

func TestDeleteVideoRejectsNonOwner(t *testing.T) {
	repo := &stubVideoRepo{video: models.Video{ID: primitive.NewObjectID(), OwnerID: 1}}

	err := deleteRequest(t, repo, 2, repo.video.ID.Hex())

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	assert.False(t, repo.deleted)
}

func TestDeleteVideoAllowsOwner(t *testing.T) {
	repo := &stubVideoRepo{video: models.Video{ID: primitive.NewObjectID(), OwnerID: 1}}

	err := deleteRequest(t, repo, 1, repo.video.ID.Hex())

	require.NoError(t, err)
	assert.True(t, repo.deleted)
}

func TestDeleteVideoMissing(t *testing.T) {
	repo := &stubVideoRepo{video: models.Video{ID: primitive.NewObjectID(), OwnerID: 1}}

	err := deleteRequest(t, repo, 1, primitive.NewObjectID().Hex())

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
