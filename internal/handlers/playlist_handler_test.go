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

// stubPlaylistRepo serves a single playlist; membership writes are
// recorded, not applied.
type stubPlaylistRepo struct {
	playlist models.Playlist
	added    bool
	removed  bool
}

func (s *stubPlaylistRepo) CreatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	playlist.ID = primitive.NewObjectID()
	return nil
}

func (s *stubPlaylistRepo) GetPlaylistByID(ctx context.Context, id string) (*models.Playlist, error) {
	if s.playlist.ID.Hex() == id {
		p := s.playlist
		return &p, nil
	}
	return nil, errors.New("playlist not found")
}

func (s *stubPlaylistRepo) GetPlaylists(ctx context.Context) ([]models.Playlist, error) {
	return []models.Playlist{s.playlist}, nil
}

func (s *stubPlaylistRepo) GetPlaylistsByOwner(ctx context.Context, ownerID uint) ([]models.Playlist, error) {
	return nil, nil
}

func (s *stubPlaylistRepo) UpdatePlaylist(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (s *stubPlaylistRepo) AddVideo(ctx context.Context, id string, videoID primitive.ObjectID) error {
	s.added = true
	return nil
}

func (s *stubPlaylistRepo) RemoveVideo(ctx context.Context, id string, videoID primitive.ObjectID) error {
	s.removed = true
	return nil
}

func (s *stubPlaylistRepo) DeletePlaylist(ctx context.Context, id string) error {
	return nil
}

func membershipRequest(t *testing.T, method string, repo *stubPlaylistRepo, videoRepo *stubVideoRepo, actor uint, videoID string) error {
	t.Helper()
	playlistID := repo.playlist.ID.Hex()
	req := httptest.NewRequest(method, "/playlists/"+playlistID+"/videos/"+videoID, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id", "videoId")
	c.SetParamValues(playlistID, videoID)
	c.Set("user", &models.JwtCustomClaims{UserID: actor})

	h := NewPlaylistHandler(repo, videoRepo, nil)
	if method == http.MethodDelete {
		return h.RemoveVideo(c)
	}
	return h.AddVideo(c)
}

func TestRemoveVideoAbsentIsConflict(t *testing.T) {
	video := models.Video{ID: primitive.NewObjectID(), OwnerID: 1}
	repo := &stubPlaylistRepo{playlist: models.Playlist{ID: primitive.NewObjectID(), OwnerID: 1}}

	err := membershipRequest(t, http.MethodDelete, repo, &stubVideoRepo{video: video}, 1, video.ID.Hex())

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
	assert.False(t, repo.removed)
}

func TestRemoveVideoMember(t *testing.T) {
	video := models.Video{ID: primitive.NewObjectID(), OwnerID: 1}
	repo := &stubPlaylistRepo{playlist: models.Playlist{
		ID:       primitive.NewObjectID(),
		OwnerID:  1,
		VideoIDs: []primitive.ObjectID{video.ID},
	}}

	err := membershipRequest(t, http.MethodDelete, repo, &stubVideoRepo{video: video}, 1, video.ID.Hex())

	require.NoError(t, err)
	assert.True(t, repo.removed)
}

func TestAddVideoDuplicateIsConflict(t *testing.T) {
	video := models.Video{ID: primitive.NewObjectID(), OwnerID: 1}
	repo := &stubPlaylistRepo{playlist: models.Playlist{
		ID:       primitive.NewObjectID(),
		OwnerID:  1,
		VideoIDs: []primitive.ObjectID{video.ID},
	}}

	err := membershipRequest(t, http.MethodPost, repo, &stubVideoRepo{video: video}, 1, video.ID.Hex())

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
	assert.False(t, repo.added)
}
