package views

import (
	"context"
	"fmt"
	"sort"

	"github.com/vidhive/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist views resolve member videos through the stored ID list. Only
// published members are visible; IDs pointing at deleted or unpublished
// videos are skipped, and the stored order is preserved for the rest.

// UserPlaylists lists a user's playlists as summary cards.
func (s *Service) UserPlaylists(ctx context.Context, ownerID uint, page, limit int) (Page[PlaylistView], error) {
	if _, err := s.src.Users.GetUserByID(ownerID); err != nil {
		return Page[PlaylistView]{}, fmt.Errorf("%w: user", ErrNotFound)
	}
	playlists, err := s.src.Playlists.GetPlaylistsByOwner(ctx, ownerID)
	if err != nil {
		return Page[PlaylistView]{}, err
	}
	items, err := s.playlistViews(ctx, playlists)
	if err != nil {
		return Page[PlaylistView]{}, err
	}
	return Paginate(items, page, limit)
}

// PublicPlaylists is the global playlist catalogue: playlists with at
// least one visible member, ranked by aggregate views. A playlist whose
// members are all drafts or deleted counts as empty and stays out.
func (s *Service) PublicPlaylists(ctx context.Context, filters Filters, page, limit int) (Page[PlaylistView], error) {
	playlists, err := s.src.Playlists.GetPlaylists(ctx)
	if err != nil {
		return Page[PlaylistView]{}, err
	}
	cards, err := s.playlistViews(ctx, playlists)
	if err != nil {
		return Page[PlaylistView]{}, err
	}

	items := make([]PlaylistView, 0, len(cards))
	for _, p := range cards {
		if p.TotalVideos == 0 {
			continue
		}
		if !matchQuery(filters.Query, p.Name, p.Description) {
			continue
		}
		items = append(items, p)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].TotalViews != items[j].TotalViews {
			return items[i].TotalViews > items[j].TotalViews
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return Paginate(items, page, limit)
}

// PlaylistByID resolves a playlist with its full member listing.
func (s *Service) PlaylistByID(ctx context.Context, id string) (*PlaylistDetailView, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: invalid playlist ID", ErrInvalidInput)
	}
	playlist, err := s.src.Playlists.GetPlaylistByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: playlist", ErrNotFound)
	}

	members, err := s.playlistMembers(ctx, playlist.VideoIDs)
	if err != nil {
		return nil, err
	}
	users, err := s.src.Users.GetUsersByIDs([]uint{playlist.OwnerID})
	if err != nil {
		return nil, err
	}

	detail := &PlaylistDetailView{
		ID:          playlist.ID.Hex(),
		Name:        playlist.Name,
		Description: playlist.Description,
		Owner:       ownerProfile(users, playlist.OwnerID),
		Videos:      make([]PlaylistVideo, 0, len(members)),
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}

	ownerIDs := make([]uint, 0, len(members))
	for _, v := range members {
		ownerIDs = append(ownerIDs, v.OwnerID)
	}
	memberOwners, err := s.src.Users.GetUsersByIDs(dedup(ownerIDs))
	if err != nil {
		return nil, err
	}

	for _, v := range members {
		detail.Videos = append(detail.Videos, PlaylistVideo{
			ID:           v.ID.Hex(),
			Title:        v.Title,
			ThumbnailURL: v.ThumbnailURL,
			Duration:     v.Duration,
			Views:        v.Views,
			Owner:        ownerProfile(memberOwners, v.OwnerID),
		})
		detail.TotalViews += v.Views
		detail.TotalDuration += v.Duration
	}
	detail.TotalVideos = len(detail.Videos)
	return detail, nil
}

// playlistViews builds summary cards: member counts, aggregate views and
// the first visible member's thumbnail as cover art.
func (s *Service) playlistViews(ctx context.Context, playlists []models.Playlist) ([]PlaylistView, error) {
	ownerIDs := make([]uint, len(playlists))
	for i, p := range playlists {
		ownerIDs[i] = p.OwnerID
	}
	users, err := s.src.Users.GetUsersByIDs(dedup(ownerIDs))
	if err != nil {
		return nil, err
	}

	items := make([]PlaylistView, len(playlists))
	for i, p := range playlists {
		members, err := s.playlistMembers(ctx, p.VideoIDs)
		if err != nil {
			return nil, err
		}
		view := PlaylistView{
			ID:          p.ID.Hex(),
			Name:        p.Name,
			Description: p.Description,
			Owner:       ownerProfile(users, p.OwnerID),
			TotalVideos: len(members),
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		}
		for _, v := range members {
			view.TotalViews += v.Views
		}
		if len(members) > 0 {
			view.FirstVideoThumbnail = members[0].ThumbnailURL
		}
		items[i] = view
	}
	return items, nil
}

// playlistMembers resolves the stored ID list to published videos in
// stored order.
func (s *Service) playlistMembers(ctx context.Context, ids []primitive.ObjectID) ([]models.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	videos, err := s.src.Videos.GetVideosByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := indexBy(videos, func(v models.Video) primitive.ObjectID { return v.ID })

	members := make([]models.Video, 0, len(ids))
	for _, id := range ids {
		v, ok := byID[id]
		if !ok || !v.IsPublished {
			continue
		}
		members = append(members, v)
	}
	return members, nil
}
