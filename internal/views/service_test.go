package views

import (
	"context"
	"testing"
	"time"

	"github.com/vidhive/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func TestListVideosJoinsAndFilters(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")
	f.addUser(2, "bob")

	published := f.addVideo(1, "published", true, testNow.Add(-time.Hour))
	f.addVideo(1, "draft", false, testNow)
	orphan := f.addVideo(99, "orphan owner", true, testNow.Add(-2*time.Hour))

	f.addLike(2, models.LikeTargetVideo, published.ID.Hex(), testNow)
	f.addLike(1, models.LikeTargetVideo, published.ID.Hex(), testNow)

	svc := f.service(WithClock(fixedClock))
	page, err := svc.ListVideos(context.Background(), 2, Filters{}, Sort{}, 1, 10)
	require.NoError(t, err)

	// Draft is invisible, orphan-owner video still listed
	require.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalItems)

	byTitle := make(map[string]VideoView)
	for _, v := range page.Items {
		byTitle[v.Title] = v
	}

	got := byTitle["published"]
	require.NotNil(t, got.Owner)
	assert.Equal(t, "alice", got.Owner.Username)
	assert.Equal(t, 2, got.LikesCount)
	assert.True(t, got.IsLiked)

	// Missing owner record degrades to nil, never an error
	assert.Nil(t, byTitle["orphan owner"].Owner)
	assert.Equal(t, orphan.ID.Hex(), byTitle["orphan owner"].ID)
}

func TestListVideosSearchAndSort(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")

	a := f.addVideo(1, "Go concurrency patterns", true, testNow.Add(-3*time.Hour))
	f.addVideo(1, "Cooking pasta", true, testNow.Add(-2*time.Hour))
	b := f.addVideo(1, "Advanced Go generics", true, testNow.Add(-time.Hour))

	svc := f.service(WithClock(fixedClock))
	page, err := svc.ListVideos(context.Background(), 0, Filters{Query: "go"}, Sort{Key: "title", Direction: "asc"}, 1, 10)
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, b.ID.Hex(), page.Items[0].ID)
	assert.Equal(t, a.ID.Hex(), page.Items[1].ID)

	_, err = svc.ListVideos(context.Background(), 0, Filters{}, Sort{Key: "bogus"}, 1, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVideoByIDNestedChannelJoin(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")
	f.addUser(2, "bob")
	f.addUser(3, "carol")

	video := f.addVideo(1, "watch me", true, testNow)
	f.addLike(2, models.LikeTargetVideo, video.ID.Hex(), testNow)
	f.subscriptions.subs = []models.Subscription{
		{SubscriberID: 2, ChannelID: 1, CreatedAt: testNow},
		{SubscriberID: 3, ChannelID: 1, CreatedAt: testNow},
	}

	svc := f.service()
	detail, err := svc.VideoByID(context.Background(), 2, video.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, 1, detail.LikesCount)
	assert.True(t, detail.IsLiked)
	require.NotNil(t, detail.Owner)
	assert.Equal(t, "alice", detail.Owner.Username)
	assert.Equal(t, 2, detail.Owner.SubscribersCount)
	assert.True(t, detail.Owner.IsSubscribed)

	// Different viewer, not subscribed
	detail, err = svc.VideoByID(context.Background(), 0, video.ID.Hex())
	require.NoError(t, err)
	assert.False(t, detail.Owner.IsSubscribed)
	assert.False(t, detail.IsLiked)
}

func TestVideoByIDErrors(t *testing.T) {
	f := newFixture()
	svc := f.service()

	_, err := svc.VideoByID(context.Background(), 0, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.VideoByID(context.Background(), 0, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTrendingVideosWindowIsHardFilter(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")

	viral := f.addVideo(1, "old but viral", true, testNow.Add(-8*24*time.Hour))
	viral.Views = 1000000
	f.videos.videos[0] = viral

	quiet := f.addVideo(1, "recent quiet", true, testNow.Add(-time.Hour))
	popular := f.addVideo(1, "recent popular", true, testNow.Add(-2*time.Hour))
	popular.Views = 500
	f.videos.videos[2] = popular

	svc := f.service(WithClock(fixedClock))
	page, err := svc.TrendingVideos(context.Background(), 0, 1, 10)
	require.NoError(t, err)

	// The week-old viral video never appears, whatever its score
	require.Len(t, page.Items, 2)
	assert.Equal(t, popular.ID.Hex(), page.Items[0].ID)
	assert.Equal(t, 500.0, page.Items[0].TrendingScore)
	assert.Equal(t, quiet.ID.Hex(), page.Items[1].ID)
}

func TestRecommendedVideosExcludesOwnAndRanks(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")
	f.addUser(2, "bob")

	mine := f.addVideo(1, "my own", true, testNow)
	mine.Views = 9999
	f.videos.videos[0] = mine

	low := f.addVideo(2, "low", true, testNow)
	high := f.addVideo(2, "high", true, testNow)
	high.Views = 100
	f.videos.videos[2] = high

	// Zero noise makes the ordering purely popularity-driven
	svc := f.service(WithNoise(func() float64 { return 0 }))
	page, err := svc.RecommendedVideos(context.Background(), 1, 1, 10)
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, high.ID.Hex(), page.Items[0].ID)
	assert.Equal(t, low.ID.Hex(), page.Items[1].ID)
	for _, v := range page.Items {
		assert.NotEqual(t, mine.ID.Hex(), v.ID)
	}
}

func TestSubscriptionFeedFlattensBeforePagination(t *testing.T) {
	f := newFixture()
	f.addUser(1, "viewer")
	f.addUser(2, "chan-a")
	f.addUser(3, "chan-b")
	f.addUser(4, "not-subscribed")

	v1 := f.addVideo(2, "a-oldest", true, testNow.Add(-3*time.Hour))
	v2 := f.addVideo(3, "b-middle", true, testNow.Add(-2*time.Hour))
	v3 := f.addVideo(2, "a-newest", true, testNow.Add(-time.Hour))
	f.addVideo(2, "a-draft", false, testNow)
	f.addVideo(4, "stranger", true, testNow)

	f.subscriptions.subs = []models.Subscription{
		{SubscriberID: 1, ChannelID: 2, CreatedAt: testNow},
		{SubscriberID: 1, ChannelID: 3, CreatedAt: testNow},
	}

	svc := f.service()
	page, err := svc.SubscriptionFeed(context.Background(), 1, 1, 2)
	require.NoError(t, err)

	// Totals count videos across channels, not channels
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, v3.ID.Hex(), page.Items[0].ID)
	assert.Equal(t, v2.ID.Hex(), page.Items[1].ID)

	page2, err := svc.SubscriptionFeed(context.Background(), 1, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2.Items, 1)
	assert.Equal(t, v1.ID.Hex(), page2.Items[0].ID)
}

func TestToggleLikeValidatesTarget(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")
	video := f.addVideo(1, "v", true, testNow)
	svc := f.service()

	_, err := svc.ToggleLike(context.Background(), 1, models.LikeTarget{Kind: models.LikeTargetVideo, ID: "garbage"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ToggleLike(context.Background(), 1, models.LikeTarget{Kind: models.LikeTargetVideo, ID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ToggleLike(context.Background(), 1, models.LikeTarget{Kind: "reaction", ID: video.ID.Hex()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	res, err := svc.ToggleLike(context.Background(), 1, models.LikeTarget{Kind: models.LikeTargetVideo, ID: video.ID.Hex()})
	require.NoError(t, err)
	assert.True(t, res.Active)

	res, err = svc.ToggleLike(context.Background(), 1, models.LikeTarget{Kind: models.LikeTargetVideo, ID: video.ID.Hex()})
	require.NoError(t, err)
	assert.False(t, res.Active)
}

func TestToggleSubscriptionRules(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")
	f.addUser(2, "bob")
	svc := f.service()

	_, err := svc.ToggleSubscription(1, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ToggleSubscription(1, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	res, err := svc.ToggleSubscription(1, 2)
	require.NoError(t, err)
	assert.True(t, res.Active)

	res, err = svc.ToggleSubscription(1, 2)
	require.NoError(t, err)
	assert.False(t, res.Active)
}

func TestLikedVideosDropDanglingTargets(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")
	f.addUser(2, "bob")

	kept := f.addVideo(2, "still here", true, testNow)
	f.addLike(1, models.LikeTargetVideo, kept.ID.Hex(), testNow.Add(-time.Hour))
	// Like pointing at a deleted video
	f.addLike(1, models.LikeTargetVideo, primitive.NewObjectID().Hex(), testNow)

	svc := f.service()
	page, err := svc.LikedVideos(context.Background(), 1, 1, 10)
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, kept.ID.Hex(), page.Items[0].Video.ID)
	assert.Equal(t, 1, page.TotalItems)
}

func TestLikeStatsFor(t *testing.T) {
	f := newFixture()
	f.addLike(1, models.LikeTargetVideo, primitive.NewObjectID().Hex(), testNow)
	f.addLike(1, models.LikeTargetVideo, primitive.NewObjectID().Hex(), testNow)
	f.addLike(1, models.LikeTargetTweet, primitive.NewObjectID().Hex(), testNow)
	f.addLike(2, models.LikeTargetComment, primitive.NewObjectID().Hex(), testNow)

	svc := f.service()
	stats, err := svc.LikeStatsFor(1)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.VideosLiked)
	assert.Equal(t, int64(0), stats.CommentsLiked)
	assert.Equal(t, int64(1), stats.TweetsLiked)
	assert.Equal(t, int64(3), stats.TotalLikes)
}

func TestPlaylistMembersPublishedOnlyInStoredOrder(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")

	second := f.addVideo(1, "second", true, testNow.Add(-time.Hour))
	second.Views = 10
	second.Duration = 60
	f.videos.videos[0] = second

	first := f.addVideo(1, "first", true, testNow)
	first.Views = 5
	first.Duration = 30
	first.ThumbnailURL = "https://cdn.example.com/first.jpg"
	f.videos.videos[1] = first

	draft := f.addVideo(1, "draft", false, testNow)

	f.playlists.playlists = []models.Playlist{{
		ID:      primitive.NewObjectID(),
		OwnerID: 1,
		Name:    "mix",
		VideoIDs: []primitive.ObjectID{
			first.ID, draft.ID, second.ID, primitive.NewObjectID(),
		},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}}

	svc := f.service()
	detail, err := svc.PlaylistByID(context.Background(), f.playlists.playlists[0].ID.Hex())
	require.NoError(t, err)

	// Draft and dangling references are invisible; stored order survives
	require.Len(t, detail.Videos, 2)
	assert.Equal(t, first.ID.Hex(), detail.Videos[0].ID)
	assert.Equal(t, second.ID.Hex(), detail.Videos[1].ID)
	assert.Equal(t, 2, detail.TotalVideos)
	assert.Equal(t, int64(15), detail.TotalViews)
	assert.Equal(t, 90.0, detail.TotalDuration)

	cards, err := svc.UserPlaylists(context.Background(), 1, 1, 10)
	require.NoError(t, err)
	require.Len(t, cards.Items, 1)
	assert.Equal(t, 2, cards.Items[0].TotalVideos)
	assert.Equal(t, "https://cdn.example.com/first.jpg", cards.Items[0].FirstVideoThumbnail)
}

func TestChannelAnalyticsBucketsByDay(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")

	day1a := f.addVideo(1, "d1a", true, testNow.Add(-49*time.Hour))
	day1a.Views = 10
	f.videos.videos[0] = day1a
	day1b := f.addVideo(1, "d1b", true, testNow.Add(-50*time.Hour))
	day1b.Views = 5
	f.videos.videos[1] = day1b
	day2 := f.addVideo(1, "d2", true, testNow.Add(-2*time.Hour))
	f.addVideo(1, "ancient", true, testNow.Add(-40*24*time.Hour))

	f.addLike(2, models.LikeTargetVideo, day2.ID.Hex(), testNow)
	f.comments.comments = []models.Comment{{
		ID:        primitive.NewObjectID(),
		VideoID:   day2.ID,
		OwnerID:   2,
		Content:   "nice",
		CreatedAt: testNow,
	}}

	svc := f.service(WithClock(fixedClock))
	buckets, err := svc.ChannelAnalytics(context.Background(), 1, 30)
	require.NoError(t, err)

	require.Len(t, buckets, 2)
	// Ascending date order
	assert.Equal(t, "2026-08-26", buckets[0].Date)
	assert.Equal(t, 2, buckets[0].VideosPublished)
	assert.Equal(t, int64(15), buckets[0].TotalViews)

	assert.Equal(t, "2026-08-28", buckets[1].Date)
	assert.Equal(t, 1, buckets[1].VideosPublished)
	assert.Equal(t, 1, buckets[1].TotalLikes)
	assert.Equal(t, 1, buckets[1].TotalComments)
}

func TestChannelStatsAndTopVideos(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")
	f.addUser(2, "bob")

	f.addVideo(1, "quiet", true, testNow)
	busy := f.addVideo(1, "busy", true, testNow.Add(-time.Hour))
	busy.Views = 10
	f.videos.videos[1] = busy

	f.addLike(2, models.LikeTargetVideo, busy.ID.Hex(), testNow)
	f.comments.comments = []models.Comment{{
		ID:      primitive.NewObjectID(),
		VideoID: busy.ID,
		OwnerID: 2,
		Content: "hi",
	}}
	f.subscriptions.subs = []models.Subscription{{SubscriberID: 2, ChannelID: 1, CreatedAt: testNow}}

	svc := f.service()
	stats, err := svc.ChannelStatsFor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalVideos)
	assert.Equal(t, int64(10), stats.TotalViews)
	assert.Equal(t, 1, stats.TotalLikes)
	assert.Equal(t, 1, stats.TotalSubscribers)

	top, err := svc.TopPerformingVideos(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, busy.ID.Hex(), top[0].ID)
	// views*1 + likes*5 + comments*10
	assert.Equal(t, 25.0, top[0].EngagementScore)
}

func TestTweetViewsJoin(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")

	tweet := models.Tweet{
		ID:        primitive.NewObjectID(),
		OwnerID:   1,
		Content:   "hello world",
		CreatedAt: testNow,
	}
	f.tweets.tweets = []models.Tweet{tweet}
	f.addLike(2, models.LikeTargetTweet, tweet.ID.Hex(), testNow)

	svc := f.service()
	got, err := svc.TweetByID(context.Background(), 2, tweet.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, "hello world", got.Content)
	assert.Equal(t, 1, got.LikesCount)
	assert.True(t, got.IsLiked)
	require.NotNil(t, got.Owner)
	assert.Equal(t, "alice", got.Owner.Username)

	_, err = svc.UserTweets(context.Background(), 0, 42, 1, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMySubscriptionsLatestVideo(t *testing.T) {
	f := newFixture()
	f.addUser(1, "viewer")
	f.addUser(2, "channel")

	f.addVideo(2, "older", true, testNow.Add(-2*time.Hour))
	latest := f.addVideo(2, "latest", true, testNow.Add(-time.Hour))
	f.addVideo(2, "draft newer", false, testNow)

	f.subscriptions.subs = []models.Subscription{{SubscriberID: 1, ChannelID: 2, CreatedAt: testNow}}

	svc := f.service()
	page, err := svc.MySubscriptions(context.Background(), 1, 1, 10)
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	ch := page.Items[0].Channel
	require.NotNil(t, ch)
	assert.Equal(t, "channel", ch.Username)
	assert.Equal(t, 1, ch.SubscribersCount)
	require.NotNil(t, ch.LatestVideo)
	// The unpublished upload never becomes the teaser
	assert.Equal(t, latest.ID.Hex(), ch.LatestVideo.ID)
}

func TestVideoCommentsRequireExistingVideo(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")
	video := f.addVideo(1, "v", true, testNow)

	f.comments.comments = []models.Comment{
		{ID: primitive.NewObjectID(), VideoID: video.ID, OwnerID: 1, Content: "first", CreatedAt: testNow},
	}

	svc := f.service()
	page, err := svc.VideoComments(context.Background(), 0, video.ID.Hex(), 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "first", page.Items[0].Content)

	_, err = svc.VideoComments(context.Background(), 0, primitive.NewObjectID().Hex(), 1, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublicPlaylistsRankNonEmptyByViews(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")

	low := f.addVideo(1, "low", true, testNow.Add(-time.Hour))
	low.Views = 5
	f.videos.videos[0] = low

	high := f.addVideo(1, "high", true, testNow)
	high.Views = 500
	f.videos.videos[1] = high

	draft := f.addVideo(1, "draft", false, testNow)

	f.playlists.playlists = []models.Playlist{
		{ID: primitive.NewObjectID(), OwnerID: 1, Name: "empty", CreatedAt: testNow, UpdatedAt: testNow},
		{ID: primitive.NewObjectID(), OwnerID: 1, Name: "drafts only",
			VideoIDs: []primitive.ObjectID{draft.ID}, CreatedAt: testNow, UpdatedAt: testNow},
		{ID: primitive.NewObjectID(), OwnerID: 1, Name: "low mix",
			VideoIDs: []primitive.ObjectID{low.ID}, CreatedAt: testNow, UpdatedAt: testNow},
		{ID: primitive.NewObjectID(), OwnerID: 1, Name: "high mix", Description: "bangers",
			VideoIDs: []primitive.ObjectID{high.ID}, CreatedAt: testNow, UpdatedAt: testNow},
	}

	svc := f.service()
	page, err := svc.PublicPlaylists(context.Background(), Filters{}, 1, 10)
	require.NoError(t, err)

	// Playlists without a visible member never reach the catalogue; the
	// rest rank by aggregate views
	require.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalItems)
	assert.Equal(t, "high mix", page.Items[0].Name)
	assert.Equal(t, "low mix", page.Items[1].Name)

	found, err := svc.PublicPlaylists(context.Background(), Filters{Query: "bangers"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "high mix", found.Items[0].Name)
}

func TestLikedVideosPublishedOnly(t *testing.T) {
	f := newFixture()
	f.addUser(1, "alice")
	f.addUser(2, "bob")

	kept := f.addVideo(2, "kept", true, testNow.Add(-2*time.Hour))
	withdrawn := f.addVideo(2, "withdrawn", false, testNow.Add(-time.Hour))

	f.addLike(1, models.LikeTargetVideo, kept.ID.Hex(), testNow.Add(-time.Hour))
	f.addLike(1, models.LikeTargetVideo, withdrawn.ID.Hex(), testNow)

	svc := f.service()
	page, err := svc.LikedVideos(context.Background(), 1, 1, 10)
	require.NoError(t, err)

	// A video pulled back to draft after the like vanishes from the listing
	require.Len(t, page.Items, 1)
	assert.Equal(t, kept.ID.Hex(), page.Items[0].Video.ID)
	assert.Equal(t, 1, page.TotalItems)
}

func TestRecentActivitySubscribersNewestFirst(t *testing.T) {
	f := newFixture()
	f.addUser(1, "channel")
	f.addUser(2, "early")
	f.addUser(3, "middle")
	f.addUser(4, "late")

	// Stored oldest first; the listing must not lean on source order
	f.subscriptions.subs = []models.Subscription{
		{SubscriberID: 2, ChannelID: 1, CreatedAt: testNow.Add(-3 * time.Hour)},
		{SubscriberID: 3, ChannelID: 1, CreatedAt: testNow.Add(-2 * time.Hour)},
		{SubscriberID: 4, ChannelID: 1, CreatedAt: testNow.Add(-time.Hour)},
	}

	svc := f.service()
	activity, err := svc.RecentActivity(context.Background(), 1, 2)
	require.NoError(t, err)

	require.Len(t, activity.RecentSubscribers, 2)
	assert.Equal(t, "late", activity.RecentSubscribers[0].SubscriberName)
	assert.Equal(t, "middle", activity.RecentSubscribers[1].SubscriberName)
}
