package views

import "time"

// Typed view-model variants returned by the pipelines. Each variant has a
// fixed shape; derived fields are computed at read time and never written
// back to the stores.

// OwnerProfile is the single-record owner projection attached to content.
// Nil when the owning user record is missing.
type OwnerProfile struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// ChannelProfile extends the owner projection with the nested
// subscriber join used on the video detail page.
type ChannelProfile struct {
	OwnerProfile
	SubscribersCount int  `json:"subscribers_count"`
	IsSubscribed     bool `json:"is_subscribed"`
}

type VideoView struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	MediaURL     string        `json:"media_url"`
	ThumbnailURL string        `json:"thumbnail_url"`
	Duration     float64       `json:"duration"`
	Views        int64         `json:"views"`
	Owner        *OwnerProfile `json:"owner"`
	LikesCount   int           `json:"likes_count"`
	IsLiked      bool          `json:"is_liked"`
	CreatedAt    time.Time     `json:"created_at"`
}

type VideoDetailView struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	MediaURL     string          `json:"media_url"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Duration     float64         `json:"duration"`
	Views        int64           `json:"views"`
	Owner        *ChannelProfile `json:"owner"`
	LikesCount   int             `json:"likes_count"`
	IsLiked      bool            `json:"is_liked"`
	IsPublished  bool            `json:"is_published"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OwnerVideoView is the channel-owner's own listing: unpublished videos
// included, comment counts and engagement attached.
type OwnerVideoView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	MediaURL        string    `json:"media_url"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	Duration        float64   `json:"duration"`
	Views           int64     `json:"views"`
	LikesCount      int       `json:"likes_count"`
	CommentsCount   int       `json:"comments_count"`
	EngagementScore float64   `json:"engagement_score"`
	IsPublished     bool      `json:"is_published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TrendingVideoView struct {
	VideoView
	TrendingScore float64 `json:"trending_score"`
}

type TweetView struct {
	ID         string        `json:"id"`
	Content    string        `json:"content"`
	Owner      *OwnerProfile `json:"owner"`
	LikesCount int           `json:"likes_count"`
	IsLiked    bool          `json:"is_liked"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type CommentView struct {
	ID        string        `json:"id"`
	VideoID   string        `json:"video_id"`
	Content   string        `json:"content"`
	Owner     *OwnerProfile `json:"owner"`
	CreatedAt time.Time     `json:"created_at"`
}

// VideoTeaser is the minimal video projection used inside nested joins.
type VideoTeaser struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type LikedVideo struct {
	LikedAt time.Time `json:"liked_at"`
	Video   VideoView `json:"video"`
}

type CommentWithVideo struct {
	CommentView
	Video *VideoTeaser `json:"video"`
}

type LikedComment struct {
	LikedAt time.Time        `json:"liked_at"`
	Comment CommentWithVideo `json:"comment"`
}

type LikedTweet struct {
	LikedAt time.Time `json:"liked_at"`
	Tweet   TweetView `json:"tweet"`
}

type LikeStats struct {
	TotalLikes    int64 `json:"total_likes"`
	VideosLiked   int64 `json:"videos_liked"`
	CommentsLiked int64 `json:"comments_liked"`
	TweetsLiked   int64 `json:"tweets_liked"`
}

type SubscriberView struct {
	Subscriber   *OwnerProfile `json:"subscriber"`
	SubscribedAt time.Time     `json:"subscribed_at"`
}

// ChannelCard is the channel projection on a user's subscription list.
type ChannelCard struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	DisplayName      string `json:"display_name"`
	AvatarURL        string `json:"avatar_url"`
	CoverURL         string `json:"cover_url,omitempty"`
	SubscribersCount int    `json:"subscribers_count"`
	VideosCount      int    `json:"videos_count"`
}

type SubscribedChannel struct {
	Channel      *ChannelCard `json:"channel"`
	SubscribedAt time.Time    `json:"subscribed_at"`
}

// ChannelSummary backs the "my subscriptions" sidebar: subscriber count
// plus the channel's latest published upload.
type ChannelSummary struct {
	ID               uint         `json:"id"`
	Username         string       `json:"username"`
	DisplayName      string       `json:"display_name"`
	AvatarURL        string       `json:"avatar_url"`
	SubscribersCount int          `json:"subscribers_count"`
	LatestVideo      *VideoTeaser `json:"latest_video"`
}

type MySubscription struct {
	Channel      *ChannelSummary `json:"channel"`
	SubscribedAt time.Time       `json:"subscribed_at"`
}

type PlaylistVideo struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	ThumbnailURL string        `json:"thumbnail_url"`
	Duration     float64       `json:"duration"`
	Views        int64         `json:"views"`
	Owner        *OwnerProfile `json:"owner"`
}

type PlaylistView struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Description         string        `json:"description"`
	Owner               *OwnerProfile `json:"owner"`
	TotalVideos         int           `json:"total_videos"`
	TotalViews          int64         `json:"total_views"`
	FirstVideoThumbnail string        `json:"first_video_thumbnail,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

type PlaylistDetailView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Owner         *OwnerProfile   `json:"owner"`
	Videos        []PlaylistVideo `json:"videos"`
	TotalVideos   int             `json:"total_videos"`
	TotalViews    int64           `json:"total_views"`
	TotalDuration float64         `json:"total_duration"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type VideoStats struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Views         int64     `json:"views"`
	TotalLikes    int       `json:"total_likes"`
	TotalComments int       `json:"total_comments"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
}

type TweetStats struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	TotalLikes int       `json:"total_likes"`
	CreatedAt  time.Time `json:"created_at"`
}

type ChannelStats struct {
	TotalVideos      int   `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalLikes       int   `json:"total_likes"`
	TotalSubscribers int   `json:"total_subscribers"`
}

// DailyAnalytics is one per-day bucket of a channel's recent activity.
type DailyAnalytics struct {
	Date            string `json:"date"` // YYYY-MM-DD
	VideosPublished int    `json:"videos_published"`
	TotalViews      int64  `json:"total_views"`
	TotalLikes      int    `json:"total_likes"`
	TotalComments   int    `json:"total_comments"`
}

type ActivityComment struct {
	Content       string    `json:"content"`
	VideoTitle    string    `json:"video_title"`
	CommenterName string    `json:"commenter_name"`
	CreatedAt     time.Time `json:"created_at"`
}

type ActivitySubscriber struct {
	SubscriberName   string    `json:"subscriber_name"`
	SubscriberAvatar string    `json:"subscriber_avatar"`
	SubscribedAt     time.Time `json:"subscribed_at"`
}

type RecentActivity struct {
	RecentComments    []ActivityComment    `json:"recent_comments"`
	RecentSubscribers []ActivitySubscriber `json:"recent_subscribers"`
}
