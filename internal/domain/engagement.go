package domain

import "time"

// AnonymousDeviceID is used for like toggles that carry no device token.
// All such calls share one like slot per article, so they alternate between
// liked and unliked.
const AnonymousDeviceID = "anonymous"

// LikeResult is the like state of an article for one device.
type LikeResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// ShareResult carries the data a client needs to share an article.
type ShareResult struct {
	ShareURL    string `json:"share_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SharesCount int64  `json:"shares_count"`
}

// EventType identifies an engagement event.
type EventType string

const (
	EventLikeToggled   EventType = "like_toggled"
	EventArticleShared EventType = "article_shared"
	EventCommentPosted EventType = "comment_posted"
)

// EngagementEvent is published after an engagement mutation commits.
type EngagementEvent struct {
	Type       EventType `json:"type"`
	ArticleID  string    `json:"article_id"`
	DeviceID   string    `json:"device_id,omitempty"`
	Liked      *bool     `json:"liked,omitempty"`
	Count      int64     `json:"count"`
	OccurredAt time.Time `json:"occurred_at"`
}
