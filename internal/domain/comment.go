package domain

import "time"

// AnonymousUserID is stored when a comment is posted without a user id.
const AnonymousUserID = "anonymous"

// MaxCommentWords is the maximum number of words in a comment.
const MaxCommentWords = 500

// Comment represents a comment on an article.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment is the input for posting a comment.
type NewComment struct {
	Text   string `json:"text"`
	UserID string `json:"user_id,omitempty"`
}
