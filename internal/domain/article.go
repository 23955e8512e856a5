package domain

import "time"

// Article represents a published article or news item.
type Article struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	MetaDescription *string   `json:"meta_description,omitempty"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	Tags            []string  `json:"tags,omitempty"`
	LikesCount      int64     `json:"likes_count"`
	CommentsCount   int64     `json:"comments_count"`
	SharesCount     int64     `json:"shares_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Counters returns the engagement counters of the article.
func (a *Article) Counters() Counters {
	return Counters{
		Likes:    a.LikesCount,
		Comments: a.CommentsCount,
		Shares:   a.SharesCount,
	}
}

// Description returns the meta description, or the leading part of the content
// when no meta description is set.
func (a *Article) Description() string {
	if a.MetaDescription != nil && *a.MetaDescription != "" {
		return *a.MetaDescription
	}
	runes := []rune(a.Content)
	if len(runes) > DescriptionLength {
		return string(runes[:DescriptionLength])
	}
	return a.Content
}

// DescriptionLength is the number of content characters used as a fallback description.
const DescriptionLength = 150

// Counters holds the denormalized engagement counters of an article.
type Counters struct {
	Likes    int64 `json:"likes_count"`
	Comments int64 `json:"comments_count"`
	Shares   int64 `json:"shares_count"`
}

const (
	// DefaultPageSize is the page size used when none is requested.
	DefaultPageSize = 9
	// MaxPageSize caps the requested page size.
	MaxPageSize = 100
	// DefaultTopLimit is the number of ranked articles returned by default.
	DefaultTopLimit = 10
)

// ArticleQuery describes a search over articles.
type ArticleQuery struct {
	Query  string
	Limit  int
	Offset int
}

// ArticlePage is one page of an article listing.
type ArticlePage struct {
	Articles      []Article `json:"articles"`
	NextPageToken string    `json:"next_page_token,omitempty"`
}
