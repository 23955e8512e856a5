package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"blog-engagement/internal/domain"
	"blog-engagement/internal/service"
)

// ArticleHandler handles article catalogue requests, including the legacy
// news endpoints.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
	now            func() time.Time
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		now:            time.Now,
	}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID              string   `json:"id"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	MetaDescription *string  `json:"meta_description,omitempty"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	Tags            []string `json:"tags,omitempty"`
	LikesCount      int64    `json:"likes_count"`
	CommentsCount   int64    `json:"comments_count"`
	SharesCount     int64    `json:"shares_count"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	TimeAgo         string   `json:"time_ago"`
}

// NewsResponse represents an article in the legacy news format.
type NewsResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	OriginalText string `json:"original_text"`
	Thumbnail    string `json:"thumbnail"`
	CreatedAt    string `json:"created_at"`
	TimeAgo      string `json:"time_ago"`
}

// ArticleID is a client-supplied article id. Older clients send numeric ids,
// so a JSON number is accepted and kept as its decimal text.
type ArticleID string

// UnmarshalJSON accepts a JSON string, number or null.
func (id *ArticleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ArticleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ArticleID(n.String())
	return nil
}

// CreateArticleRequest is the body of POST /articles/. The content may also
// be sent as original_text.
type CreateArticleRequest struct {
	ID              ArticleID `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	OriginalText    string    `json:"original_text"`
	MetaDescription *string   `json:"meta_description"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	Thumbnail       string    `json:"thumbnail"`
	Tags            []string  `json:"tags"`
}

func (r *CreateArticleRequest) toArticle() *domain.Article {
	content := r.Content
	if strings.TrimSpace(content) == "" {
		content = r.OriginalText
	}
	thumbnail := r.ThumbnailURL
	if thumbnail == "" {
		thumbnail = r.Thumbnail
	}
	return &domain.Article{
		ID:              string(r.ID),
		Slug:            r.Slug,
		Title:           r.Title,
		Content:         content,
		MetaDescription: r.MetaDescription,
		ThumbnailURL:    thumbnail,
		Tags:            r.Tags,
	}
}

func (h *ArticleHandler) timeAgo(t time.Time) string {
	if t.IsZero() {
		return UnknownTimeAgo
	}
	return humanize.RelTime(t, h.now(), "ago", "from now")
}

func (h *ArticleHandler) toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:              a.ID,
		Slug:            a.Slug,
		Title:           a.Title,
		Content:         a.Content,
		MetaDescription: a.MetaDescription,
		ThumbnailURL:    a.ThumbnailURL,
		Tags:            a.Tags,
		LikesCount:      a.LikesCount,
		CommentsCount:   a.CommentsCount,
		SharesCount:     a.SharesCount,
		CreatedAt:       a.CreatedAt.Format(TimeFormat),
		UpdatedAt:       a.UpdatedAt.Format(TimeFormat),
		TimeAgo:         h.timeAgo(a.CreatedAt),
	}
}

func (h *ArticleHandler) toArticleResponses(articles []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, h.toArticleResponse(&articles[i]))
	}
	return out
}

func (h *ArticleHandler) toNewsResponse(a *domain.Article) NewsResponse {
	return NewsResponse{
		ID:           a.ID,
		Title:        a.Title,
		OriginalText: a.Content,
		Thumbnail:    a.ThumbnailURL,
		CreatedAt:    a.CreatedAt.Format(TimeFormat),
		TimeAgo:      h.timeAgo(a.CreatedAt),
	}
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondBadRequest(c, name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}

// ListArticles handles GET /articles/
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	pageSize, ok := queryInt(c, "page_size")
	if !ok {
		return
	}

	page, err := h.articleService.ListArticles(c.Request.Context(), c.Query("q"), pageSize, c.Query("page_token"))
	if err != nil {
		respondError(c, err)
		return
	}

	if page.NextPageToken != "" {
		c.Header(NextPageTokenHeader, page.NextPageToken)
	}
	c.JSON(http.StatusOK, h.toArticleResponses(page.Articles))
}

// CreateArticle handles POST /articles/
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	article, err := h.articleService.StoreArticle(c.Request.Context(), req.toArticle())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.toArticleResponse(article))
}

// GetArticle handles GET /articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toArticleResponse(article))
}

// TopArticles handles GET /articles/top
func (h *ArticleHandler) TopArticles(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	articles, err := h.articleService.TopArticles(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toArticleResponses(articles))
}

// StoreNews handles POST /api/news/store. Unlike CreateArticle it requires the
// caller to supply the id.
func (h *ArticleHandler) StoreNews(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	article := req.toArticle()
	if strings.TrimSpace(article.ID) == "" || strings.TrimSpace(article.Title) == "" ||
		strings.TrimSpace(article.Content) == "" || strings.TrimSpace(article.ThumbnailURL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	if _, err := h.articleService.StoreArticle(c.Request.Context(), article); err != nil {
		switch domain.ErrorKind(err) {
		case "conflict":
			c.JSON(http.StatusConflict, gin.H{"message": "News already exists"})
		case "invalid_input":
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "News stored successfully!"})
}

// ListNews handles GET /api/news/edited
func (h *ArticleHandler) ListNews(c *gin.Context) {
	// unparseable values fall back to the defaults, as the old clients expect
	skip, _ := strconv.Atoi(c.Query("skip"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	if skip < 0 {
		skip = 0
	}

	articles, err := h.articleService.ListNews(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]NewsResponse, 0, len(articles))
	for i := range articles {
		results = append(results, h.toNewsResponse(&articles[i]))
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetNews handles GET /api/news/edited/:id
func (h *ArticleHandler) GetNews(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		if domain.ErrorKind(err) == "not_found" {
			c.JSON(http.StatusNotFound, gin.H{"message": "News not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toNewsResponse(article))
}
