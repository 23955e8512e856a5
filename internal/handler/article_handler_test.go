package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-engagement/internal/domain"
	"blog-engagement/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestArticleHandler(t *testing.T) (*ArticleHandler, *mocks.MockArticleServiceInterface) {
	mockService := mocks.NewMockArticleServiceInterface(t)
	h := NewArticleHandler(mockService)
	h.now = func() time.Time { return fixedNow }
	return h, mockService
}

func testArticle(id string) domain.Article {
	return domain.Article{
		ID:            id,
		Slug:          "slug-" + id,
		Title:         "Title " + id,
		Content:       "Content " + id,
		ThumbnailURL:  "https://cdn.example.com/" + id + ".jpg",
		LikesCount:    3,
		CommentsCount: 1,
		SharesCount:   2,
		CreatedAt:     fixedNow.Add(-3 * time.Hour),
		UpdatedAt:     fixedNow.Add(-time.Hour),
	}
}

func TestArticleHandler_GetArticle(t *testing.T) {
	t.Run("returns article with time ago", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		article := testArticle("a1")
		mockService.EXPECT().GetArticle(mock.Anything, "a1").Return(&article, nil)

		router := gin.New()
		router.GET("/articles/:id", h.GetArticle)

		req := httptest.NewRequest(http.MethodGet, "/articles/a1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "a1", response.ID)
		assert.Equal(t, int64(3), response.LikesCount)
		assert.Equal(t, int64(1), response.CommentsCount)
		assert.Equal(t, int64(2), response.SharesCount)
		assert.Equal(t, "3 hours ago", response.TimeAgo)
		assert.Equal(t, article.CreatedAt.Format(TimeFormat), response.CreatedAt)
	})

	t.Run("unknown article is 404 not_found", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().GetArticle(mock.Anything, "nope").Return(nil, domain.ErrArticleNotFound)

		router := gin.New()
		router.GET("/articles/:id", h.GetArticle)

		req := httptest.NewRequest(http.MethodGet, "/articles/nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "not_found", response.Error)
	})

	t.Run("internal error hides details", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().GetArticle(mock.Anything, "a1").Return(nil, errors.New("pq: password authentication failed"))

		router := gin.New()
		router.GET("/articles/:id", h.GetArticle)

		req := httptest.NewRequest(http.MethodGet, "/articles/a1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "password")
		assert.Contains(t, w.Body.String(), `"error":"internal"`)
	})
}

func TestArticleHandler_ListArticles(t *testing.T) {
	t.Run("passes query and sets next page header", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().ListArticles(mock.Anything, "golang", 2, "3").
			Return(&domain.ArticlePage{Articles: []domain.Article{testArticle("a1"), testArticle("a2")}, NextPageToken: "4"}, nil)

		router := gin.New()
		router.GET("/articles/", h.ListArticles)

		req := httptest.NewRequest(http.MethodGet, "/articles/?q=golang&page_size=2&page_token=3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "4", w.Header().Get(NextPageTokenHeader))

		var response []ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 2)
		assert.Equal(t, "a2", response[1].ID)
	})

	t.Run("last page has no header and empty list is an array", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().ListArticles(mock.Anything, "", 0, "").
			Return(&domain.ArticlePage{Articles: []domain.Article{}}, nil)

		router := gin.New()
		router.GET("/articles/", h.ListArticles)

		req := httptest.NewRequest(http.MethodGet, "/articles/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get(NextPageTokenHeader))
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("rejects bad page size", func(t *testing.T) {
		h, _ := newTestArticleHandler(t)

		router := gin.New()
		router.GET("/articles/", h.ListArticles)

		req := httptest.NewRequest(http.MethodGet, "/articles/?page_size=lots", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_input")
	})

	t.Run("bad page token from the service", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().ListArticles(mock.Anything, "", 0, "x").
			Return(nil, domain.ErrInvalidInput)

		router := gin.New()
		router.GET("/articles/", h.ListArticles)

		req := httptest.NewRequest(http.MethodGet, "/articles/?page_token=x", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestArticleHandler_CreateArticle(t *testing.T) {
	t.Run("accepts original_text as content", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().StoreArticle(mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.Content == "Body text" && a.ThumbnailURL == "https://cdn.example.com/t.jpg"
		})).RunAndReturn(func(_ context.Context, a *domain.Article) (*domain.Article, error) {
			a.ID = "new-id"
			a.CreatedAt = fixedNow
			return a, nil
		})

		router := gin.New()
		router.POST("/articles/", h.CreateArticle)

		body := `{"title":"Hello","original_text":"Body text","thumbnail":"https://cdn.example.com/t.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/articles/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var response ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "new-id", response.ID)
		assert.Equal(t, "now", response.TimeAgo)
	})

	t.Run("conflict", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().StoreArticle(mock.Anything, mock.Anything).Return(nil, domain.ErrArticleExists)

		router := gin.New()
		router.POST("/articles/", h.CreateArticle)

		body := `{"id":"a1","title":"Hello","content":"Body","thumbnail_url":"https://cdn.example.com/t.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/articles/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"error":"conflict"`)
	})

	t.Run("numeric id", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().StoreArticle(mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.ID == "123"
		})).RunAndReturn(func(_ context.Context, a *domain.Article) (*domain.Article, error) {
			return a, nil
		})

		router := gin.New()
		router.POST("/articles/", h.CreateArticle)

		body := `{"id":123,"title":"Hello","content":"Body","thumbnail_url":"https://cdn.example.com/t.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/articles/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var response ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "123", response.ID)
	})

	t.Run("malformed json", func(t *testing.T) {
		h, _ := newTestArticleHandler(t)

		router := gin.New()
		router.POST("/articles/", h.CreateArticle)

		req := httptest.NewRequest(http.MethodPost, "/articles/", bytes.NewBufferString(`{"title":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestArticleHandler_TopArticles(t *testing.T) {
	h, mockService := newTestArticleHandler(t)
	mockService.EXPECT().TopArticles(mock.Anything, 5).Return([]domain.Article{testArticle("a9")}, nil)

	router := gin.New()
	router.GET("/articles/top", h.TopArticles)

	req := httptest.NewRequest(http.MethodGet, "/articles/top?limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response []ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "a9", response[0].ID)
}

func TestArticleHandler_LegacyNews(t *testing.T) {
	t.Run("store requires an id", func(t *testing.T) {
		h, _ := newTestArticleHandler(t)

		router := gin.New()
		router.POST("/api/news/store", h.StoreNews)

		body := `{"title":"Hello","original_text":"Body","thumbnail":"https://cdn.example.com/t.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/api/news/store", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Missing required fields"}`, w.Body.String())
	})

	t.Run("store", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().StoreArticle(mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.ID == "42" && a.Content == "Body"
		})).RunAndReturn(func(_ context.Context, a *domain.Article) (*domain.Article, error) {
			return a, nil
		})

		router := gin.New()
		router.POST("/api/news/store", h.StoreNews)

		body := `{"id":"42","title":"Hello","original_text":"Body","thumbnail":"https://cdn.example.com/t.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/api/news/store", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"News stored successfully!"}`, w.Body.String())
	})

	t.Run("store with numeric id", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().StoreArticle(mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.ID == "123" && a.Title == "T"
		})).RunAndReturn(func(_ context.Context, a *domain.Article) (*domain.Article, error) {
			return a, nil
		})

		router := gin.New()
		router.POST("/api/news/store", h.StoreNews)

		body := `{"id":123,"title":"T","original_text":"Body","thumbnail":"https://cdn.example.com/t.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/api/news/store", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"News stored successfully!"}`, w.Body.String())
	})

	t.Run("store rejects a boolean id", func(t *testing.T) {
		h, _ := newTestArticleHandler(t)

		router := gin.New()
		router.POST("/api/news/store", h.StoreNews)

		body := `{"id":true,"title":"T","original_text":"Body","thumbnail":"https://cdn.example.com/t.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/api/news/store", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store duplicate", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().StoreArticle(mock.Anything, mock.Anything).Return(nil, domain.ErrArticleExists)

		router := gin.New()
		router.POST("/api/news/store", h.StoreNews)

		body := `{"id":"42","title":"Hello","original_text":"Body","thumbnail":"https://cdn.example.com/t.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/api/news/store", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("list wraps results", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().ListNews(mock.Anything, 10, 0).Return([]domain.Article{testArticle("a1")}, nil)

		router := gin.New()
		router.GET("/api/news/edited", h.ListNews)

		req := httptest.NewRequest(http.MethodGet, "/api/news/edited?skip=10&limit=abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Results []NewsResponse `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Results, 1)
		assert.Equal(t, "Content a1", response.Results[0].OriginalText)
		assert.Equal(t, "https://cdn.example.com/a1.jpg", response.Results[0].Thumbnail)
		assert.Equal(t, "3 hours ago", response.Results[0].TimeAgo)
	})

	t.Run("get missing", func(t *testing.T) {
		h, mockService := newTestArticleHandler(t)
		mockService.EXPECT().GetArticle(mock.Anything, "x").Return(nil, domain.ErrArticleNotFound)

		router := gin.New()
		router.GET("/api/news/edited/:id", h.GetNews)

		req := httptest.NewRequest(http.MethodGet, "/api/news/edited/x", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"News not found"}`, w.Body.String())
	})
}

func TestArticleID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ArticleID
		wantErr bool
	}{
		{name: "string", input: `"a-1"`, want: "a-1"},
		{name: "integer", input: `123`, want: "123"},
		{name: "large integer keeps every digit", input: `9007199254740993`, want: "9007199254740993"},
		{name: "null", input: `null`, want: ""},
		{name: "boolean", input: `true`, wantErr: true},
		{name: "object", input: `{"id":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ArticleID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
