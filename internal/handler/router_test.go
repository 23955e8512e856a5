package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-engagement/internal/domain"
	"blog-engagement/internal/middleware"
	"blog-engagement/internal/mocks"
)

func newTestRouter(t *testing.T, basePath string, origins []string) (http.Handler, *mocks.MockArticleServiceInterface, *mocks.MockEngagementServiceInterface) {
	articles := mocks.NewMockArticleServiceInterface(t)
	engagement := mocks.NewMockEngagementServiceInterface(t)
	router := NewRouter(RouterConfig{
		BasePath:    basePath,
		CORSOrigins: origins,
		Articles:    NewArticleHandler(articles),
		Engagement:  NewEngagementHandler(engagement),
		Health:      NewHealthHandler(fakePinger{}, nil),
	})
	return router, articles, engagement
}

func TestNewRouter_BasePath(t *testing.T) {
	router, articles, _ := newTestRouter(t, "/api/v1", []string{"*"})
	article := testArticle("a1")
	articles.EXPECT().GetArticle(mock.Anything, "a1").Return(&article, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/a1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles/a1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// health checks stay at the root
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// so does the news API
	articles.EXPECT().GetArticle(mock.Anything, "n1").Return(nil, domain.ErrArticleNotFound)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/news/edited/n1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"News not found"}`, w.Body.String())
}

func TestNewRouter_TopIsNotAnID(t *testing.T) {
	router, articles, _ := newTestRouter(t, "", nil)
	articles.EXPECT().TopArticles(mock.Anything, 0).Return([]domain.Article{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles/top", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestNewRouter_DeviceIDValidation(t *testing.T) {
	router, _, _ := newTestRouter(t, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/articles/a1/like", nil)
	req.Header.Set(middleware.DeviceIDHeader, "bogus")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewRouter_CORS(t *testing.T) {
	t.Run("allowed origin", func(t *testing.T) {
		router, _, _ := newTestRouter(t, "", []string{"https://blog.example.com"})

		req := httptest.NewRequest(http.MethodOptions, "/articles/a1/like", nil)
		req.Header.Set("Origin", "https://blog.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://blog.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origin is refused", func(t *testing.T) {
		router, _, _ := newTestRouter(t, "", []string{"https://blog.example.com"})

		req := httptest.NewRequest(http.MethodOptions, "/articles/a1/like", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
