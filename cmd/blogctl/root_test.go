package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-engagement/internal/domain"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	article := domain.Article{
		ID:          "A1",
		Title:       "Go at scale",
		Content:     "Body",
		LikesCount:  3,
		SharesCount: 2,
		CreatedAt:   time.Now().Add(-time.Hour),
	}
	liked := false

	mux := http.NewServeMux()
	mux.HandleFunc("/articles/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/articles/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("X-Next-Page-Token", "2")
		_ = json.NewEncoder(w).Encode([]domain.Article{article})
	})
	mux.HandleFunc("/articles/A1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(article)
	})
	mux.HandleFunc("/articles/A1/comments", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Comment{})
	})
	mux.HandleFunc("/articles/A1/stats", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(article.Counters())
	})
	mux.HandleFunc("/articles/A1/like", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Device-ID"))
		if r.Method == http.MethodGet {
			_ = json.NewEncoder(w).Encode(domain.LikeResult{Liked: liked, LikesCount: article.LikesCount})
			return
		}
		liked = !liked
		if liked {
			article.LikesCount++
		} else {
			article.LikesCount--
		}
		_ = json.NewEncoder(w).Encode(domain.LikeResult{Liked: liked, LikesCount: article.LikesCount})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListAndHistory(t *testing.T) {
	srv := fakeAPI(t)
	state := filepath.Join(t.TempDir(), "state.json")

	out, _, err := run(t, "list", "-q", "go", "--api", srv.URL, "--state", state)
	require.NoError(t, err)
	assert.Contains(t, out, "♡ 3")
	assert.Contains(t, out, "Go at scale")
	assert.Contains(t, out, "More: --page 2")

	out, _, err = run(t, "history", "--api", srv.URL, "--state", state)
	require.NoError(t, err)
	assert.Equal(t, "go\n", out)
}

func TestLikeTwice(t *testing.T) {
	srv := fakeAPI(t)
	state := filepath.Join(t.TempDir(), "state.json")

	out, errOut, err := run(t, "like", "A1", "--api", srv.URL, "--state", state)
	require.NoError(t, err)
	assert.Equal(t, "♥ 4  Go at scale\n", out)
	assert.Contains(t, errOut, "Article liked!")

	out, _, err = run(t, "like", "A1", "--api", srv.URL, "--state", state)
	require.NoError(t, err)
	assert.Equal(t, "♡ 3  Go at scale\n", out)
}

func TestUnknownArticle(t *testing.T) {
	srv := fakeAPI(t)
	state := filepath.Join(t.TempDir(), "state.json")

	_, errOut, err := run(t, "show", "missing", "--api", srv.URL, "--state", state)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, errOut, "Article not found")
}

func TestShowFollowsServerLikeState(t *testing.T) {
	srv := fakeAPI(t)
	state := filepath.Join(t.TempDir(), "state.json")
	other := filepath.Join(t.TempDir(), "state.json")

	_, _, err := run(t, "like", "A1", "--api", srv.URL, "--state", state)
	require.NoError(t, err)

	// a second state file stands in for the same device after local state was lost
	out, _, err := run(t, "show", "A1", "--api", srv.URL, "--state", other)
	require.NoError(t, err)
	assert.Contains(t, out, "♥ 4")

	out, _, err = run(t, "stats", "A1", "--api", srv.URL, "--state", other)
	require.NoError(t, err)
	assert.Equal(t, "likes 4  comments 0  shares 2\n", out)
}
