package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statePath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "nested", "state.json")
}

func readState(t *testing.T, path string) state {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var st state
	require.NoError(t, json.Unmarshal(data, &st))
	return st
}

func TestOpen_CreatesDeviceID(t *testing.T) {
	path := statePath(t)

	s, err := Open(path)
	require.NoError(t, err)

	_, err = uuid.Parse(s.DeviceID())
	require.NoError(t, err)

	st := readState(t, path)
	assert.Equal(t, s.DeviceID(), st.DeviceID)
	assert.Empty(t, st.LikedArticles)

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, s.DeviceID(), reopened.DeviceID())
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestStore_Likes(t *testing.T) {
	path := statePath(t)
	s, err := Open(path)
	require.NoError(t, err)

	assert.False(t, s.IsLiked("a1"))

	require.NoError(t, s.MarkLiked("a1"))
	require.NoError(t, s.MarkLiked("a1"))
	require.NoError(t, s.MarkLiked("a2"))
	assert.True(t, s.IsLiked("a1"))
	assert.Equal(t, []string{"a1", "a2"}, readState(t, path).LikedArticles)

	require.NoError(t, s.MarkUnliked("a1"))
	require.NoError(t, s.MarkUnliked("missing"))
	assert.False(t, s.IsLiked("a1"))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.False(t, reopened.IsLiked("a1"))
	assert.True(t, reopened.IsLiked("a2"))
}

func TestStore_SearchHistory(t *testing.T) {
	s, err := Open(statePath(t))
	require.NoError(t, err)

	require.NoError(t, s.AddSearch("golang"))
	require.NoError(t, s.AddSearch("Rust"))
	require.NoError(t, s.AddSearch("  "))
	require.NoError(t, s.AddSearch("GoLang"))

	assert.Equal(t, []string{"GoLang", "Rust"}, s.RecentSearches(""))
	assert.Equal(t, []string{"GoLang"}, s.RecentSearches("go"))
	assert.Empty(t, s.RecentSearches("python"))
}

func TestStore_SearchHistoryIsCapped(t *testing.T) {
	path := statePath(t)
	s, err := Open(path)
	require.NoError(t, err)

	for i := 0; i < MaxSearchHistory+5; i++ {
		require.NoError(t, s.AddSearch(fmt.Sprintf("term %d", i)))
	}

	recent := s.RecentSearches("")
	require.Len(t, recent, MaxSearchHistory)
	assert.Equal(t, fmt.Sprintf("term %d", MaxSearchHistory+4), recent[0])
	assert.Len(t, readState(t, path).SearchHistory, MaxSearchHistory)
}

func TestStore_ConcurrentMarks(t *testing.T) {
	path := statePath(t)
	s, err := Open(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.MarkLiked(fmt.Sprintf("a%02d", i)))
		}(i)
	}
	wg.Wait()

	assert.Len(t, readState(t, path).LikedArticles, 20)
}
