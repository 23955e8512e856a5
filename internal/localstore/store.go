// Package localstore persists per-device client state: the device token, the
// set of liked articles and recent searches.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MaxSearchHistory caps the number of remembered search terms.
const MaxSearchHistory = 10

// state is the on-disk layout of the state file.
type state struct {
	DeviceID      string   `json:"device_id"`
	LikedArticles []string `json:"liked_articles"`
	SearchHistory []string `json:"search_history"`
}

// Store is a LikeTracker backed by one JSON file. It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	path     string
	deviceID string
	liked    map[string]struct{}
	searches []string
}

// Open loads the state file at path, creating it with a fresh device id when
// it does not exist.
func Open(path string) (*Store, error) {
	s := &Store{
		path:  path,
		liked: make(map[string]struct{}),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read state file: %w", err)
	default:
		var st state
		if err := json.Unmarshal(data, &st); err != nil {
			return nil, fmt.Errorf("parse state file %s: %w", path, err)
		}
		s.deviceID = st.DeviceID
		for _, id := range st.LikedArticles {
			s.liked[id] = struct{}{}
		}
		s.searches = st.SearchHistory
		if len(s.searches) > MaxSearchHistory {
			s.searches = s.searches[:MaxSearchHistory]
		}
	}

	if _, err := uuid.Parse(s.deviceID); err != nil {
		s.deviceID = uuid.NewString()
		if err := s.save(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// DeviceID returns the persisted device token.
func (s *Store) DeviceID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deviceID
}

// IsLiked reports whether this device liked the article.
func (s *Store) IsLiked(articleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.liked[articleID]
	return ok
}

// MarkLiked records a like and persists it.
func (s *Store) MarkLiked(articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.liked[articleID]; ok {
		return nil
	}
	s.liked[articleID] = struct{}{}
	return s.save()
}

// MarkUnliked removes a like and persists it.
func (s *Store) MarkUnliked(articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.liked[articleID]; !ok {
		return nil
	}
	delete(s.liked, articleID)
	return s.save()
}

// AddSearch moves term to the front of the search history.
func (s *Store) AddSearch(term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	searches := make([]string, 0, MaxSearchHistory)
	searches = append(searches, term)
	for _, existing := range s.searches {
		if strings.EqualFold(existing, term) {
			continue
		}
		if len(searches) == MaxSearchHistory {
			break
		}
		searches = append(searches, existing)
	}
	s.searches = searches
	return s.save()
}

// RecentSearches returns remembered terms starting with prefix, most recent first.
func (s *Store) RecentSearches(prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.searches))
	for _, term := range s.searches {
		if strings.HasPrefix(strings.ToLower(term), prefix) {
			out = append(out, term)
		}
	}
	return out
}

// save writes the state through a temp file and rename so a crash never
// leaves a truncated file. Callers hold s.mu.
func (s *Store) save() error {
	liked := make([]string, 0, len(s.liked))
	for id := range s.liked {
		liked = append(liked, id)
	}
	sort.Strings(liked)

	searches := s.searches
	if searches == nil {
		searches = []string{}
	}

	data, err := json.MarshalIndent(state{
		DeviceID:      s.deviceID,
		LikedArticles: liked,
		SearchHistory: searches,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
