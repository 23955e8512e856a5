// Package articleview is the client-side article component: it loads
// articles, tracks like state per device, and handles likes, shares and
// comments, re-rendering from a single state value.
package articleview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"text/template"
	"time"

	"blog-engagement/internal/domain"
	"blog-engagement/internal/logger"
)

// DefaultTimeout bounds each API call made by the view.
const DefaultTimeout = 10 * time.Second

var (
	// ErrBusy is returned when a like toggle for the same article is in flight.
	ErrBusy = errors.New("request already in progress")
	// ErrNotLoaded is returned for actions on an article the view has not loaded.
	ErrNotLoaded = errors.New("article not loaded")
	// ErrShareCancelled is returned by a Sharer when the user dismissed the share sheet.
	ErrShareCancelled = errors.New("share cancelled")
)

// ArticleAPI is the subset of the engagement API used by the view.
type ArticleAPI interface {
	ListArticles(ctx context.Context, query string, pageSize int, pageToken string) (*domain.ArticlePage, error)
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	ToggleLike(ctx context.Context, id string) (domain.LikeResult, error)
	LikeStatus(ctx context.Context, id string) (domain.LikeResult, error)
	RecordShare(ctx context.Context, id string) (*domain.ShareResult, error)
	ListComments(ctx context.Context, id string) ([]domain.Comment, error)
	PostComment(ctx context.Context, id string, input domain.NewComment) (*domain.Comment, error)
}

// LikeTracker remembers which articles this device liked.
type LikeTracker interface {
	IsLiked(articleID string) bool
	MarkLiked(articleID string) error
	MarkUnliked(articleID string) error
}

// Sharer hands content to a native share target.
type Sharer interface {
	Share(ctx context.Context, content ShareContent) error
}

// Clipboard receives the share text when no native sharer is available.
type Clipboard interface {
	WriteAll(text string) error
}

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Notifier shows short messages to the user.
type Notifier interface {
	Notify(level Level, message string)
}

// ShareContent is what gets shared.
type ShareContent struct {
	Title string
	Text  string
	URL   string
	Image string
}

// ClipboardText is the text copied when sharing falls back to the clipboard.
func (c ShareContent) ClipboardText() string {
	return fmt.Sprintf("%s\n\n%s\n\nRead more: %s", c.Title, c.Text, c.URL)
}

// ShareMethod reports how an article was shared.
type ShareMethod string

const (
	ShareNative    ShareMethod = "native"
	ShareClipboard ShareMethod = "clipboard"
	ShareNone      ShareMethod = "none"
)

// Config configures a View. API, Tracker and Notifier are required.
type Config struct {
	API       ArticleAPI
	Tracker   LikeTracker
	Sharer    Sharer
	Clipboard Clipboard
	Notifier  Notifier
	Timeout   time.Duration
	Now       func() time.Time
}

// View holds the article list and detail state.
type View struct {
	cfg    Config
	list   *template.Template
	detail *template.Template

	mu    sync.Mutex
	state State
}

// New creates a View.
func New(cfg Config) (*View, error) {
	if cfg.API == nil || cfg.Tracker == nil || cfg.Notifier == nil {
		return nil, fmt.Errorf("articleview: api, tracker and notifier are required: %w", domain.ErrInvalidInput)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	v := &View{cfg: cfg}
	v.list, v.detail = v.templates()
	return v, nil
}

// State returns a copy of the current state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.clone()
}

func (v *View) apply(a action) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = reduce(v.state, a)
}

func (v *View) call(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, v.cfg.Timeout)
}

// fail notifies the user about err and returns it.
func (v *View) fail(action string, err error) error {
	var message string
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		message = "request timed out"
	case errors.Is(err, domain.ErrNotFound):
		message = "Article not found"
	case errors.Is(err, domain.ErrInvalidInput):
		message = err.Error()
	case errors.Is(err, domain.ErrTransient):
		message = "Service unavailable. Please try again."
	default:
		message = fmt.Sprintf("Failed to %s. Please try again.", action)
	}
	v.cfg.Notifier.Notify(LevelError, message)
	return err
}

// Load fetches one page of articles and replaces the list.
func (v *View) Load(ctx context.Context, query string, pageSize int, pageToken string) error {
	query = strings.TrimSpace(query)

	callCtx, cancel := v.call(ctx)
	defer cancel()

	page, err := v.cfg.API.ListArticles(callCtx, query, pageSize, pageToken)
	if err != nil {
		return v.fail("load articles", err)
	}

	v.apply(pageLoaded{
		query:    query,
		articles: page.Articles,
		liked:    v.cfg.Tracker.IsLiked,
		next:     page.NextPageToken,
	})
	return nil
}

// ShowArticles replaces the list with articles fetched elsewhere, such as the
// ranking.
func (v *View) ShowArticles(articles []domain.Article) {
	v.apply(pageLoaded{articles: articles, liked: v.cfg.Tracker.IsLiked})
}

// Card returns the loaded card of the article.
func (v *View) Card(articleID string) (Card, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	c := v.state.card(articleID)
	if c == nil {
		return Card{}, false
	}
	return *c, true
}

// Open loads an article and its comments into the detail view.
func (v *View) Open(ctx context.Context, articleID string) error {
	callCtx, cancel := v.call(ctx)
	defer cancel()

	article, err := v.cfg.API.GetArticle(callCtx, articleID)
	if err != nil {
		return v.fail("load article", err)
	}
	comments, err := v.cfg.API.ListComments(callCtx, articleID)
	if err != nil {
		return v.fail("load comments", err)
	}

	v.apply(articleOpened{
		article:  *article,
		liked:    v.likedOnServer(callCtx, article.ID),
		comments: comments,
	})
	return nil
}

// likedOnServer returns the device's like state as the server sees it and
// brings the local tracker in line. The tracker answers when the server
// cannot.
func (v *View) likedOnServer(ctx context.Context, articleID string) bool {
	local := v.cfg.Tracker.IsLiked(articleID)
	status, err := v.cfg.API.LikeStatus(ctx, articleID)
	if err != nil {
		logger.WithArticleID(articleID).Warn("Like status unavailable, using local state", "error", err.Error())
		return local
	}
	if status.Liked != local {
		v.remember(articleID, status.Liked)
	}
	return status.Liked
}

func (v *View) remember(articleID string, liked bool) {
	var err error
	if liked {
		err = v.cfg.Tracker.MarkLiked(articleID)
	} else {
		err = v.cfg.Tracker.MarkUnliked(articleID)
	}
	if err != nil {
		logger.WithArticleID(articleID).Warn("Failed to persist like state", "error", err.Error())
	}
}

// ToggleLike likes or unlikes a loaded article. Only one toggle per article
// may be in flight.
func (v *View) ToggleLike(ctx context.Context, articleID string) error {
	v.mu.Lock()
	c := v.state.card(articleID)
	switch {
	case c == nil:
		v.mu.Unlock()
		return ErrNotLoaded
	case c.Pending:
		v.mu.Unlock()
		return ErrBusy
	}
	v.state = reduce(v.state, likeStarted{articleID: articleID})
	v.mu.Unlock()

	callCtx, cancel := v.call(ctx)
	defer cancel()

	result, err := v.cfg.API.ToggleLike(callCtx, articleID)
	if err != nil {
		v.apply(likeFailed{articleID: articleID})
		return v.fail("like article", err)
	}

	v.remember(articleID, result.Liked)
	v.apply(likeSucceeded{articleID: articleID, result: result})
	if result.Liked {
		v.cfg.Notifier.Notify(LevelSuccess, "Article liked!")
	} else {
		v.cfg.Notifier.Notify(LevelInfo, "Article unliked")
	}
	return nil
}

// Share records a share and hands the article to the native sharer, falling
// back to the clipboard. The share is counted once the server accepts it,
// even when the user then cancels the share sheet.
func (v *View) Share(ctx context.Context, articleID string) (ShareMethod, error) {
	callCtx, cancel := v.call(ctx)
	defer cancel()

	result, err := v.cfg.API.RecordShare(callCtx, articleID)
	if err != nil {
		return ShareNone, v.fail("share article", err)
	}
	v.apply(shareRecorded{articleID: articleID, count: result.SharesCount})

	content := ShareContent{
		Title: result.Title,
		Text:  result.Description,
		URL:   result.ShareURL,
		Image: result.Image,
	}

	if v.cfg.Sharer != nil {
		err := v.cfg.Sharer.Share(ctx, content)
		switch {
		case err == nil:
			v.cfg.Notifier.Notify(LevelSuccess, "Article shared!")
			return ShareNative, nil
		case errors.Is(err, ErrShareCancelled):
			return ShareNone, nil
		}
		logger.Debug("Native share failed, using clipboard", "error", err.Error())
	}

	if v.cfg.Clipboard == nil {
		return ShareNone, v.fail("share article", errors.New("no share target available"))
	}
	if err := v.cfg.Clipboard.WriteAll(content.ClipboardText()); err != nil {
		return ShareNone, v.fail("share article", fmt.Errorf("copy to clipboard: %w", err))
	}
	v.cfg.Notifier.Notify(LevelSuccess, "Article details copied to clipboard!")
	return ShareClipboard, nil
}

// SetDraft updates the comment draft of the opened article.
func (v *View) SetDraft(text string) {
	v.apply(draftChanged{text: text})
}

// SubmitComment posts the draft as a comment on the opened article.
func (v *View) SubmitComment(ctx context.Context, userID string) (*domain.Comment, error) {
	v.mu.Lock()
	detail := v.state.Detail
	if detail == nil {
		v.mu.Unlock()
		return nil, ErrNotLoaded
	}
	if detail.Submitting {
		v.mu.Unlock()
		return nil, ErrBusy
	}
	articleID, text := detail.ArticleID, strings.TrimSpace(detail.Draft)
	if text == "" {
		v.mu.Unlock()
		v.cfg.Notifier.Notify(LevelError, "Please enter a comment")
		return nil, domain.ErrBlankComment
	}
	v.state = reduce(v.state, commentStarted{})
	v.mu.Unlock()

	callCtx, cancel := v.call(ctx)
	defer cancel()

	comment, err := v.cfg.API.PostComment(callCtx, articleID, domain.NewComment{Text: text, UserID: userID})
	if err != nil {
		v.apply(commentFailed{articleID: articleID})
		return nil, v.fail("post comment", err)
	}

	v.apply(commentSucceeded{articleID: articleID, comment: *comment})
	v.cfg.Notifier.Notify(LevelSuccess, "Comment posted successfully!")
	return comment, nil
}
