// Package client is a typed HTTP client for the blog engagement API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"blog-engagement/internal/domain"
)

const (
	// DefaultTimeout bounds every request made by the client.
	DefaultTimeout = 10 * time.Second

	deviceIDHeader      = "X-Device-ID"
	nextPageTokenHeader = "X-Next-Page-Token"
)

// ErrTimeout is returned when a request exceeds the client timeout. It matches
// both domain.ErrTransient and context.DeadlineExceeded.
var ErrTimeout = fmt.Errorf("request timed out: %w: %w", domain.ErrTransient, context.DeadlineExceeded)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Kind       string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code back to a domain sentinel.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case e.StatusCode == http.StatusBadRequest:
		return domain.ErrInvalidInput
	case e.StatusCode == http.StatusConflict:
		return domain.ErrConflict
	case e.StatusCode >= http.StatusInternalServerError, e.StatusCode == http.StatusTooManyRequests:
		return domain.ErrTransient
	default:
		return nil
	}
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDeviceID sets the device token sent with every request.
func WithDeviceID(id string) Option {
	return func(c *Client) { c.deviceID = id }
}

// Client talks to the engagement API.
type Client struct {
	baseURL  string
	http     *http.Client
	timeout  time.Duration
	deviceID string
}

// New creates a Client for the API rooted at baseURL, including any base path.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, domain.ErrInvalidInput)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListArticles returns one page of articles matching query.
func (c *Client) ListArticles(ctx context.Context, query string, pageSize int, pageToken string) (*domain.ArticlePage, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	if pageToken != "" {
		params.Set("page_token", pageToken)
	}

	var articles []domain.Article
	header, err := c.do(ctx, http.MethodGet, "/articles/", params, nil, &articles)
	if err != nil {
		return nil, err
	}
	return &domain.ArticlePage{Articles: articles, NextPageToken: header.Get(nextPageTokenHeader)}, nil
}

// GetArticle returns one article.
func (c *Client) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	var article domain.Article
	if _, err := c.do(ctx, http.MethodGet, articlePath(id, ""), nil, nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// TopArticles returns the most liked articles.
func (c *Client) TopArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var articles []domain.Article
	if _, err := c.do(ctx, http.MethodGet, "/articles/top", params, nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// ToggleLike flips the like state of the article for this device.
func (c *Client) ToggleLike(ctx context.Context, id string) (domain.LikeResult, error) {
	var result domain.LikeResult
	_, err := c.do(ctx, http.MethodPost, articlePath(id, "like"), nil, nil, &result)
	return result, err
}

// LikeStatus returns the like state of the article for this device.
func (c *Client) LikeStatus(ctx context.Context, id string) (domain.LikeResult, error) {
	var result domain.LikeResult
	_, err := c.do(ctx, http.MethodGet, articlePath(id, "like"), nil, nil, &result)
	return result, err
}

// RecordShare counts a share and returns what is needed to share the article.
func (c *Client) RecordShare(ctx context.Context, id string) (*domain.ShareResult, error) {
	var result domain.ShareResult
	if _, err := c.do(ctx, http.MethodPost, articlePath(id, "share"), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListComments returns the comments of the article, newest first.
func (c *Client) ListComments(ctx context.Context, id string) ([]domain.Comment, error) {
	var comments []domain.Comment
	if _, err := c.do(ctx, http.MethodGet, articlePath(id, "comments"), nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// PostComment posts a comment on the article.
func (c *Client) PostComment(ctx context.Context, id string, comment domain.NewComment) (*domain.Comment, error) {
	var created domain.Comment
	if _, err := c.do(ctx, http.MethodPost, articlePath(id, "comments"), nil, comment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Counters returns the engagement counters of the article.
func (c *Client) Counters(ctx context.Context, id string) (domain.Counters, error) {
	var counters domain.Counters
	_, err := c.do(ctx, http.MethodGet, articlePath(id, "stats"), nil, nil, &counters)
	return counters, err
}

func articlePath(id, action string) string {
	p := "/articles/" + url.PathEscape(id)
	if action != "" {
		p += "/" + action
	}
	return p
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) (http.Header, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.deviceID != "" {
		req.Header.Set(deviceIDHeader, c.deviceID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(data, apiErr)
		return nil, apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return nil, fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return resp.Header, nil
}

// classify turns transport failures into transient errors.
func classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return fmt.Errorf("%w: %v", domain.ErrTransient, err)
}
