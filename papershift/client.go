package papershift

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"papershift/credential"
	"papershift/session"
)

const (
	DefaultBaseURL      = "https://app.papershift.com/public_api/v1/"
	workingSessionsPath = "working_sessions"
)

type TimeRange struct {
	Start time.Time
	End   time.Time
}

type SessionFetcher interface {
	FetchSessions(ctx context.Context, r TimeRange) ([]session.Session, error)
}

type Client struct {
	baseURL *url.URL
	creds   credential.Credentials
	client  *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, creds credential.Credentials, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	return &Client{
		baseURL: u,
		creds:   creds,
		client:  &http.Client{},
		logger:  logger,
	}, nil
}

var ErrRepeatedPage = errors.New("papershift returned a page that was already fetched")

// FetchSessions follows next_page links until the service stops returning
// one and returns every session once, in the order first seen. A next_page
// that was already fetched fails with ErrRepeatedPage.
func (c *Client) FetchSessions(ctx context.Context, r TimeRange) ([]session.Session, error) {
	next := c.sessionsURL(r)
	acc := newAccumulator()
	fetched := make(map[string]struct{})
	for next != "" {
		pageURL, err := c.pageURL(next)
		if err != nil {
			return nil, err
		}
		if _, ok := fetched[pageURL.String()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrRepeatedPage, pageURL.Path)
		}
		fetched[pageURL.String()] = struct{}{}

		acc, next, err = c.fetchPage(ctx, pageURL, acc)
		if err != nil {
			return nil, err
		}
	}
	c.logger.Debug("fetched working sessions",
		slog.Int("count", len(acc.sessions)),
		slog.Time("range_start", r.Start),
		slog.Time("range_end", r.End))
	return acc.sessions, nil
}

func (c *Client) sessionsURL(r TimeRange) string {
	u := c.baseURL.JoinPath(workingSessionsPath)
	q := u.Query()
	q.Set("range_start", r.Start.UTC().Format(time.RFC3339))
	q.Set("range_end", r.End.UTC().Format(time.RFC3339))
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Client) fetchPage(ctx context.Context, pageURL *url.URL, acc accumulator) (accumulator, string, error) {
	req, err := c.newRequest(ctx, pageURL)
	if err != nil {
		return acc, "", err
	}
	c.logger.Debug("fetch page", slog.String("path", req.URL.Path))

	resp, err := c.client.Do(req)
	if err != nil {
		return acc, "", fmt.Errorf("request working sessions: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if !isHTTPSuccessStatus(resp.StatusCode) {
		return acc, "", fmt.Errorf("papershift returned status %d", resp.StatusCode)
	}

	var page workingSessionsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return acc, "", fmt.Errorf("decode working sessions: %w", err)
	}

	for _, ws := range page.WorkingSessions {
		s, ok := ws.toSession()
		if !ok {
			c.logger.Warn("drop working session without starts_at", slog.Int64("id", ws.ID))
			continue
		}
		acc = acc.add(s)
	}
	return acc, page.NextPage, nil
}

// pageURL resolves a possibly relative next_page link against the base url
// and adds the credentials, which the service does not echo back.
func (c *Client) pageURL(link string) (*url.URL, error) {
	ref, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("invalid page url %q: %w", link, err)
	}
	u := c.baseURL.ResolveReference(ref)
	q := u.Query()
	q.Set("api_token", c.creds.APIToken)
	q.Set("user_id", c.creds.UserID)
	u.RawQuery = q.Encode()
	return u, nil
}

func (c *Client) newRequest(ctx context.Context, pageURL *url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func isHTTPSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
