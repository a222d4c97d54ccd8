package contract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/huangsam/heatgrid/internal/dom"
	"go.uber.org/zap"
)

// maxPageBytes bounds how much of a profile page is read.
const maxPageBytes = 8 << 20

// userAgent identifies heatgrid to GitHub.
const userAgent = "Mozilla/5.0 (compatible; heatgrid/1.0; +https://github.com/huangsam/heatgrid)"

// HTTPProfileClient implements the ProfileClient interface over plain HTTP GET requests.
type HTTPProfileClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

var _ ProfileClient = &HTTPProfileClient{} // Compile-time check

// NewHTTPProfileClient creates a client for the given site root, e.g. https://github.com.
func NewHTTPProfileClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPProfileClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPProfileClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// ProfileURL builds the URL of a profile page. With a year the page is
// narrowed to that calendar year's contributions.
func ProfileURL(baseURL, slug, year string) string {
	u := baseURL + "/" + url.PathEscape(slug)
	if year == "" {
		return u
	}
	q := url.Values{}
	q.Set("tab", "overview")
	q.Set("from", year+"-01-01")
	q.Set("to", year+"-12-31")
	return u + "?" + q.Encode()
}

// FetchProfile implements the ProfileClient interface.
func (c *HTTPProfileClient) FetchProfile(ctx context.Context, slug string, year string) (dom.Node, error) {
	profileURL := ProfileURL(c.baseURL, slug, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrRequestFailure, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("profile request failed", zap.String("url", profileURL), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRequestFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("profile request completed",
		zap.String("url", profileURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w at url: '%s'", ErrProfileNotFound, profileURL)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unable to scrape GitHub profile: '%s'", ErrRequestFailure, resp.Status)
	}

	doc, err := dom.Parse(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailure, err)
	}
	return doc, nil
}
