package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the canonical site root; detail pages live under /memes/.
	DefaultBaseURL = "https://knowyourmeme.com"

	// DefaultUserAgent mimics a desktop browser. The site serves an interstitial
	// to clients that identify as bots.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_11_5) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/50.0.2661.102 Safari/537.36"

	defaultTimeout = 10 * time.Second
)

// ErrContentType marks a response whose Content-Type is not HTML or text.
var ErrContentType = errors.New("unsupported content type")

// StatusError reports a non-success HTTP status from the upstream site.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("unexpected status: %d", e.Code) }

// Client wraps http.Client with a user agent and a per-request timeout.
// Each call issues exactly one request; failures surface immediately with no
// retry, and nothing is cached between calls.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	// Timeout bounds each request. Zero means default (10s).
	Timeout time.Duration
}

// Page fetches the detail page for slug and returns its raw markup.
func (c *Client) Page(ctx context.Context, slug string) ([]byte, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return c.Get(ctx, strings.TrimRight(base, "/")+"/memes/"+url.PathEscape(slug))
}

// Get issues a single GET with context, user agent, and bounded timeout.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return nil, fmt.Errorf("unsupported URL scheme: %q", rawURL)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	if ct := resp.Header.Get("Content-Type"); !isMarkupContentType(ct) {
		return nil, fmt.Errorf("%w: %s", ErrContentType, ct)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return b, nil
}

func isHTTPScheme(u *url.URL) bool {
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

func isMarkupContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	return strings.HasPrefix(ct, "text/html") ||
		strings.HasPrefix(ct, "application/xhtml+xml") ||
		strings.HasPrefix(ct, "text/plain")
}
