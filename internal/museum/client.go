package museum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Searcher is the catalog surface the UI depends on. *Client implements it;
// tests substitute fakes.
type Searcher interface {
	FetchByTermAndValue(ctx context.Context, term, value string) (*SearchResultSet, error)
	FetchByPageLocator(ctx context.Context, locator string) (*SearchResultSet, error)
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// FetchError is the single failure kind returned by Client. Op names the
// operation that failed.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Operation names carried by FetchError.
const (
	OpSearch = "search"
	OpPage   = "page"
)

// Client talks to the catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	apiKey    string
	pageSize  int
	userAgent string
}

const (
	DefaultBaseURL   = "https://api.harvardartmuseums.org"
	DefaultPageSize  = 10
	defaultUserAgent = "vitrine/0.1"
	defaultTimeout   = 10 * time.Second
	objectPath       = "/object"
)

// Options configure a Client. Zero values select defaults.
type Options struct {
	BaseURL  string
	APIKey   string
	PageSize int
	Timeout  time.Duration
	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	size := opts.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:   base,
		http:      hc,
		apiKey:    strings.TrimSpace(opts.APIKey),
		pageSize:  size,
		userAgent: defaultUserAgent,
	}, nil
}

// FetchByTermAndValue searches /object for records whose term matches value,
// e.g. ("medium", "bronze").
func (c *Client) FetchByTermAndValue(ctx context.Context, term, value string) (*SearchResultSet, error) {
	if c == nil {
		return nil, &FetchError{Op: OpSearch, Err: errors.New("client is nil")}
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, &FetchError{Op: OpSearch, Err: errors.New("search term required")}
	}
	values := url.Values{}
	if c.apiKey != "" {
		values.Set("apikey", c.apiKey)
	}
	values.Set("size", strconv.Itoa(c.pageSize))
	values.Set(term, value)

	rel := &url.URL{Path: objectPath, RawQuery: values.Encode()}
	reqURL := c.baseURL.ResolveReference(rel)

	var payload SearchResultSet
	if err := c.get(ctx, reqURL.String(), &payload); err != nil {
		return nil, &FetchError{Op: OpSearch, Err: err}
	}
	payload.normalize()
	return &payload, nil
}

// FetchByPageLocator loads the page at a locator taken from a previous
// PaginationInfo. The locator is requested exactly as received.
func (c *Client) FetchByPageLocator(ctx context.Context, locator string) (*SearchResultSet, error) {
	if c == nil {
		return nil, &FetchError{Op: OpPage, Err: errors.New("client is nil")}
	}
	if err := validateLocator(locator); err != nil {
		return nil, &FetchError{Op: OpPage, Err: err}
	}
	var payload SearchResultSet
	if err := c.get(ctx, locator, &payload); err != nil {
		return nil, &FetchError{Op: OpPage, Err: err}
	}
	payload.normalize()
	return &payload, nil
}

func (c *Client) get(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", redact(req.URL), resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func validateLocator(locator string) error {
	if strings.TrimSpace(locator) == "" {
		return errors.New("page locator is empty")
	}
	u, err := url.Parse(locator)
	if err != nil {
		return fmt.Errorf("parse page locator: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("page locator %q is not an http(s) URL", locator)
	}
	return nil
}

// redact drops the apikey parameter so it never lands in logs.
func redact(u *url.URL) string {
	clean := *u
	q := clean.Query()
	if q.Has("apikey") {
		q.Set("apikey", "REDACTED")
		clean.RawQuery = q.Encode()
	}
	return clean.String()
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
