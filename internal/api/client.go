package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Service defines the playground operations the terminal host performs.
// This interface is implemented by *Client and can be used for testing.
type Service interface {
	LoadDefaultRevision(ctx context.Context) (Revision, error)
	LoadRevision(ctx context.Context, id string) (Revision, error)
	SaveRevision(ctx context.Context, rev Revision) (Revision, error)
	SearchPackages(ctx context.Context, query string) ([]Package, error)
	FormatCode(ctx context.Context, version Version, code string) (string, error)
	CreateGist(ctx context.Context, rev Revision) (string, error)
	Compile(ctx context.Context, rev Revision, onEvent func(CompileEvent)) (CompileEvent, error)
	ReportError(ctx context.Context, report ErrorReport) error
	Ping(ctx context.Context) error
	EmbedURL(id string, debug bool) string
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// Client talks to the playground HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

const (
	defaultAPIURL    = "http://127.0.0.1:1337"
	defaultUserAgent = "playpen/0.1"
	requestTimeout   = 10 * time.Second
	defaultRPS       = 5
)

// NewClient builds a Client for the API rooted at apiURL. requestsPerSecond
// paces outgoing calls; zero or less uses the default.
func NewClient(apiURL string, requestsPerSecond float64) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRPS
	}
	burst := int(requestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		limiter:   rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		userAgent: defaultUserAgent,
	}, nil
}

// LoadDefaultRevision fetches the revision a new project starts from.
func (c *Client) LoadDefaultRevision(ctx context.Context) (Revision, error) {
	if c == nil {
		return Revision{}, fmt.Errorf("client is nil")
	}
	var payload Revision
	if err := c.do(ctx, http.MethodGet, "/api/revisions/default", nil, &payload); err != nil {
		return Revision{}, err
	}
	return payload, nil
}

// LoadRevision fetches a saved revision by id.
func (c *Client) LoadRevision(ctx context.Context, id string) (Revision, error) {
	if c == nil {
		return Revision{}, fmt.Errorf("client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Revision{}, fmt.Errorf("revision id required")
	}
	var payload Revision
	if err := c.do(ctx, http.MethodGet, "/api/revisions/"+url.PathEscape(id), nil, &payload); err != nil {
		return Revision{}, err
	}
	return payload, nil
}

// SaveRevision persists rev and returns the stored revision with its id.
func (c *Client) SaveRevision(ctx context.Context, rev Revision) (Revision, error) {
	if c == nil {
		return Revision{}, fmt.Errorf("client is nil")
	}
	var payload Revision
	if err := c.do(ctx, http.MethodPost, "/api/revisions", rev, &payload); err != nil {
		return Revision{}, err
	}
	return payload, nil
}

// SearchPackages queries the package registry.
func (c *Client) SearchPackages(ctx context.Context, query string) ([]Package, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("query", query)
	rel := &url.URL{Path: "/api/packages/search", RawQuery: values.Encode()}
	var payload SearchResponse
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Packages, nil
}

// FormatCode runs the code formatter for the given compiler version.
func (c *Client) FormatCode(ctx context.Context, version Version, code string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	var payload FormatResponse
	req := FormatRequest{ElmVersion: version, Code: code}
	if err := c.do(ctx, http.MethodPost, "/api/format", req, &payload); err != nil {
		return "", err
	}
	return payload.Code, nil
}

// CreateGist publishes rev as a gist and returns its URL.
func (c *Client) CreateGist(ctx context.Context, rev Revision) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	var payload GistResponse
	if err := c.do(ctx, http.MethodPost, "/api/gists", rev, &payload); err != nil {
		return "", err
	}
	if strings.TrimSpace(payload.URL) == "" {
		return "", &Error{StatusCode: http.StatusBadGateway, Explanation: "The gist service returned no URL."}
	}
	return payload.URL, nil
}

// ReportError sends a diagnostic report. Reports are best-effort.
func (c *Client) ReportError(ctx context.Context, report ErrorReport) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/api/errors", report, nil)
}

// Ping checks that the API is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

// EmbedURL returns the browser URL of a saved revision's result page.
func (c *Client) EmbedURL(id string, debug bool) string {
	rel := &url.URL{Path: "/embed/" + url.PathEscape(id)}
	if debug {
		rel.RawQuery = "debug=1"
	}
	return c.baseURL.ResolveReference(rel).String()
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, body, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	var payload struct {
		Explanation string `json:"explanation"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		apiErr.Explanation = strings.TrimSpace(payload.Explanation)
	}
	if apiErr.Explanation == "" {
		apiErr.Explanation = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
