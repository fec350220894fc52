package serp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/Domenick1991/dentaltrip/config"
	"github.com/Domenick1991/dentaltrip/internal/domain"
)

// ErrMissingAPIKey is returned when no provider key is configured.
var ErrMissingAPIKey = errors.New("missing SERPAPI_KEY on server")

// maxBodyBytes caps how much of an upstream body is kept in memory.
const maxBodyBytes = 8 << 20

// Response is an upstream answer passed through unmodified.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client talks to the travel-search provider. The API key is added on every
// request and never leaves the server.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func NewClient(cfg config.SearchConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Forward issues a GET with the caller's parameters and returns whatever the
// provider sent, whatever the status. Any client supplied api_key is
// replaced.
func (c *Client) Forward(ctx context.Context, query url.Values) (*Response, error) {
	if !c.Configured() {
		return nil, ErrMissingAPIKey
	}

	params := make(url.Values, len(query)+1)
	for k, v := range query {
		params[k] = append([]string(nil), v...)
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	log.Printf("[serp] engine=%s status=%d bytes=%d", query.Get("engine"), resp.StatusCode, len(body))

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// Search is Forward for internal callers: a non-2xx status becomes an
// *domain.UpstreamRequestError.
func (c *Client) Search(ctx context.Context, query url.Values) ([]byte, error) {
	resp, err := c.Forward(ctx, query)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.UpstreamRequestError{StatusCode: resp.StatusCode, Body: truncate(string(resp.Body), 300)}
	}
	return resp.Body, nil
}

// redact strips the key from transport errors, which embed the request URL.
func redact(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
