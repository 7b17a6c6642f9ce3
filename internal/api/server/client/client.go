package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// Fixed relay identity. The backend owns all session state; the relay always
// speaks for the same app on behalf of a synthetic web user.
const (
	AppName = "financial_advisor"
	UserID  = "web_user"

	// RequestTimeout bounds every backend call. Generous because agent runs
	// routinely take tens of seconds.
	RequestTimeout = 120 * time.Second
)

// Client holds the resolved backend endpoints and the HTTP client shared by
// all relay requests.
type Client struct {
	base       *url.URL
	http       *http.Client
	sessionUrl *url.URL
	runUrl     *url.URL
	runSseUrl  *url.URL
}

// ClientConfig holds the configuration for the backend client.
type ClientConfig struct {
	BaseURL string
}

// NewClient resolves the backend endpoints once so per-request work is just
// the calls themselves.
func NewClient(config ClientConfig) (*Client, error) {
	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse backend base URL")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("backend base URL %q must include scheme and host", config.BaseURL)
	}

	sessionPath := fmt.Sprintf("/apps/%s/users/%s/sessions", AppName, UserID)
	return &Client{
		base:       base,
		http:       &http.Client{Timeout: RequestTimeout},
		sessionUrl: base.ResolveReference(&url.URL{Path: sessionPath}),
		runUrl:     base.ResolveReference(&url.URL{Path: "/run"}),
		runSseUrl:  base.ResolveReference(&url.URL{Path: "/run_sse"}),
	}, nil
}

func (c *Client) GetSessionURL() string {
	return c.sessionUrl.String()
}

func (c *Client) GetRunURL() string {
	return c.runUrl.String()
}

func (c *Client) GetRunSseURL() string {
	return c.runSseUrl.String()
}

// BackendClientInterface is the surface the handlers depend on; tests
// substitute a mock for the remote API.
type BackendClientInterface interface {
	CreateSession(ctx context.Context) (*Session, error)
	Run(ctx context.Context, req *RunRequest) (string, error)
	RunStream(ctx context.Context, req *RunRequest, fn func(token string) error) error
}
