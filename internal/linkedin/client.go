package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

const (
	// DefaultBaseURL is the production REST endpoint root.
	DefaultBaseURL = "https://api.linkedin.com"

	restliProtocolVersion = "2.0.0"

	// LinkedIn-Version markers per endpoint generation. These diverge on
	// purpose, each endpoint family is pinned to the generation it was
	// built against.
	versionPosts        = "202502"
	versionReshare      = "202401"
	versionImages       = "202401"
	versionMultiImage   = "202511"
	versionVerification = "202510"
	versionIdentity     = "202510.03"
	versionSearch       = "202502"
	versionSocial       = "202502"
	versionPositions    = "202502"

	snippetMaxLen = 500
)

// Client owns the authenticated session towards the LinkedIn REST API.
// It is created once at startup and holds one lazily-resolved piece of
// state: the author URN of the authenticated member.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	debug      bool

	// authorURN is written at most once by EnsureAuthorIdentity. Safe
	// without a lock under the single-threaded dispatch of the message
	// loop.
	authorURN string
}

// NewClient validates the access token and sets up the session headers.
// An empty or whitespace-only token is a startup-fatal condition.
func NewClient(accessToken, baseURL string) (*Client, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, fmt.Errorf("linkedin access token is missing, set LINKEDIN_ACCESS_TOKEN or run with '-auth'")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      accessToken,
		httpClient: &http.Client{},
		debug:      misc.Truthy(os.Getenv("DEBUG")) || misc.Truthy(os.Getenv("LINKEDIN_DEBUG")),
	}, nil
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// do issues one authenticated request and classifies the response.
// version sets the LinkedIn-Version header, payload is marshaled as the
// JSON body when non-nil.
func (c *Client) do(ctx context.Context, method, path, version string, payload any) (any, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", restliProtocolVersion)
	if version != "" {
		req.Header.Set("LinkedIn-Version", version)
	}
	if c.debug {
		ancli.Noticef("linkedin request: %v %v\n", method, path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()
	return classify(resp)
}

// classify converts an HTTP response into a decoded result or one of the
// typed errors. 401/403 never leak the response body.
func classify(resp *http.Response) (any, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, AuthRejectedError{Status: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, UpstreamError{Status: resp.StatusCode, Snippet: snippet(raw)}
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return map[string]any{"status": resp.StatusCode}, nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return map[string]any{"status": resp.StatusCode, "body": text}, nil
	}
	return decoded, nil
}

// snippet flattens a response body to a single line of at most
// snippetMaxLen characters for diagnostics.
func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > snippetMaxLen {
		s = s[:snippetMaxLen]
	}
	return s
}
