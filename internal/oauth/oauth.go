// Package oauth implements the one-time authorization-code bootstrap:
// build an authorization URL, capture the redirect on a short-lived
// local listener and exchange the code for an access token. None of
// this runs during steady-state dispatch.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

var (
	authorizeEndpoint = "https://www.linkedin.com/oauth/v2/authorization"
	tokenEndpoint     = "https://www.linkedin.com/oauth/v2/accessToken"
)

// TokenResult is the outcome of a successful code exchange.
type TokenResult struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// BuildAuthorizeURL returns the URL the user opens in a browser to
// authorize the application.
func BuildAuthorizeURL(clientID, redirectURI, scope, state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", clientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("scope", scope)
	params.Set("state", state)
	return authorizeEndpoint + "?" + params.Encode()
}

// ExchangeCodeForToken trades an authorization code for an access token.
func ExchangeCodeForToken(ctx context.Context, clientID, clientSecret, redirectURI, code string) (TokenResult, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", redirectURI)
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return TokenResult{}, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return TokenResult{}, fmt.Errorf("failed to exchange code: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return TokenResult{}, fmt.Errorf("token exchange failed, status: %v, body: %v", resp.Status, string(body))
	}

	var result TokenResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return TokenResult{}, fmt.Errorf("failed to decode token response: %w", err)
	}
	if result.AccessToken == "" {
		return TokenResult{}, fmt.Errorf("token response carries no access_token")
	}
	return result, nil
}

// RedirectListener captures the authorization code from the OAuth
// redirect on a local HTTP listener.
type RedirectListener struct {
	srv  *http.Server
	mu   sync.Mutex
	code string
}

// StartRedirectListener binds host:port and serves until Close. The
// captured code is available through Code or AwaitCode.
func StartRedirectListener(host string, port int) (*RedirectListener, error) {
	l := &RedirectListener{}
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		l.mu.Lock()
		if l.code == "" {
			l.code = code
		}
		l.mu.Unlock()
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>You may close this window.</body></html>"))
	})

	listener, err := net.Listen("tcp", fmt.Sprintf("%v:%v", host, port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind redirect listener: %w", err)
	}
	l.srv = &http.Server{Handler: mux}
	go func() {
		// ErrServerClosed is the expected shutdown path
		_ = l.srv.Serve(listener)
	}()
	return l, nil
}

// Code returns the captured authorization code, if any.
func (l *RedirectListener) Code() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.code, l.code != ""
}

// AwaitCode polls until a code is captured or the context is done.
func (l *RedirectListener) AwaitCode(ctx context.Context) (string, error) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		if code, ok := l.Code(); ok {
			return code, nil
		}
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("failed to capture authorization code: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Close shuts the listener down.
func (l *RedirectListener) Close() error {
	return l.srv.Close()
}
