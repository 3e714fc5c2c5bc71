package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
	"github.com/hashan-silva/linkedin-mcp-server/internal/oauth"
)

type config struct {
	accessToken string
	baseURL     string
}

// setup parses flags and resolves the access credential. The -auth flow
// only runs when no token is already present in the environment.
func setup(args []string) (config, error) {
	fs := flag.NewFlagSet("linkedin-mcp-server", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	runAuth := fs.Bool("auth", false, "Run the OAuth flow to fetch an access token before starting the server.")
	if err := fs.Parse(args); err != nil {
		return config{}, fmt.Errorf("failed to parse flags: %w", err)
	}

	conf := config{
		accessToken: os.Getenv("LINKEDIN_ACCESS_TOKEN"),
		baseURL:     os.Getenv("LINKEDIN_BASE_URL"),
	}
	if conf.baseURL == "" {
		conf.baseURL = linkedin.DefaultBaseURL
	}

	if *runAuth && conf.accessToken == "" {
		token, err := authFlow()
		if err != nil {
			return config{}, fmt.Errorf("failed to run auth flow: %w", err)
		}
		conf.accessToken = token
	}
	if conf.accessToken == "" {
		return config{}, fmt.Errorf("missing required environment variable: LINKEDIN_ACCESS_TOKEN")
	}
	return conf, nil
}

func envOrErr(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("missing required environment variable: %v", name)
	}
	return value, nil
}

// authFlow runs the one-time authorization-code capture: print the
// authorization URL, wait for the local redirect, exchange the code.
func authFlow() (string, error) {
	clientID, err := envOrErr("LINKEDIN_CLIENT_ID")
	if err != nil {
		return "", err
	}
	clientSecret, err := envOrErr("LINKEDIN_CLIENT_SECRET")
	if err != nil {
		return "", err
	}
	redirectURI := os.Getenv("LINKEDIN_REDIRECT_URI")
	if redirectURI == "" {
		redirectURI = "http://127.0.0.1:8765/callback"
	}
	scope := os.Getenv("LINKEDIN_SCOPE")
	if scope == "" {
		scope = "r_liteprofile w_member_social"
	}

	parsed, err := url.Parse(redirectURI)
	if err != nil {
		return "", fmt.Errorf("failed to parse redirect uri: %w", err)
	}
	host := parsed.Hostname()
	if host == "" {
		host = "127.0.0.1"
	}
	port := 80
	if parsed.Scheme == "https" {
		port = 443
	}
	if parsed.Port() != "" {
		port, err = strconv.Atoi(parsed.Port())
		if err != nil {
			return "", fmt.Errorf("failed to parse redirect uri port: %w", err)
		}
	}

	listener, err := oauth.StartRedirectListener(host, port)
	if err != nil {
		return "", err
	}
	defer listener.Close()

	authURL := oauth.BuildAuthorizeURL(clientID, redirectURI, scope, "mcp_state")
	ancli.Okf("open this URL in a browser to authorize:\n%v\n", authURL)
	ancli.Noticef("waiting for redirect with code...\n")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	code, err := listener.AwaitCode(ctx)
	if err != nil {
		return "", err
	}

	result, err := oauth.ExchangeCodeForToken(ctx, clientID, clientSecret, redirectURI, code)
	if err != nil {
		return "", err
	}
	ancli.Okf("access token acquired, starting server\n")
	return result.AccessToken, nil
}
