package main

import (
	"context"
	"fmt"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"
	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
	"github.com/hashan-silva/linkedin-mcp-server/internal/server"
	"github.com/hashan-silva/linkedin-mcp-server/internal/tools"
)

const usage = `linkedin-mcp-server - LinkedIn tools over line-delimited JSON-RPC on stdio

Prerequisites:
  - Set the LINKEDIN_ACCESS_TOKEN environment variable to a valid access token,
    or run with -auth to acquire one interactively
  - (Optional) Set LINKEDIN_BASE_URL to override the API endpoint root
  - (Optional, -auth mode) Set LINKEDIN_CLIENT_ID, LINKEDIN_CLIENT_SECRET,
    LINKEDIN_REDIRECT_URI and LINKEDIN_SCOPE

Usage: linkedin-mcp-server [flags]

Flags:
  -auth bool    Run the OAuth authorization-code flow to fetch an access token
                before starting the server. (default false)

The server reads one JSON-RPC request per line from stdin and writes one
response per line to stdout. All logging goes to stderr.
`

func main() {
	ancli.SetupSlog()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	conf, err := setup(args)
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to setup: %v\n", err))
		return 1
	}

	client, err := linkedin.NewClient(conf.accessToken, conf.baseURL)
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to create linkedin client: %v\n", err))
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { shutdown.Monitor(cancel) }()

	srv := server.New(tools.NewRegistry(client))
	if err := srv.Run(ctx); err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to run: %v\n", err))
		return 1
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("input stream closed, shutting down\n")
	}
	return 0
}
