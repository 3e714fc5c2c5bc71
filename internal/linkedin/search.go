package linkedin

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SearchArgs are the arguments for a free-text search.
type SearchArgs struct {
	Keywords string
	// Type filters results to one of JOBS, PEOPLE or COMPANIES. Blank
	// means no filter.
	Type     string
	Count    int
	Start    int
	Location string
}

// Search runs a keyword search, optionally filtered by result type and
// location, with count/start pagination.
func (c *Client) Search(ctx context.Context, args SearchArgs) (any, error) {
	keywords := strings.TrimSpace(args.Keywords)
	if keywords == "" {
		return nil, requiredArg("keywords")
	}
	count := args.Count
	if count <= 0 {
		count = 10
	}

	params := url.Values{}
	params.Set("q", "keywords")
	params.Set("keywords", keywords)
	params.Set("count", strconv.Itoa(count))
	params.Set("start", strconv.Itoa(args.Start))
	if t := strings.TrimSpace(args.Type); t != "" {
		params.Set("filters", "List(resultType->"+strings.ToUpper(t)+")")
	}
	if loc := strings.TrimSpace(args.Location); loc != "" {
		params.Set("location", loc)
	}
	return c.do(ctx, http.MethodGet, "/rest/search?"+params.Encode(), versionSearch, nil)
}
