package linkedin

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// ExperienceArgs describe one experience/position entry. When ID is set
// the existing position is updated in place, otherwise a new one is
// created. Dates are year/month/day triples where only the year is
// mandatory for a date to be included.
type ExperienceArgs struct {
	ID             string
	Title          string
	Company        string
	EmploymentType string
	Location       string
	Description    string
	StartYear      int
	StartMonth     int
	StartDay       int
	EndYear        int
	EndMonth       int
	EndDay         int
	Current        bool
}

// UpsertExperience creates or updates an experience entry on the
// authenticated member's profile. The owning person reference is resolved
// through the cached author identity.
func (c *Client) UpsertExperience(ctx context.Context, args ExperienceArgs) (any, error) {
	owner, err := c.EnsureAuthorIdentity(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := buildPositionPayload(owner, args)
	if err != nil {
		return nil, err
	}
	if id := strings.TrimSpace(args.ID); id != "" {
		return c.do(ctx, http.MethodPost, "/rest/positions/"+url.PathEscape(id), versionPositions, payload)
	}
	return c.do(ctx, http.MethodPost, "/rest/positions", versionPositions, payload)
}
