package linkedin

import (
	"context"
	"net/http"
	"strings"
)

// GetProfile fetches the authenticated member's profile.
func (c *Client) GetProfile(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/rest/identityMe", versionIdentity, nil)
}

// GetUserinfo fetches the OpenID Connect userinfo record.
func (c *Client) GetUserinfo(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/v2/userinfo", versionPosts, nil)
}

// GetVerificationReport fetches the member's verification report.
func (c *Client) GetVerificationReport(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/rest/verificationReport", versionVerification, nil)
}

// EnsureAuthorIdentity returns the author URN of the authenticated member,
// resolving it through the userinfo endpoint on first use. The resolved
// URN is cached for the process lifetime, so at most one network call is
// made regardless of how often it is needed.
func (c *Client) EnsureAuthorIdentity(ctx context.Context) (string, error) {
	if c.authorURN != "" {
		return c.authorURN, nil
	}
	res, err := c.GetUserinfo(ctx)
	if err != nil {
		return "", err
	}
	c.authorURN = memberURN(res)
	if c.authorURN == "" {
		return "", UpstreamError{Status: http.StatusOK, Snippet: "userinfo response carries no usable member id"}
	}
	return c.authorURN, nil
}

// memberURN extracts the member identifier from a userinfo response and
// normalizes it into a fully qualified person URN. Bare ids get the
// urn:li:person: prefix, already-qualified URNs pass through unchanged.
func memberURN(res any) string {
	obj, ok := res.(map[string]any)
	if !ok {
		return ""
	}
	sub, _ := obj["sub"].(string)
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return ""
	}
	if strings.HasPrefix(sub, "urn:") {
		return sub
	}
	return "urn:li:person:" + sub
}
