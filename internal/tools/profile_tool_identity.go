package tools

import (
	"context"

	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

type getProfileTool struct {
	client *linkedin.Client
}

func (t getProfileTool) Specification() Specification {
	return Specification{
		Name:        "get_profile",
		Description: "Fetch current profile info (id, names, headline, summary, location, picture).",
		InputSchema: &InputSchema{
			Type:       "object",
			Properties: map[string]ParameterObject{},
		},
	}
}

func (t getProfileTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.GetProfile(ctx)
}

type getUserinfoTool struct {
	client *linkedin.Client
}

func (t getUserinfoTool) Specification() Specification {
	return Specification{
		Name:        "get_userinfo",
		Description: "Fetch the OpenID Connect userinfo record of the authenticated member.",
		InputSchema: &InputSchema{
			Type:       "object",
			Properties: map[string]ParameterObject{},
		},
	}
}

func (t getUserinfoTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.GetUserinfo(ctx)
}

type getVerificationReportTool struct {
	client *linkedin.Client
}

func (t getVerificationReportTool) Specification() Specification {
	return Specification{
		Name:        "get_verification_report",
		Description: "Fetch the verification report of the authenticated member.",
		InputSchema: &InputSchema{
			Type:       "object",
			Properties: map[string]ParameterObject{},
		},
	}
}

func (t getVerificationReportTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.GetVerificationReport(ctx)
}
