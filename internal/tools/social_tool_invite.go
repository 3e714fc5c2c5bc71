package tools

import (
	"context"

	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

type sendInvitationTool struct {
	client *linkedin.Client
}

func (t sendInvitationTool) Specification() Specification {
	return Specification{
		Name:        "send_invitation",
		Description: "Send a connection invitation to a member, optionally with a custom message.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"invitee"},
			Properties: map[string]ParameterObject{
				"invitee": {
					Type:        "string",
					Description: "URN of the member to invite, e.g. urn:li:person:xyz.",
				},
				"message": {
					Type:        "string",
					Description: "Optional invitation message. Omitted when blank.",
				},
			},
		},
	}
}

func (t sendInvitationTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.SendInvitation(ctx, linkedin.InvitationArgs{
		Invitee: stringArg(input, "invitee"),
		Message: stringArg(input, "message"),
	})
}
