package tools

import (
	"context"

	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

type createReshareTool struct {
	client *linkedin.Client
}

func (t createReshareTool) Specification() Specification {
	return Specification{
		Name:        "create_reshare",
		Description: "Republish an existing post, optionally with added commentary.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"author", "parent"},
			Properties: map[string]ParameterObject{
				"author": {
					Type:        "string",
					Description: "Author URN, e.g. urn:li:person:abc.",
				},
				"parent": {
					Type:        "string",
					Description: "URN of the post being reshared, e.g. urn:li:share:123.",
				},
				"commentary": {
					Type:        "string",
					Description: "Optional commentary. Omitted from the payload when blank.",
				},
				"visibility": {
					Type:        "string",
					Description: "Who can see the post.",
					Enum:        &[]string{"PUBLIC", "CONNECTIONS", "LOGGED_IN"},
				},
				"distribution": {
					Type:        "object",
					Description: "Distribution override. Omit for main feed without targeting.",
				},
				"lifecycle_state": {
					Type:        "string",
					Description: "Publication state.",
					Enum:        &[]string{"PUBLISHED", "DRAFT"},
				},
				"is_reshare_disabled_by_author": {
					Type:        "boolean",
					Description: "Set to true to prevent resharing.",
				},
			},
		},
	}
}

func (t createReshareTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.CreateReshare(ctx, linkedin.ReshareArgs{
		Author:          stringArg(input, "author"),
		Parent:          stringArg(input, "parent"),
		Commentary:      stringArg(input, "commentary"),
		Visibility:      stringArg(input, "visibility"),
		LifecycleState:  stringArg(input, "lifecycle_state"),
		Distribution:    distributionArg(input, "distribution"),
		ReshareDisabled: boolArg(input, "is_reshare_disabled_by_author"),
	})
}
