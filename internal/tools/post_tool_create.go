package tools

import (
	"context"

	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

type createPostTool struct {
	client *linkedin.Client
}

func (t createPostTool) Specification() Specification {
	return Specification{
		Name:        "create_post",
		Description: "Publish a standard text post. Visibility defaults to PUBLIC, lifecycle to PUBLISHED, distribution to the main feed.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"author", "commentary"},
			Properties: map[string]ParameterObject{
				"author": {
					Type:        "string",
					Description: "Author URN, e.g. urn:li:person:abc.",
				},
				"commentary": {
					Type:        "string",
					Description: "The text of the post. Newlines are preserved.",
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

func (t createPostTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.CreatePost(ctx, linkedin.PostArgs{
		Author:          stringArg(input, "author"),
		Commentary:      stringArg(input, "commentary"),
		Visibility:      stringArg(input, "visibility"),
		LifecycleState:  stringArg(input, "lifecycle_state"),
		Distribution:    distributionArg(input, "distribution"),
		ReshareDisabled: boolArg(input, "is_reshare_disabled_by_author"),
	})
}
