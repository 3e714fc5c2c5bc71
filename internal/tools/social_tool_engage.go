package tools

import (
	"context"

	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

type reactToPostTool struct {
	client *linkedin.Client
}

func (t reactToPostTool) Specification() Specification {
	return Specification{
		Name:        "react_to_post",
		Description: "React to a post as the authenticated member. Defaults to LIKE.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"post"},
			Properties: map[string]ParameterObject{
				"post": {
					Type:        "string",
					Description: "URN of the post to react to, e.g. urn:li:share:123.",
				},
				"reaction_type": {
					Type:        "string",
					Description: "The reaction to apply.",
					Enum:        &[]string{"LIKE", "PRAISE", "EMPATHY", "INTEREST", "APPRECIATION", "ENTERTAINMENT"},
				},
			},
		},
	}
}

func (t reactToPostTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.ReactToPost(ctx, linkedin.ReactionArgs{
		Post:         stringArg(input, "post"),
		ReactionType: stringArg(input, "reaction_type"),
	})
}

type commentOnPostTool struct {
	client *linkedin.Client
}

func (t commentOnPostTool) Specification() Specification {
	return Specification{
		Name:        "comment_on_post",
		Description: "Comment on a post as the authenticated member.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"post", "text"},
			Properties: map[string]ParameterObject{
				"post": {
					Type:        "string",
					Description: "URN of the post to comment on.",
				},
				"text": {
					Type:        "string",
					Description: "The comment text.",
				},
			},
		},
	}
}

func (t commentOnPostTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.CommentOnPost(ctx, linkedin.CommentArgs{
		Post: stringArg(input, "post"),
		Text: stringArg(input, "text"),
	})
}
