package tools

import (
	"context"

	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

type createArticlePostTool struct {
	client *linkedin.Client
}

func (t createArticlePostTool) Specification() Specification {
	return Specification{
		Name:        "create_article_post",
		Description: "Publish a post linking an external article with title and description.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"author", "commentary", "article_source", "article_title", "article_description"},
			Properties: map[string]ParameterObject{
				"author": {
					Type:        "string",
					Description: "Author URN, e.g. urn:li:person:abc.",
				},
				"commentary": {
					Type:        "string",
					Description: "The text accompanying the article.",
				},
				"article_source": {
					Type:        "string",
					Description: "URL of the article.",
				},
				"article_title": {
					Type:        "string",
					Description: "Title shown on the article card.",
				},
				"article_description": {
					Type:        "string",
					Description: "Description shown on the article card.",
				},
				"visibility": {
					Type:        "string",
					Description: "Who can see the post.",
					Enum:        &[]string{"PUBLIC", "CONNECTIONS", "LOGGED_IN"},
				},
				"lifecycle_state": {
					Type:        "string",
					Description: "Publication state.",
					Enum:        &[]string{"PUBLISHED", "DRAFT"},
				},
				"distribution": {
					Type:        "object",
					Description: "Distribution override. Omit for main feed.",
				},
			},
		},
	}
}

func (t createArticlePostTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.CreateArticlePost(ctx, linkedin.ArticlePostArgs{
		Author:         stringArg(input, "author"),
		Commentary:     stringArg(input, "commentary"),
		Source:         stringArg(input, "article_source"),
		Title:          stringArg(input, "article_title"),
		Description:    stringArg(input, "article_description"),
		Visibility:     stringArg(input, "visibility"),
		LifecycleState: stringArg(input, "lifecycle_state"),
		Distribution:   distributionArg(input, "distribution"),
	})
}
