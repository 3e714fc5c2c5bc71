package tools

import (
	"context"

	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

type createImagePostTool struct {
	client *linkedin.Client
}

func (t createImagePostTool) Specification() Specification {
	return Specification{
		Name:        "create_image_post",
		Description: "Publish a post carrying one previously uploaded image. Always surfaces on the main feed.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"author", "image_urn", "commentary"},
			Properties: map[string]ParameterObject{
				"author": {
					Type:        "string",
					Description: "Author URN, e.g. urn:li:person:abc.",
				},
				"image_urn": {
					Type:        "string",
					Description: "URN of the uploaded image, e.g. urn:li:image:456.",
				},
				"commentary": {
					Type:        "string",
					Description: "The text of the post.",
				},
				"alt_text": {
					Type:        "string",
					Description: "Optional alt text. Omitted when blank.",
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
			},
		},
	}
}

func (t createImagePostTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.CreateImagePost(ctx, linkedin.ImagePostArgs{
		Author:         stringArg(input, "author"),
		ImageURN:       stringArg(input, "image_urn"),
		Commentary:     stringArg(input, "commentary"),
		AltText:        stringArg(input, "alt_text"),
		Visibility:     stringArg(input, "visibility"),
		LifecycleState: stringArg(input, "lifecycle_state"),
	})
}

type createMultiImagePostTool struct {
	client *linkedin.Client
}

func (t createMultiImagePostTool) Specification() Specification {
	return Specification{
		Name:        "create_multi_image_post",
		Description: "Publish a post carrying an ordered list of uploaded images.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"author", "commentary", "images"},
			Properties: map[string]ParameterObject{
				"author": {
					Type:        "string",
					Description: "Author URN, e.g. urn:li:person:abc.",
				},
				"commentary": {
					Type:        "string",
					Description: "The text of the post.",
				},
				"images": {
					Type:        "array",
					Description: "Ordered image items, each with an 'id' URN and optional 'altText'.",
					Items: &ParameterObject{
						Type:        "object",
						Description: "One image reference.",
					},
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

func (t createMultiImagePostTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.CreateMultiImagePost(ctx, linkedin.MultiImagePostArgs{
		Author:          stringArg(input, "author"),
		Commentary:      stringArg(input, "commentary"),
		Images:          imagesArg(input, "images"),
		Visibility:      stringArg(input, "visibility"),
		LifecycleState:  stringArg(input, "lifecycle_state"),
		Distribution:    distributionArg(input, "distribution"),
		ReshareDisabled: boolArg(input, "is_reshare_disabled_by_author"),
	})
}
