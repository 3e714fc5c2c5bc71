package tools

import (
	"context"

	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

type initializeImageUploadTool struct {
	client *linkedin.Client
}

func (t initializeImageUploadTool) Specification() Specification {
	return Specification{
		Name:        "initialize_image_upload",
		Description: "Phase one of the image upload: returns a pre-signed upload URL and the image URN.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"owner"},
			Properties: map[string]ParameterObject{
				"owner": {
					Type:        "string",
					Description: "URN of the member or organization owning the image.",
				},
			},
		},
	}
}

func (t initializeImageUploadTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.InitializeImageUpload(ctx, stringArg(input, "owner"))
}

type uploadImageBinaryTool struct {
	client *linkedin.Client
}

func (t uploadImageBinaryTool) Specification() Specification {
	return Specification{
		Name:        "upload_image_binary",
		Description: "Phase two of the image upload: PUT the file bytes to the pre-signed upload URL.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"upload_url", "file_path"},
			Properties: map[string]ParameterObject{
				"upload_url": {
					Type:        "string",
					Description: "Pre-signed upload URL from initialize_image_upload.",
				},
				"file_path": {
					Type:        "string",
					Description: "Path to a local image file.",
				},
			},
		},
	}
}

func (t uploadImageBinaryTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.UploadImageBinary(ctx, stringArg(input, "upload_url"), stringArg(input, "file_path"))
}
