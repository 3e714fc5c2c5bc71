package tools

import (
	"context"

	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

type searchTool struct {
	client *linkedin.Client
}

func (t searchTool) Specification() Specification {
	return Specification{
		Name:        "search",
		Description: "Free-text search over jobs, people or companies with pagination and an optional location filter.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"keywords"},
			Properties: map[string]ParameterObject{
				"keywords": {
					Type:        "string",
					Description: "Free-text search keywords.",
				},
				"type": {
					Type:        "string",
					Description: "Result type filter. Omit for unfiltered results.",
					Enum:        &[]string{"jobs", "people", "companies"},
				},
				"count": {
					Type:        "number",
					Description: "Number of results per page, defaults to 10.",
				},
				"start": {
					Type:        "number",
					Description: "Pagination offset, defaults to 0.",
				},
				"location": {
					Type:        "string",
					Description: "Optional location filter.",
				},
			},
		},
	}
}

func (t searchTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.Search(ctx, linkedin.SearchArgs{
		Keywords: stringArg(input, "keywords"),
		Type:     stringArg(input, "type"),
		Count:    intArg(input, "count"),
		Start:    intArg(input, "start"),
		Location: stringArg(input, "location"),
	})
}
