package tools

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
	"golang.org/x/net/html"
)

type articlePreviewTool struct{}

func (t articlePreviewTool) Specification() Specification {
	return Specification{
		Name:        "article_preview",
		Description: "Fetch a URL and return its title and text content, useful for composing create_article_post arguments.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"url"},
			Properties: map[string]ParameterObject{
				"url": {
					Type:        "string",
					Description: "The URL of the article to preview.",
				},
			},
		},
	}
}

func (t articlePreviewTool) Call(ctx context.Context, input Input) (any, error) {
	rawURL := strings.TrimSpace(stringArg(input, "url"))
	if rawURL == "" {
		return nil, linkedin.InvalidArgumentError{Msg: "url is required"}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch article, status: %v", resp.Status)
	}

	title := ""
	var text strings.Builder
	tokenizer := html.NewTokenizer(resp.Body)
	inTitle := false
	skipDepth := 0
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "title":
				inTitle = true
			case "script", "style", "noscript", "iframe":
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "title":
				inTitle = false
			case "script", "style", "noscript", "iframe":
				if skipDepth > 0 {
					skipDepth--
				}
			}
		case html.TextToken:
			trimmed := bytes.TrimSpace(tokenizer.Text())
			if len(trimmed) == 0 || skipDepth > 0 {
				continue
			}
			if inTitle {
				if title == "" {
					title = string(trimmed)
				}
				continue
			}
			text.Write(trimmed)
			text.WriteRune('\n')
		}
	}
	return map[string]any{
		"url":   rawURL,
		"title": title,
		"text":  text.String(),
	}, nil
}
