package linkedin

import (
	"context"
	"net/http"
)

// PostArgs are the arguments for a standard text post.
type PostArgs struct {
	Author          string
	Commentary      string
	Visibility      string
	LifecycleState  string
	Distribution    map[string]any
	ReshareDisabled bool
}

// ArticlePostArgs are the arguments for a post wrapping an external article.
type ArticlePostArgs struct {
	Author         string
	Commentary     string
	Source         string
	Title          string
	Description    string
	Visibility     string
	LifecycleState string
	Distribution   map[string]any
}

// ReshareArgs are the arguments for republishing an existing post.
type ReshareArgs struct {
	Author          string
	Parent          string
	Commentary      string
	Visibility      string
	LifecycleState  string
	Distribution    map[string]any
	ReshareDisabled bool
}

// ImagePostArgs are the arguments for a post carrying one uploaded image.
type ImagePostArgs struct {
	Author         string
	ImageURN       string
	Commentary     string
	AltText        string
	Visibility     string
	LifecycleState string
}

// ImageItem is one image reference within a multi-image post.
type ImageItem struct {
	ID      string
	AltText string
}

// MultiImagePostArgs are the arguments for a post carrying several images.
type MultiImagePostArgs struct {
	Author          string
	Commentary      string
	Images          []ImageItem
	Visibility      string
	LifecycleState  string
	Distribution    map[string]any
	ReshareDisabled bool
}

// CreatePost publishes a standard text post.
func (c *Client) CreatePost(ctx context.Context, args PostArgs) (any, error) {
	payload, err := buildPostPayload(args)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/rest/posts", versionPosts, payload)
}

// CreateArticlePost publishes a post linking an external article.
func (c *Client) CreateArticlePost(ctx context.Context, args ArticlePostArgs) (any, error) {
	payload, err := buildArticlePostPayload(args)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/rest/posts", versionPosts, payload)
}

// CreateReshare republishes an existing post, optionally with commentary.
func (c *Client) CreateReshare(ctx context.Context, args ReshareArgs) (any, error) {
	payload, err := buildResharePayload(args)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/rest/posts", versionReshare, payload)
}

// CreateImagePost publishes a post carrying one previously uploaded image.
func (c *Client) CreateImagePost(ctx context.Context, args ImagePostArgs) (any, error) {
	payload, err := buildImagePostPayload(args)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/rest/posts", versionImages, payload)
}

// CreateMultiImagePost publishes a post carrying an ordered set of images.
func (c *Client) CreateMultiImagePost(ctx context.Context, args MultiImagePostArgs) (any, error) {
	payload, err := buildMultiImagePostPayload(args)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/rest/posts", versionMultiImage, payload)
}
