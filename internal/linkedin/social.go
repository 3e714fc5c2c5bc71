package linkedin

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// InvitationArgs are the arguments for sending a connection invitation.
type InvitationArgs struct {
	Invitee string
	Message string
}

// ReactionArgs are the arguments for reacting to a post. The acting
// member is always the authenticated author.
type ReactionArgs struct {
	Post string
	// ReactionType defaults to LIKE.
	ReactionType string
}

// CommentArgs are the arguments for commenting on a post.
type CommentArgs struct {
	Post string
	Text string
}

// SendInvitation sends a connection invitation to the given member URN,
// optionally with a custom message.
func (c *Client) SendInvitation(ctx context.Context, args InvitationArgs) (any, error) {
	invitee := strings.TrimSpace(args.Invitee)
	if invitee == "" {
		return nil, requiredArg("invitee")
	}
	payload := map[string]any{"invitee": invitee}
	if msg := strings.TrimSpace(args.Message); msg != "" {
		payload["message"] = msg
	}
	return c.do(ctx, http.MethodPost, "/rest/invitations", versionSocial, payload)
}

// ReactToPost adds a reaction to the given post as the authenticated
// member.
func (c *Client) ReactToPost(ctx context.Context, args ReactionArgs) (any, error) {
	post := strings.TrimSpace(args.Post)
	if post == "" {
		return nil, requiredArg("post")
	}
	actor, err := c.EnsureAuthorIdentity(ctx)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{
		"root":         post,
		"reactionType": strings.ToUpper(orDefault(args.ReactionType, "LIKE")),
	}
	return c.do(ctx, http.MethodPost, "/rest/reactions?actor="+url.QueryEscape(actor), versionSocial, payload)
}

// CommentOnPost adds a comment to the given post as the authenticated
// member.
func (c *Client) CommentOnPost(ctx context.Context, args CommentArgs) (any, error) {
	post := strings.TrimSpace(args.Post)
	text := strings.TrimSpace(args.Text)
	if post == "" {
		return nil, requiredArg("post")
	}
	if text == "" {
		return nil, requiredArg("text")
	}
	actor, err := c.EnsureAuthorIdentity(ctx)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{
		"actor":   actor,
		"message": map[string]any{"text": text},
	}
	return c.do(ctx, http.MethodPost, "/rest/socialActions/"+url.PathEscape(post)+"/comments", versionSocial, payload)
}
