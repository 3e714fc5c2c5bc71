package linkedin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient("test-token", srv.URL)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return client, srv
}

func TestNewClient_EmptyToken(t *testing.T) {
	for _, token := range []string{"", "   ", "\t\n"} {
		if _, err := NewClient(token, ""); err == nil {
			t.Fatalf("expected error for token %q", token)
		}
	}
}

func TestNewClient_TrimsBaseURL(t *testing.T) {
	c, err := NewClient("token", "https://example.com/")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := c.url("/rest/posts"); got != "https://example.com/rest/posts" {
		t.Fatalf("exp %q got %q", "https://example.com/rest/posts", got)
	}
}

func TestGetProfile_SendsSessionHeaders(t *testing.T) {
	var gotReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		w.Write([]byte(`{"id":"abc"}`))
	})

	res, err := client.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	obj := res.(map[string]any)
	if obj["id"] != "abc" {
		t.Fatalf("exp %q got %v", "abc", obj["id"])
	}
	if gotReq.URL.Path != "/rest/identityMe" {
		t.Fatalf("unexpected path: %v", gotReq.URL.Path)
	}
	if got := gotReq.Header.Get("Authorization"); got != "Bearer test-token" {
		t.Fatalf("unexpected auth header: %q", got)
	}
	if got := gotReq.Header.Get("X-Restli-Protocol-Version"); got != "2.0.0" {
		t.Fatalf("unexpected protocol header: %q", got)
	}
	if got := gotReq.Header.Get("LinkedIn-Version"); got != "202510.03" {
		t.Fatalf("unexpected version header: %q", got)
	}
}

func TestClassify_EmptyBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	res, err := client.CreatePost(context.Background(), PostArgs{
		Author:     "urn:li:person:abc",
		Commentary: "hi",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	obj := res.(map[string]any)
	if obj["status"] != http.StatusCreated {
		t.Fatalf("exp %v got %v", http.StatusCreated, obj["status"])
	}
}

func TestClassify_NonJSONBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("urn:li:share:123"))
	})
	res, err := client.CreatePost(context.Background(), PostArgs{
		Author:     "urn:li:person:abc",
		Commentary: "hi",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	obj := res.(map[string]any)
	if obj["status"] != http.StatusOK || obj["body"] != "urn:li:share:123" {
		t.Fatalf("unexpected result: %v", obj)
	}
}

func TestClassify_AuthRejected(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"secret":"must not leak"}`))
		})
		_, err := client.GetProfile(context.Background())
		var authErr AuthRejectedError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthRejectedError, got: %v", err)
		}
		if authErr.Status != status {
			t.Fatalf("exp %v got %v", status, authErr.Status)
		}
		if strings.Contains(err.Error(), "must not leak") {
			t.Fatalf("response body leaked into error: %v", err)
		}
		if !strings.Contains(err.Error(), "LINKEDIN_ACCESS_TOKEN") {
			t.Fatalf("expected credential guidance in error, got: %v", err)
		}
	}
}

func TestClassify_UpstreamErrorSnippet(t *testing.T) {
	longBody := strings.Repeat("x", 600) + "\ntail"
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(longBody))
	})
	_, err := client.GetProfile(context.Background())
	var upstreamErr UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got: %v", err)
	}
	if upstreamErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("exp %v got %v", http.StatusUnprocessableEntity, upstreamErr.Status)
	}
	if len(upstreamErr.Snippet) > snippetMaxLen {
		t.Fatalf("snippet too long: %d", len(upstreamErr.Snippet))
	}
	if strings.Contains(upstreamErr.Snippet, "\n") {
		t.Fatal("snippet must be single-line")
	}
}

func TestEnsureAuthorIdentity_CachesAcrossCalls(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"sub":"abc123"}`))
	})

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		urn, err := client.EnsureAuthorIdentity(ctx)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if urn != "urn:li:person:abc123" {
			t.Fatalf("exp %q got %q", "urn:li:person:abc123", urn)
		}
	}
	if calls != 1 {
		t.Fatalf("exp 1 network call, got %d", calls)
	}
}

func TestEnsureAuthorIdentity_PassesThroughQualifiedURN(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sub":"urn:li:person:already"}`))
	})
	urn, err := client.EnsureAuthorIdentity(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if urn != "urn:li:person:already" {
		t.Fatalf("exp %q got %q", "urn:li:person:already", urn)
	}
}

func TestEnsureAuthorIdentity_NoUsableID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"no sub here"}`))
	})
	_, err := client.EnsureAuthorIdentity(context.Background())
	var upstreamErr UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got: %v", err)
	}
}

func TestEnsureAuthorIdentity_AuthRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("denied body"))
	})
	_, err := client.EnsureAuthorIdentity(context.Background())
	var authErr AuthRejectedError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthRejectedError, got: %v", err)
	}
	if strings.Contains(err.Error(), "denied body") {
		t.Fatalf("response body leaked into error: %v", err)
	}
}

func TestCreatePost_SendsDefaultPayload(t *testing.T) {
	var gotBody map[string]any
	var gotVersion string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("LinkedIn-Version")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.Write([]byte(`{"id":"urn:li:share:1"}`))
	})

	_, err := client.CreatePost(context.Background(), PostArgs{
		Author:     "urn:li:person:abc",
		Commentary: "Hello world",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotVersion != "202502" {
		t.Fatalf("exp version 202502 got %q", gotVersion)
	}
	if gotBody["visibility"] != "PUBLIC" || gotBody["lifecycleState"] != "PUBLISHED" {
		t.Fatalf("unexpected defaults: %v", gotBody)
	}
	if gotBody["isReshareDisabledByAuthor"] != false {
		t.Fatalf("exp reshare-disable false, got %v", gotBody["isReshareDisabledByAuthor"])
	}
	dist := gotBody["distribution"].(map[string]any)
	if dist["feedDistribution"] != "MAIN_FEED" {
		t.Fatalf("unexpected distribution: %v", dist)
	}
	if len(dist["targetEntities"].([]any)) != 0 || len(dist["thirdPartyDistributionChannels"].([]any)) != 0 {
		t.Fatalf("expected empty targeting, got %v", dist)
	}
}

func TestCreatePost_InvalidArgsSkipNetwork(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	_, err := client.CreatePost(context.Background(), PostArgs{Author: "  "})
	var invalidArg InvalidArgumentError
	if !errors.As(err, &invalidArg) {
		t.Fatalf("expected InvalidArgumentError, got: %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no network calls, got %d", calls)
	}
}

func TestSearch_QueryParams(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"elements":[]}`))
	})

	_, err := client.Search(context.Background(), SearchArgs{
		Keywords: "golang",
		Type:     "people",
		Count:    25,
		Start:    50,
		Location: "Stockholm",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotQuery["keywords"][0] != "golang" {
		t.Fatalf("unexpected keywords: %v", gotQuery["keywords"])
	}
	if gotQuery["filters"][0] != "List(resultType->PEOPLE)" {
		t.Fatalf("unexpected filters: %v", gotQuery["filters"])
	}
	if gotQuery["count"][0] != "25" || gotQuery["start"][0] != "50" {
		t.Fatalf("unexpected pagination: %v", gotQuery)
	}
	if gotQuery["location"][0] != "Stockholm" {
		t.Fatalf("unexpected location: %v", gotQuery["location"])
	}
}

func TestSearch_NoTypeFilterWhenBlank(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"elements":[]}`))
	})
	_, err := client.Search(context.Background(), SearchArgs{Keywords: "golang"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, exists := gotQuery["filters"]; exists {
		t.Fatalf("expected no filters param, got %v", gotQuery["filters"])
	}
	if gotQuery["count"][0] != "10" {
		t.Fatalf("expected default count 10, got %v", gotQuery["count"])
	}
}

func TestReactToPost_ResolvesActor(t *testing.T) {
	var reactionReq *http.Request
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v2/userinfo" {
			w.Write([]byte(`{"sub":"abc"}`))
			return
		}
		reactionReq = r.Clone(r.Context())
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	})

	_, err := client.ReactToPost(context.Background(), ReactionArgs{Post: "urn:li:share:9"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reactionReq.URL.Path != "/rest/reactions" {
		t.Fatalf("unexpected path: %v", reactionReq.URL.Path)
	}
	if got := reactionReq.URL.Query().Get("actor"); got != "urn:li:person:abc" {
		t.Fatalf("unexpected actor: %q", got)
	}
	if gotBody["root"] != "urn:li:share:9" || gotBody["reactionType"] != "LIKE" {
		t.Fatalf("unexpected body: %v", gotBody)
	}
}

func TestCommentOnPost(t *testing.T) {
	var commentPath string
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v2/userinfo" {
			w.Write([]byte(`{"sub":"abc"}`))
			return
		}
		commentPath = r.URL.EscapedPath()
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	})

	_, err := client.CommentOnPost(context.Background(), CommentArgs{
		Post: "urn:li:share:9",
		Text: "nice post",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(commentPath, "/rest/socialActions/") || !strings.HasSuffix(commentPath, "/comments") {
		t.Fatalf("unexpected path: %v", commentPath)
	}
	msg := gotBody["message"].(map[string]any)
	if msg["text"] != "nice post" || gotBody["actor"] != "urn:li:person:abc" {
		t.Fatalf("unexpected body: %v", gotBody)
	}
}

func TestUpsertExperience_CreateVsUpdate(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v2/userinfo" {
			w.Write([]byte(`{"sub":"abc"}`))
			return
		}
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	})

	ctx := context.Background()
	args := ExperienceArgs{Title: "Engineer", Company: "ACME"}
	if _, err := client.UpsertExperience(ctx, args); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	args.ID = "12345"
	if _, err := client.UpsertExperience(ctx, args); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("exp 2 position calls, got %d", len(paths))
	}
	if paths[0] != "/rest/positions" {
		t.Fatalf("unexpected create path: %v", paths[0])
	}
	if paths[1] != "/rest/positions/12345" {
		t.Fatalf("unexpected update path: %v", paths[1])
	}
}

func TestSendInvitation(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	})
	_, err := client.SendInvitation(context.Background(), InvitationArgs{
		Invitee: "urn:li:person:xyz",
		Message: "  ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotBody["invitee"] != "urn:li:person:xyz" {
		t.Fatalf("unexpected invitee: %v", gotBody["invitee"])
	}
	if _, exists := gotBody["message"]; exists {
		t.Fatal("expected blank message to be omitted")
	}
}
