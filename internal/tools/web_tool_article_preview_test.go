package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestArticlePreviewTool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(
				"<html><head><title>My Article</title>" +
					"<script>var x=1</script></head><body>" +
					"<h1>Heading</h1>" +
					"<p>Body text</p>" +
					"</body></html>",
			))
		}))
	defer srv.Close()

	res, err := articlePreviewTool{}.Call(context.Background(), Input{"url": srv.URL})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	obj := res.(map[string]any)
	if obj["title"] != "My Article" {
		t.Fatalf("exp %q got %q", "My Article", obj["title"])
	}
	if obj["text"] != "Heading\nBody text\n" {
		t.Fatalf("exp %q got %q", "Heading\nBody text\n", obj["text"])
	}
}

func TestArticlePreviewTool_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
	defer srv.Close()

	_, err := articlePreviewTool{}.Call(context.Background(), Input{"url": srv.URL})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestArticlePreviewTool_URLRequired(t *testing.T) {
	_, err := articlePreviewTool{}.Call(context.Background(), Input{"url": "  "})
	if err == nil || err.Error() != "url is required" {
		t.Fatalf("exp %q got %v", "url is required", err)
	}
}
