package tools

import (
	"context"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

// Registry is a threadsafe storage for LinkedInTools. The catalog is
// static: everything is registered at construction and never mutated
// afterwards.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]LinkedInTool
	debug bool
}

// NewRegistry returns a registry holding the full tool catalog, bound to
// the given client.
func NewRegistry(client *linkedin.Client) *Registry {
	r := &Registry{
		tools: make(map[string]LinkedInTool),
		debug: misc.Truthy(os.Getenv("DEBUG")),
	}
	for _, t := range catalog(client) {
		r.set(t)
	}
	return r
}

func catalog(client *linkedin.Client) []LinkedInTool {
	return []LinkedInTool{
		getProfileTool{client},
		getUserinfoTool{client},
		getVerificationReportTool{client},
		createPostTool{client},
		createArticlePostTool{client},
		createReshareTool{client},
		initializeImageUploadTool{client},
		uploadImageBinaryTool{client},
		createImagePostTool{client},
		createMultiImagePostTool{client},
		searchTool{client},
		sendInvitationTool{client},
		reactToPostTool{client},
		commentOnPostTool{client},
		upsertExperienceTool{client},
		articlePreviewTool{},
	}
}

func (r *Registry) set(t LinkedInTool) {
	r.mu.Lock()
	if r.debug {
		ancli.Okf("adding tool to registry, name: %v\n", t.Specification().Name)
	}
	r.tools[t.Specification().Name] = t
	r.mu.Unlock()
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (LinkedInTool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Specifications returns the catalog sorted by tool name.
func (r *Registry) Specifications() []Specification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	specs := make([]Specification, 0, len(r.tools))
	for _, t := range r.tools {
		specs = append(specs, t.Specification())
	}
	slices.SortFunc(specs, func(a, b Specification) int {
		return strings.Compare(a.Name, b.Name)
	})
	return specs
}

// Invoke dispatches name with the given input. Errors from payload
// validation and the client propagate unchanged, a name not in the
// catalog fails with UnknownToolError.
func (r *Registry) Invoke(ctx context.Context, name string, input Input) (any, error) {
	t, exists := r.Get(name)
	if !exists {
		return nil, UnknownToolError{Name: name}
	}
	if input == nil {
		input = Input{}
	}
	if r.debug {
		ancli.Noticef("invoking tool: %v, input: %v\n", name, debug.IndentedJsonFmt(input))
	}
	return t.Call(ctx, input)
}
