package tools

import "context"

// Input is the raw argument map arriving with a tools/call request.
type Input map[string]any

// Specification describes one tool the way it is advertised over the
// protocol: name, human readable description and the schema of its
// arguments.
type Specification struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	InputSchema *InputSchema `json:"inputSchema,omitempty"`
}

type InputSchema struct {
	Type       string                     `json:"type"`
	Required   []string                   `json:"required,omitempty"`
	Properties map[string]ParameterObject `json:"properties"`
}

type ParameterObject struct {
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Enum        *[]string        `json:"enum,omitempty"`
	Items       *ParameterObject `json:"items,omitempty"`
}

// LinkedInTool is one invocable capability. Call returns the decoded
// upstream result, later serialized into the protocol's text content
// block by the message loop.
type LinkedInTool interface {
	Call(ctx context.Context, input Input) (any, error)
	Specification() Specification
}

// UnknownToolError signals a dispatch to a name not in the registry.
type UnknownToolError struct {
	Name string
}

func (e UnknownToolError) Error() string {
	return "unknown tool: " + e.Name
}
