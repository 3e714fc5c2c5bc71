package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/hashan-silva/linkedin-mcp-server/internal/tools"
)

const (
	protocolVersion = "0.1"
	serverName      = "linkedin-mcp-server"
	serverVersion   = "0.1.0"

	// Input lines beyond this size are rejected by the scanner. Tool
	// arguments with inlined content can get large.
	maxLineSize = 4 * 1024 * 1024
)

// Server runs the line-delimited JSON-RPC loop: one request per input
// line, one response per output line, processed strictly one at a time
// in arrival order.
type Server struct {
	registry *tools.Registry
	in       io.Reader
	out      io.Writer
	debug    bool
}

// New returns a server speaking on stdin/stdout.
func New(registry *tools.Registry) *Server {
	return &Server{
		registry: registry,
		in:       os.Stdin,
		out:      os.Stdout,
		debug:    misc.Truthy(os.Getenv("DEBUG")),
	}
}

// Run processes input lines until the stream closes. EOF is a clean
// exit, only stream-level read/write failures are errors. Lines which
// are not valid JSON are dropped without a response.
func (s *Server) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			if s.debug {
				ancli.Warnf("dropping undecodable input line: %v\n", err)
			}
			continue
		}
		resp := s.handle(ctx, &req)
		if resp == nil {
			continue
		}
		if err := s.emit(resp); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input stream: %w", err)
	}
	return nil
}

// handle routes one request. A nil return means no response is emitted:
// notifications and unrecognized methods get no reply.
func (s *Server) handle(ctx context.Context, req *request) *response {
	if len(req.ID) == 0 {
		return nil
	}
	switch req.Method {
	case "initialize":
		return &response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result: map[string]any{
				"protocolVersion": protocolVersion,
				"capabilities":    map[string]any{"tools": map[string]any{}},
				"serverInfo": map[string]any{
					"name":    serverName,
					"version": serverVersion,
				},
			},
		}
	case "tools/list", "list_tools":
		return &response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]any{"tools": s.registry.Specifications()},
		}
	case "tools/call", "call_tool":
		return s.handleToolCall(ctx, req)
	default:
		return nil
	}
}

// handleToolCall is the single place where tool errors cross the
// protocol boundary: whatever the registry or client failed with becomes
// an error envelope with the fixed internal code and the error's message
// text, nothing more.
func (s *Server) handleToolCall(ctx context.Context, req *request) *response {
	var call toolCall
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &call); err != nil {
			return errorResponse(req.ID, fmt.Sprintf("failed to parse tools/call params: %v", err))
		}
	}

	result, err := s.registry.Invoke(ctx, call.Name, call.Arguments)
	if err != nil {
		return errorResponse(req.ID, err.Error())
	}

	serialized, err := json.Marshal(result)
	if err != nil {
		return errorResponse(req.ID, fmt.Sprintf("failed to serialize tool result: %v", err))
	}
	return &response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]any{
			"content": []textContent{{Type: "text", Text: string(serialized)}},
		},
	}
}

func errorResponse(id json.RawMessage, message string) *response {
	return &response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &rpcError{Code: internalErrorCode, Message: message},
	}
}

func (s *Server) emit(resp *response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	payload = append(payload, '\n')
	if _, err := s.out.Write(payload); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
