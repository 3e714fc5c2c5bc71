package server

import "encoding/json"

// request is one decoded JSON-RPC 2.0 message. The id is kept raw so it
// can be echoed back verbatim, whatever scalar the client chose.
type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toolCall is the params shape of a tools/call request.
type toolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// textContent is the single content block wrapping a tool result.
type textContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// internalErrorCode is the fixed code for every tool failure crossing
// the protocol boundary.
const internalErrorCode = -32000
