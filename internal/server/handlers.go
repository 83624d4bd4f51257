package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/colorchecker/verifier-core/internal/frame"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the
// specified tool. The response wraps the tool result in MCP's content
// format:
//
//	{"content": [{"type": "text", "text": "<JSON result>"}]}
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{"type": "text", "text": mustMarshalJSON(result)},
			},
		},
	}
}

func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "colorchecker_detect":
		return s.handleColorcheckerDetect(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &MCPError{Code: code, Message: message, Data: data},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string. On
// marshal failure it returns an empty string rather than panicking.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type colorcheckerDetectArgs struct {
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	RotationDegrees int    `json:"rotation_degrees"`
	RGBABase64      string `json:"rgba_base64"`
}

func (s *Server) handleColorcheckerDetect(args json.RawMessage) (interface{}, error) {
	var a colorcheckerDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	pixels, err := base64.StdEncoding.DecodeString(a.RGBABase64)
	if err != nil {
		return nil, fmt.Errorf("decoding rgba_base64: %w", err)
	}

	f := frame.Frame{
		Width:           a.Width,
		Height:          a.Height,
		RotationDegrees: a.RotationDegrees,
		Pixels:          pixels,
	}

	return s.orchestrator.Detect(f), nil
}
