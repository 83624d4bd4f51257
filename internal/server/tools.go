package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name: "colorchecker_detect",
			Description: "Run the ColorChecker verification pipeline on a single camera " +
				"frame and return a confidence score, failure classification, and " +
				"per-metric diagnostics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Frame width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Frame height in pixels",
					},
					"rotation_degrees": map[string]interface{}{
						"type":        "integer",
						"description": "Informational rotation hint (0, 90, 180, or 270); not used by detection",
					},
					"rgba_base64": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded row-major RGBA8 pixel buffer, length >= width*height*4",
					},
				},
				"required": []string{"width", "height", "rgba_base64"},
			},
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
