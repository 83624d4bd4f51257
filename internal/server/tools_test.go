package server

import (
	"testing"
)

func TestGetToolDefinitionsHasColorcheckerDetect(t *testing.T) {
	tools := GetToolDefinitions()
	if len(tools) != 1 {
		t.Fatalf("GetToolDefinitions() returned %d tools, want 1", len(tools))
	}
	if tools[0].Name != "colorchecker_detect" {
		t.Fatalf("tool name = %q, want colorchecker_detect", tools[0].Name)
	}
}

func TestColorcheckerDetectSchemaRequiresWidthHeightAndFrame(t *testing.T) {
	tools := GetToolDefinitions()
	schema := tools[0].InputSchema
	required, ok := schema["required"].([]string)
	if !ok {
		t.Fatalf("schema.required is not a []string: %+v", schema["required"])
	}
	want := map[string]bool{"width": true, "height": true, "rgba_base64": true}
	if len(required) != len(want) {
		t.Fatalf("required = %v, want 3 entries", required)
	}
	for _, r := range required {
		if !want[r] {
			t.Fatalf("unexpected required field %q", r)
		}
	}
}

func TestHandleToolsListReturnsDefinitions(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("tools/list result is not a map: %+v", resp.Result)
	}
	tools, ok := result["tools"].([]Tool)
	if !ok || len(tools) != 1 {
		t.Fatalf("tools/list tools = %+v, want 1 Tool", result["tools"])
	}
}
