package mcp

import (
	"encoding/json"
	"fmt"
)

// ToolResult is the body of a tools/call reply.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock is one block of tool output; every tool here emits text.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToMap omits isError on success so clients see the field only on failures.
func (r *ToolResult) ToMap() map[string]any {
	m := map[string]any{
		"content": r.Content,
	}
	if r.IsError {
		m["isError"] = true
	}
	return m
}

// TextResponse wraps text in a single text block, flagged as an error when isErr is set.
func TextResponse(text string, isErr bool) map[string]any {
	return (&ToolResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: isErr,
	}).ToMap()
}

func SuccessResponse(text string) map[string]any { return TextResponse(text, false) }

func ErrorResponse(message string) map[string]any { return TextResponse(message, true) }

// UnmarshalArgs decodes the loosely typed arguments of a tools/call into T.
// Missing arguments leave T at its zero value.
func UnmarshalArgs[T any](args any) (T, error) {
	var out T
	if args == nil {
		return out, nil
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return out, fmt.Errorf("encode arguments: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode arguments: %w", err)
	}
	return out, nil
}
