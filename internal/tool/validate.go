// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gemaraproj/jsonld-check/internal/jsonld"
	"github.com/gemaraproj/jsonld-check/internal/jsonld/syntax"
)

// MetadataValidateJSONLD describes the validate_jsonld tool.
var MetadataValidateJSONLD = &mcp.Tool{
	Name: "validate_jsonld",
	Description: "Find every <script type=\"application/ld+json\"> block in an HTML document and " +
		"check that each block is syntactically valid JSON. " +
		"Blocks are located by pattern, not by parsing the HTML, so a literal </script> inside " +
		"a JSON string ends the block early. Only JSON syntax is checked, not JSON-LD semantics.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw HTML of the page to check",
			},
			"source_id": map[string]interface{}{
				"type":        "string",
				"description": "Optional identifier for the page (file path, URL, etc.) echoed in the result.",
			},
		},
	},
}

// MetadataCheckJSONSyntax describes the check_json_syntax tool.
var MetadataCheckJSONSyntax = &mcp.Tool{
	Name:        "check_json_syntax",
	Description: "Check that a piece of text is a single well-formed JSON document and report where it breaks if not.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"text"},
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to check",
			},
		},
	},
}

// InputValidateJSONLD is the input for the ValidateJSONLD tool.
type InputValidateJSONLD struct {
	Content  string `json:"content"`
	SourceID string `json:"source_id"`
}

// BlockOutcome is the result for one embedded block.
type BlockOutcome struct {
	Index int  `json:"index"`
	Valid bool `json:"valid"`
	// Error, Line and Column are set only for invalid blocks.
	Error  string `json:"error,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// OutputValidateJSONLD is the output for the ValidateJSONLD tool.
type OutputValidateJSONLD struct {
	SourceID   string         `json:"source_id"`
	Valid      bool           `json:"valid"`
	BlockCount int            `json:"block_count"`
	Blocks     []BlockOutcome `json:"blocks"`
}

// InputCheckJSONSyntax is the input for the CheckJSONSyntax tool.
type InputCheckJSONSyntax struct {
	Text string `json:"text"`
}

// OutputCheckJSONSyntax is the output for the CheckJSONSyntax tool.
type OutputCheckJSONSyntax struct {
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// ValidateJSONLD checks every JSON-LD block in the supplied HTML. Invalid
// blocks are part of a successful result; only missing input is an error.
func ValidateJSONLD(_ context.Context, _ *mcp.CallToolRequest, input InputValidateJSONLD) (*mcp.CallToolResult, OutputValidateJSONLD, error) {
	if input.Content == "" {
		return nil, OutputValidateJSONLD{}, fmt.Errorf("content is required")
	}

	sourceID := input.SourceID
	if sourceID == "" {
		sourceID = "unknown"
	}

	v := jsonld.NewValidator(io.Discard, nil)
	report := v.ValidateSource(jsonld.Source{ID: sourceID, Content: []byte(input.Content)})

	out := OutputValidateJSONLD{
		SourceID:   sourceID,
		Valid:      report.Valid(),
		BlockCount: len(report.Blocks),
		Blocks:     make([]BlockOutcome, 0, len(report.Blocks)),
	}
	for _, b := range report.Blocks {
		outcome := BlockOutcome{Index: b.Index, Valid: b.Valid()}
		if b.Err != nil {
			outcome.Error = b.Err.Error()
			outcome.Line = b.Err.Line
			outcome.Column = b.Err.Column
		}
		out.Blocks = append(out.Blocks, outcome)
	}
	return nil, out, nil
}

// CheckJSONSyntax runs the syntax checker on raw text. Empty text is a
// syntax failure, not an input error.
func CheckJSONSyntax(_ context.Context, _ *mcp.CallToolRequest, input InputCheckJSONSyntax) (*mcp.CallToolResult, OutputCheckJSONSyntax, error) {
	err := syntax.Check(input.Text)
	if err == nil {
		return nil, OutputCheckJSONSyntax{Valid: true}, nil
	}

	out := OutputCheckJSONSyntax{Error: err.Error()}
	var pe *syntax.ParseError
	if errors.As(err, &pe) {
		out.Line = pe.Line
		out.Column = pe.Column
	}
	return nil, out, nil
}
