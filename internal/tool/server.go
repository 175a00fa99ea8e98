// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer returns an MCP server with every tool of this package registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "jsonld-check",
		Version: version,
	}, nil)

	mcp.AddTool(server, MetadataValidateJSONLD, ValidateJSONLD)
	mcp.AddTool(server, MetadataCheckJSONSyntax, CheckJSONSyntax)
	return server
}
