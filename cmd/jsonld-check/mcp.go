// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gemaraproj/jsonld-check/internal/tool"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON-LD checks as MCP tools over stdio",
	Long: `Start a Model Context Protocol server on stdin/stdout exposing:

  validate_jsonld     check every JSON-LD block of an HTML document
  check_json_syntax   check that a piece of text is well-formed JSON`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("serving MCP over stdio")
	err := tool.NewServer(version).Run(ctx, &mcp.StdioTransport{})
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
