package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/classe-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can classify emails.

The server exposes the classify_email tool and the classe://settings and
classe://labels resources. By default it communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default)
  classe mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  classe mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// newMCPServer builds the server. Settings are resolved once; every tool
// call gets its own controller.
func newMCPServer() (*mcp.Server, error) {
	if controllerFactory == nil {
		return nil, errNotConfigured
	}
	settings, err := resolveSettings()
	if err != nil {
		return nil, err
	}

	factory := controllerFactory
	ports := &mcp.Ports{
		NewController: func() driving.SubmissionController {
			return factory(settings)
		},
		Attachments: attachmentService,
		Settings:    settingsService,
	}
	return mcp.NewServer(ports)
}
