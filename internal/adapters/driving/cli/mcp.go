package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/filesafe/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can query the vault.

The vault is unlocked once at start (--pin or prompt). Requests made after
auto-lock has elapsed are refused; "filesafe vault auto-lock 0" keeps a
long-running server open.

Examples:
  # Stdio mode (default)
  filesafe mcp serve

  # HTTP mode, bound to the loopback interface
  filesafe mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "filesafe": {
        "command": "/path/to/filesafe",
        "args": ["mcp", "serve"]
      }
    }
  }`,
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
	if err := requireUnlocked(cmd); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:   searchService,
		Profile:  profileService,
		Document: documentService,
		Vault:    vaultService,
	})
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	if port > 0 {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}
	return server.Run(ctx)
}
