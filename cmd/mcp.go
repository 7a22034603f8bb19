package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/avatars/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server on stdio for AI agent integration",
	Long: `Starts a Model Context Protocol server over stdio exposing render_avatar,
list_characters and describe_character tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		svc, cleanup, err := buildService(cfg, cfg.Log.NewLogger(), cfg.RecordRenders)
		if err != nil {
			return err
		}
		defer cleanup()

		mcp.Version = Version
		srv := mcp.NewServer(svc)

		// Log to stderr since stdout is used for MCP protocol.
		fmt.Fprintf(os.Stderr, "avatars MCP server starting (templates: %s)\n", templateLocation(cfg))

		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
