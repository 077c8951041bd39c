package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/mcp"
)

// NewMCPCmd creates the mcp command, which serves MCP tools over stdio.
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonMode(cmd) {
				return writeCommandError(cmd, fmt.Errorf("--json not supported for the MCP server"))
			}

			dirFlag, _ := cmd.Flags().GetString("dir")
			dir, err := core.ResolveDataDir(dirFlag)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			server, err := mcp.NewServer(dir, Version)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer server.Close()

			return server.Run(cmd.Context())
		},
	}
}
