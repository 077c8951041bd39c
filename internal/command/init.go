package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/node"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the cyan data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			dirFlag, _ := cmd.Flags().GetString("dir")

			dir, err := core.InitDataDir(dirFlag, force)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			// Opening seeds the default group, workspace, and welcome board.
			n, err := node.Open(dir)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer n.Close()

			if jsonMode(cmd) {
				payload := map[string]any{
					"dir":          dir,
					"node_id":      n.NodeID(),
					"display_name": n.DisplayName(),
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(payload)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initialized %s\n", dir)
			fmt.Fprintf(out, "  node %s (%s)\n", core.ShortID(n.NodeID(), 8), n.DisplayName())
			fmt.Fprintln(out, "  seeded personal/general with a welcome board")
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "reinitialize, destroying existing data")

	return cmd
}
