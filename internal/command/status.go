package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/block-xaero/cyan/internal/core"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show node status and counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNode(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer n.Close()

			status, err := n.Counters()
			if err != nil {
				return writeCommandError(cmd, err)
			}
			unread, err := n.UnreadTotal()
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if jsonMode(cmd) {
				payload := map[string]any{
					"node_id":      status.NodeID,
					"display_name": n.DisplayName(),
					"ready":        status.Ready,
					"objects":      status.Objects,
					"peers":        status.Peers,
					"unread":       unread,
					"dir":          n.Dir(),
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(payload)
			}

			out := cmd.OutOrStdout()
			state := "not ready"
			if status.Ready {
				state = "ready"
			}
			fmt.Fprintf(out, "node %s (%s) — %s\n", core.ShortID(status.NodeID, 8), n.DisplayName(), state)
			fmt.Fprintf(out, "  dir:     %s\n", n.Dir())
			fmt.Fprintf(out, "  objects: %d\n", status.Objects)
			fmt.Fprintf(out, "  peers:   %d\n", status.Peers)
			fmt.Fprintf(out, "  unread:  %d\n", unread)
			return nil
		},
	}
}
