package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewDMCmd creates the dm command.
func NewDMCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dm <peer> <message...>",
		Short: "Send a direct message to a peer",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNode(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer n.Close()

			peer, err := resolvePeerRef(n, args[0])
			if err != nil {
				return writeCommandError(cmd, err)
			}

			body := strings.TrimSpace(strings.Join(args[1:], " "))
			if body == "" {
				return writeCommandError(cmd, fmt.Errorf("message body cannot be empty"))
			}

			msg, err := n.SendDM(peer.ID, body)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if jsonMode(cmd) {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(msg)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "→ %s: %s\n", peer.DisplayName, body)
			return nil
		},
	}
}
