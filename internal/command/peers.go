package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type peerSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Online      bool   `json:"online"`
	Unread      int    `json:"unread"`
	LastSeen    int64  `json:"last_seen"`
}

// NewPeersCmd creates the peers command.
func NewPeersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peers",
		Short: "List known peers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNode(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer n.Close()

			peers, err := n.Peers()
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if jsonMode(cmd) {
				summaries := make([]peerSummary, 0, len(peers))
				for _, peer := range peers {
					summaries = append(summaries, peerSummary{
						ID:          peer.ID,
						DisplayName: peer.DisplayName,
						Online:      peer.Online,
						Unread:      peer.Unread,
						LastSeen:    peer.LastSeen,
					})
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{"peers": summaries})
			}

			out := cmd.OutOrStdout()
			if len(peers) == 0 {
				fmt.Fprintln(out, "No peers")
				return nil
			}
			fmt.Fprintf(out, "Peers (%d):\n", len(peers))
			for _, peer := range peers {
				state := "offline"
				if peer.Online {
					state = "online"
				}
				unread := ""
				if peer.Unread > 0 {
					unread = fmt.Sprintf("  %d unread", peer.Unread)
				}
				fmt.Fprintf(out, "  %s  %-16s %s%s\n", peer.ID, peer.DisplayName, state, unread)
			}
			return nil
		},
	}

	cmd.AddCommand(newPeersAddCmd())

	return cmd
}

func newPeersAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register a peer by display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNode(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer n.Close()

			peer, err := n.AddPeer(args[0])
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if jsonMode(cmd) {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(peer)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", peer.DisplayName, peer.ID)
			return nil
		},
	}
}
