package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/block-xaero/cyan/internal/core"
)

type boardSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Group     string `json:"group"`
	Workspace string `json:"workspace"`
	Face      string `json:"face"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// NewLsCmd creates the ls command.
func NewLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [pattern]",
		Short: "List boards, optionally filtered by a glob pattern",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sortFlag, _ := cmd.Flags().GetString("sort")
			key, err := sortKeyFromFlag(sortFlag)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			n, err := openNode(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer n.Close()

			cards, err := n.Boards()
			if err != nil {
				return writeCommandError(cmd, err)
			}
			core.SortBoards(cards, key)
			if len(args) > 0 {
				cards = core.FilterBoardsPattern(cards, args[0])
			}

			if jsonMode(cmd) {
				boards := make([]boardSummary, 0, len(cards))
				for _, card := range cards {
					boards = append(boards, boardSummary{
						ID:        card.ID,
						Name:      card.Name,
						Group:     card.GroupName,
						Workspace: card.WorkspaceName,
						Face:      string(card.Face),
						CreatedAt: card.CreatedAt,
						UpdatedAt: card.UpdatedAt,
					})
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{"boards": boards})
			}

			out := cmd.OutOrStdout()
			if len(cards) == 0 {
				fmt.Fprintln(out, "No boards")
				return nil
			}
			fmt.Fprintf(out, "Boards (%d):\n", len(cards))
			for _, card := range cards {
				fmt.Fprintf(out, "  %s  %-20s %s/%s  %-8s %s\n",
					card.ID, card.Name, card.GroupName, card.WorkspaceName,
					card.Face, formatRelative(card.UpdatedAt))
			}
			return nil
		},
	}

	cmd.Flags().String("sort", "name", "sort order: name, created, modified, group")

	return cmd
}

func sortKeyFromFlag(value string) (core.SortKey, error) {
	switch core.SortKey(value) {
	case "", core.SortByName:
		return core.SortByName, nil
	case core.SortByCreated:
		return core.SortByCreated, nil
	case core.SortByModified:
		return core.SortByModified, nil
	case core.SortByGroup:
		return core.SortByGroup, nil
	default:
		return "", fmt.Errorf("unknown sort key: %s (use name, created, modified, or group)", value)
	}
}
