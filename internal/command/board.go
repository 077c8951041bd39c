package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/block-xaero/cyan/internal/types"
)

// NewBoardCmd creates the board command group.
func NewBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Create boards and manage faces",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newBoardNewCmd(),
		newBoardFaceCmd(),
	)

	return cmd
}

func newBoardNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <workspace> <name>",
		Short: "Create a board in a workspace",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNode(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer n.Close()

			workspace, err := resolveWorkspaceRef(n, args[0])
			if err != nil {
				return writeCommandError(cmd, err)
			}

			board, err := n.CreateBoard(workspace.ID, args[1])
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if jsonMode(cmd) {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(board)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s in %s)\n", board.ID, board.Name, workspace.Name)
			return nil
		},
	}
}

func newBoardFaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "face <board-id> [face]",
		Short: "Show or set a board's face (canvas, notebook, notes)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNode(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer n.Close()

			boardID := args[0]
			if len(args) == 1 {
				face, err := n.Face(boardID)
				if err != nil {
					return writeCommandError(cmd, err)
				}
				if jsonMode(cmd) {
					return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{"board": boardID, "face": face})
				}
				fmt.Fprintln(cmd.OutOrStdout(), face)
				return nil
			}

			if !types.ValidFace(args[1]) {
				return writeCommandError(cmd, fmt.Errorf("unknown face: %s (use canvas, notebook, or notes)", args[1]))
			}
			face := types.Face(args[1])
			if err := n.SetFace(boardID, face); err != nil {
				return writeCommandError(cmd, err)
			}

			if jsonMode(cmd) {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{"board": boardID, "face": face})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", boardID, face)
			return nil
		},
	}
}
