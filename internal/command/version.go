package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cyan version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonMode(cmd) {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": cmd.Root().Version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", AppName, cmd.Root().Version)
			return nil
		},
	}
}
