package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/ui"
)

// runUI opens the node and hands it to the interactive UI, which owns it
// until the program exits.
func runUI(cmd *cobra.Command) error {
	if jsonMode(cmd) {
		return writeCommandError(cmd, fmt.Errorf("--json not supported for the interactive UI"))
	}

	n, err := openNode(cmd)
	if err != nil {
		return writeCommandError(cmd, err)
	}

	config, err := core.ReadConfig()
	if err != nil {
		_ = n.Close()
		return writeCommandError(cmd, err)
	}

	return ui.Run(ui.Options{Node: n, Theme: config.Theme})
}
