package command

import (
	"github.com/spf13/cobra"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/node"
)

// openNode resolves the data directory from flags and opens the node
// facade. The caller owns the returned node and must close it.
func openNode(cmd *cobra.Command) (*node.Node, error) {
	dirFlag, _ := cmd.Flags().GetString("dir")
	dir, err := core.ResolveDataDir(dirFlag)
	if err != nil {
		return nil, err
	}
	return node.Open(dir)
}

func jsonMode(cmd *cobra.Command) bool {
	enabled, _ := cmd.Flags().GetBool("json")
	return enabled
}
