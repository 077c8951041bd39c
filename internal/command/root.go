package command

import (
	"os"

	"github.com/spf13/cobra"
)

const AppName = "cyan"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Cyan - boards, notes, and DMs in the terminal",
		Long:          "Cyan is a board workspace: groups and workspaces of boards, each with a canvas, notebook, or notes face, plus direct messages between peers. Running cyan with no arguments opens the interactive UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().String("dir", "", "data directory (overrides config and CYAN_DIR)")
	cmd.PersistentFlags().Bool("json", false, "output in JSON format")

	cmd.AddCommand(
		NewInitCmd(),
		NewLsCmd(),
		NewBoardCmd(),
		NewStatusCmd(),
		NewDMCmd(),
		NewPeersCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd(Version).Execute()
}
