// cliphud: flash copied text in a transient on-screen overlay.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := newRootCmd()
	if len(os.Args) == 1 {
		root.SetArgs([]string{"run"})
	}
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cliphud",
		Short: "Show copied text in a heads-up overlay",
		Long: `cliphud watches the system clipboard and briefly shows every newly copied
text in a floating overlay centred on the primary display.

Running "cliphud" with no arguments is the same as "cliphud run".

Config file search order (first found wins):
  /etc/cliphud/cliphud.toml
  $HOME/.config/cliphud/cliphud.toml
  path supplied via --config

All flags can be set via CLIPHUD_<FLAG> env vars (dashes become underscores),
a dotenv file (--env-file, or .env next to the executable) or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newTruncateCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cliphud %s\n", Version)
		},
	}
}
