package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X ...commands.version=..."
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gateway version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}
