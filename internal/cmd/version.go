package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mailadm version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("mailadm", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
