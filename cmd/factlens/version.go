package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/factlens/factlens/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "factlens %s\n", version.String())
	},
}
