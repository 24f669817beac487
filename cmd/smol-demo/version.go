package main

import (
	"fmt"

	"github.com/aretw0/smol"
	"github.com/aretw0/smol/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of smol",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout(), smol.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "smol-demo version %s\n", smol.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
