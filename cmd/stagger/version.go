package main

import (
	"fmt"

	"github.com/aretw0/stagger"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stagger",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stagger version %s\n", stagger.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
