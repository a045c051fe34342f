package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stagger",
	Short: "Stagger plays dependency-driven animation scenes",
	Long: `Stagger sequences staggered animations: each node starts once its predecessor
reaches a trigger threshold. Scenes are YAML files; without one the built-in
landing scene is used.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
