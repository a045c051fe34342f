package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/stagger/internal/validator"
	"github.com/aretw0/stagger/pkg/adapters/yaml"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scene.yaml>",
	Short: "Check a scene for consistency",
	Long:  `Reports duplicate keys, dangling or self predecessors, cycles and out-of-range thresholds.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := yaml.NewFromFile(args[0]).Load(cmd.Context())
		if err != nil {
			return err
		}

		if err := validator.Specs(specs); err != nil {
			out := cmd.ErrOrStderr()
			fmt.Fprintln(out, "Validation failed:")
			for _, v := range domain.ValidationErrors(err) {
				fmt.Fprintf(out, "  - %v\n", v)
			}
			return errors.New("invalid scene")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Scene is valid! ✅ (%d nodes)\n", len(specs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
