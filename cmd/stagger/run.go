package main

import (
	"github.com/aretw0/stagger/internal/cli"
	"github.com/aretw0/stagger/internal/config"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [scene.yaml]",
	Short: "Play a scene in the terminal",
	Long:  `Animates one progress bar per node until every node has settled. Settings are read from STAGGER_* environment variables and an optional .env file.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		opts := cli.RunOptions{Out: cmd.OutOrStdout()}
		if len(args) > 0 {
			opts.ScenePath = args[0]
		}
		opts.Watch, _ = cmd.Flags().GetBool("watch")
		opts.Report, _ = cmd.Flags().GetBool("report")
		opts.Metrics, _ = cmd.Flags().GetBool("metrics")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.Quiet, _ = cmd.Flags().GetBool("quiet")

		if cmd.Flags().Changed("fps") {
			cfg.FPS, _ = cmd.Flags().GetInt("fps")
		}
		if cmd.Flags().Changed("max-ticks") {
			cfg.MaxTicks, _ = cmd.Flags().GetInt("max-ticks")
		}
		if cmd.Flags().Changed("stepper") {
			cfg.Stepper, _ = cmd.Flags().GetString("stepper")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return cli.Execute(opts, cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("watch", "w", false, "Replay the scene whenever its file changes")
	runCmd.Flags().Bool("report", false, "Print the trigger/settle timeline when the scene settles")
	runCmd.Flags().Bool("metrics", false, "Print Prometheus metrics when the scene settles")
	runCmd.Flags().Bool("debug", false, "Log every trigger and settle to stderr")
	runCmd.Flags().BoolP("quiet", "q", false, "Do not draw the banner or the bars")
	runCmd.Flags().Int("fps", 60, "Frames per second (overrides STAGGER_FPS)")
	runCmd.Flags().String("stepper", "spring", "Interpolation: spring, linear or instant (overrides STAGGER_STEPPER)")
	runCmd.Flags().Int("max-ticks", 600, "Give up after this many ticks (overrides STAGGER_MAX_TICKS)")

	rootCmd.RunE = runCmd.RunE
}
