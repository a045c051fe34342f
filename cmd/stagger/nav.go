package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/stagger/internal/navigation"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/aretw0/stagger/pkg/scene"
	"github.com/spf13/cobra"
)

var navCmd = &cobra.Command{
	Use:   "nav <event>...",
	Short: "Replay navigation events against the page's view state",
	Long: `Each event is a location hash ("#projects", "#" for the default view),
"toggle" to open or close the menu, or "collapse" to close it.
The state is printed after every event.`,
	Example: `  stagger nav toggle '#projects' '#'`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		views, _ := cmd.Flags().GetStringSlice("views")
		defaultView, _ := cmd.Flags().GetString("default")
		asJSON, _ := cmd.Flags().GetBool("json")

		m, err := navigation.New(views, navigation.WithDefaultView(defaultView))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		enc := json.NewEncoder(out)
		state := m.Initial()

		for _, arg := range args {
			event, err := parseNavEvent(arg)
			if err != nil {
				return err
			}
			if state, err = m.Apply(state, event); err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}

			if asJSON {
				if err := enc.Encode(state); err != nil {
					return err
				}
				continue
			}
			menu := "closed"
			if state.MenuExpanded {
				menu = "open"
			}
			fmt.Fprintf(out, "%-10s view=%s menu=%s\n", arg, state.Current, menu)
		}
		return nil
	},
}

func parseNavEvent(arg string) (domain.NavEvent, error) {
	switch {
	case arg == "toggle":
		return domain.NavEvent{Type: domain.NavToggleMenu}, nil
	case arg == "collapse":
		return domain.NavEvent{Type: domain.NavCollapseMenu}, nil
	case strings.HasPrefix(arg, "#"):
		return domain.HashChanged(arg), nil
	default:
		return domain.NavEvent{}, fmt.Errorf("unknown event %q (want #hash, toggle or collapse)", arg)
	}
}

func init() {
	rootCmd.AddCommand(navCmd)

	navCmd.Flags().StringSlice("views", scene.LandingViews(), "Content views of the page")
	navCmd.Flags().String("default", domain.DefaultView, "View shown for an empty hash")
	navCmd.Flags().Bool("json", false, "Print states as JSON lines")
}
