package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"panel-router/internal/catalog"
	"panel-router/internal/config"
	"panel-router/internal/enclosure"
	"panel-router/internal/project"
	"panel-router/internal/twin"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var routeCmd = &cobra.Command{
	Use:   "route <project.panelproj>",
	Short: "Route all wires in a project and save the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if res, _ := cmd.Flags().GetFloat64("resolution"); res > 0 {
			cfg.Resolution = res
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		proj, store, err := openProject(args[0], cfg)
		if err != nil {
			return err
		}

		reports, err := store.RouteAllWires(cfg.Resolution)
		if err != nil {
			return err
		}

		failed := 0
		for _, r := range reports {
			if r.Result.Routed() {
				fmt.Printf("%s %s %s\n",
					okStyle.Render("✓"), r.Label,
					dimStyle.Render(fmt.Sprintf("(%d waypoints, %d nodes expanded)",
						len(r.Result.Waypoints), r.Result.Expanded)))
			} else {
				failed++
				fmt.Printf("%s %s %s\n",
					failStyle.Render("✗"), r.Label,
					dimStyle.Render(r.Result.Status.String()))
			}
		}
		fmt.Printf("\n%d routed, %d failed\n", len(reports)-failed, failed)

		if !dryRun {
			if err := proj.Update(store); err != nil {
				return err
			}
			if err := proj.Save(args[0]); err != nil {
				return err
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	routeCmd.Flags().Float64("resolution", 0, "grid resolution in mm (overrides config)")
	routeCmd.Flags().Bool("dry-run", false, "report routes without saving the project")
	rootCmd.AddCommand(routeCmd)
}

// openProject loads a project file and restores its snapshot into a fresh
// store tuned with the given config.
func openProject(path string, cfg config.Config) (*project.File, *twin.Store, error) {
	proj, err := project.Load(path)
	if err != nil {
		return nil, nil, err
	}
	store, err := twin.NewStore(enclosure.Standard800x600x200(), catalog.NewLibrary())
	if err != nil {
		return nil, nil, err
	}
	store.SetClearance(cfg.Clearance)
	store.SetSearchLimit(cfg.SearchLimit)
	if err := proj.Restore(store); err != nil {
		return nil, nil, fmt.Errorf("restoring %s: %w", path, err)
	}
	return proj, store, nil
}
