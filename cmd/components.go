package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"panel-router/internal/catalog"
	"panel-router/internal/config"
)

var componentsCmd = &cobra.Command{
	Use:   "components [project.panelproj]",
	Short: "List component definitions",
	Long: "Lists the standard component catalog, or the catalog embedded in a\n" +
		"project file when one is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := catalog.StandardLibrary()
		if len(args) == 1 {
			_, store, err := openProject(args[0], config.Load())
			if err != nil {
				return err
			}
			lib = store.Library()
		}

		lib.Sort()
		for _, def := range lib.Definitions {
			fmt.Printf("%-16s %s %s\n", def.ID, def.Name,
				dimStyle.Render(fmt.Sprintf("%.0f×%.0f×%.0f mm, %d pins",
					def.Size.Width, def.Size.Height, def.Size.Depth, len(def.Pins))))
			for _, pin := range def.Pins {
				fmt.Printf("    %-12s %s\n", pin.Name, dimStyle.Render(pin.Type.String()))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(componentsCmd)
}
