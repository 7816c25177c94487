package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"panel-router/internal/catalog"
	"panel-router/internal/config"
	"panel-router/internal/enclosure"
	"panel-router/internal/project"
	"panel-router/internal/twin"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export and import digital twin snapshots",
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export <project.panelproj> <snapshot.json>",
	Short: "Write a project's twin snapshot to a standalone JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openProject(args[0], config.Load())
		if err != nil {
			return err
		}
		data, err := store.ExportSnapshot()
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[1], data, 0644); err != nil {
			return err
		}
		fmt.Printf("exported %d components, %d connections, %d wires to %s\n",
			len(store.Instances()), len(store.Connections()), len(store.Wires()), args[1])
		return nil
	},
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import <snapshot.json> <project.panelproj>",
	Short: "Create a project file from a standalone snapshot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		store, err := twin.NewStore(enclosure.Standard800x600x200(), catalog.NewLibrary())
		if err != nil {
			return err
		}
		if err := store.LoadSnapshot(data); err != nil {
			return fmt.Errorf("loading snapshot %s: %w", args[0], err)
		}

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = args[1]
		}
		proj, err := project.New(name, store)
		if err != nil {
			return err
		}
		if err := proj.Save(args[1]); err != nil {
			return err
		}
		fmt.Printf("created %s with %d components\n", args[1], len(store.Instances()))
		return nil
	},
}

func init() {
	snapshotImportCmd.Flags().String("name", "", "project name (defaults to the file name)")
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotImportCmd)
	rootCmd.AddCommand(snapshotCmd)
}
