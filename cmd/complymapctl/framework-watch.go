package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/complymap/complymap/pkg/catalog"
	"github.com/complymap/complymap/pkg/config"
	"github.com/complymap/complymap/pkg/db"
	gormstore "github.com/complymap/complymap/pkg/server/store/gorm"
)

// frameworkWatchCmd represents the framework watch command
var frameworkWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a catalog directory and reload files as they change",
	Long: `Watch a directory of framework catalog files and reload each file when it
is created or modified. Defaults to the configured catalog_path when no
directory is given.

Example:
  complymapctl framework watch
  complymapctl framework watch /run/complymap/catalogs`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}

		if err := watchCatalog(dir); err != nil && err != context.Canceled {
			fmt.Fprintf(os.Stderr, "Failed to watch catalog: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	frameworkCmd.AddCommand(frameworkWatchCmd)
}

func watchCatalog(dir string) error {
	if dir == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		dir = cfg.CatalogPath
	}
	if dir == "" {
		return fmt.Errorf("no catalog directory given and catalog_path is not configured")
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	loader := catalog.NewLoader(gormstore.NewFrameworksStore(database))

	// Cancel the watch on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s for catalog changes\n", dir)
	return loader.Watch(ctx, dir)
}
