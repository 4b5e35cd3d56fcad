package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/complymap/complymap/pkg/catalog"
	"github.com/complymap/complymap/pkg/db"
	gormstore "github.com/complymap/complymap/pkg/server/store/gorm"
)

// frameworkLoadCmd represents the framework load command
var frameworkLoadCmd = &cobra.Command{
	Use:   "load <path>",
	Short: "Load framework catalog files",
	Long: `Load a framework catalog YAML file, or a directory of them, into the database.

Each catalog file defines one framework and its requirements. Loading is
idempotent: frameworks are upserted by code and requirements by their
identifier within the framework, so a file can be reloaded after edits.

Example:
  complymapctl framework load catalogs/iso27001.yml
  complymapctl framework load catalogs/`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		results, err := loadCatalogPath(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
			os.Exit(1)
		}

		// Output results as JSON
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
	},
}

func init() {
	frameworkCmd.AddCommand(frameworkLoadCmd)
}

func loadCatalogPath(path string) ([]catalog.Result, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	loader := catalog.NewLoader(gormstore.NewFrameworksStore(database))

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		results, err := loader.LoadDir(path)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Loaded %d framework(s) from %s\n", len(results), path)
		return results, nil
	}

	result, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Loaded framework '%s' with %d requirement(s)\n", result.FrameworkCode, result.Requirements)
	return []catalog.Result{*result}, nil
}
