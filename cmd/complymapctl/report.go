package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/complymap/complymap/pkg/db"
	"github.com/complymap/complymap/pkg/engine"
	gormstore "github.com/complymap/complymap/pkg/server/store/gorm"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run cross-framework reports",
	Long:  `Run cross-framework coverage and transitive compliance reports.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'report' requires a subcommand (coverage, transitive)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

var reportCoverageCmd = &cobra.Command{
	Use:   "coverage <source> <target>",
	Short: "Report how much of a target framework the source covers",
	Long: `Compute the coverage report between two frameworks.

A target requirement counts as covered when at least one mapping from the
source framework reaches it.

Example:
  complymapctl report coverage iso27001 nist-csf`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := connectEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect: %v\n", err)
			os.Exit(1)
		}

		report, err := eng.Coverage(args[0], args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to compute coverage: %v\n", err)
			os.Exit(1)
		}

		output, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(output))
	},
}

var reportTransitiveCmd = &cobra.Command{
	Use:   "transitive <source> <target> <tenant>",
	Short: "Report the transitive benefit a tenant's work carries over",
	Long: `Compute the transitive benefit report for a tenant between two frameworks.

Each mapping contributes the lesser of the tenant's fulfillment of the
source requirement and the mapping strength.

Example:
  complymapctl report transitive iso27001 nist-csf acme`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := connectEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect: %v\n", err)
			os.Exit(1)
		}

		report, err := eng.TransitiveBenefit(args[0], args[1], args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to compute transitive benefit: %v\n", err)
			os.Exit(1)
		}

		output, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(output))
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportCoverageCmd)
	reportCmd.AddCommand(reportTransitiveCmd)
}

func connectEngine() (*engine.Engine, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	factory := gormstore.NewStores(database)
	return engine.New(factory.Stores(), factory), nil
}
