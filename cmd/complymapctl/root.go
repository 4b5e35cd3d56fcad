package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "complymapctl",
	Short: "ComplyMap server command line interface",
	Long: `complymapctl manages the ComplyMap compliance graph server: the HTTP API,
database migrations, configuration, and the framework catalog.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
