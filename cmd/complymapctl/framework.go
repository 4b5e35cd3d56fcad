package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// frameworkCmd represents the framework command
var frameworkCmd = &cobra.Command{
	Use:   "framework",
	Short: "Manage the framework catalog",
	Long:  `Manage the compliance framework catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'framework' requires a subcommand (load, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(frameworkCmd)
}
