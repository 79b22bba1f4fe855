package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sqlgatectl",
	Short: "SQL command gateway server and tooling",
	Long: `sqlgatectl runs the SQL command gateway and its administrative tooling:
database migrations, permission matrix loading, and JWT secret generation.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
