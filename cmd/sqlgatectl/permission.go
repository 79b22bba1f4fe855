package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// permissionCmd represents the permission command
var permissionCmd = &cobra.Command{
	Use:   "permission",
	Short: "Manage the permission matrix",
	Long:  `Manage the per-table permission matrix stored in the parameter database.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'permission' requires a subcommand (load, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(permissionCmd)
}
