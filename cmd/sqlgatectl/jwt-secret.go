package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// jwtSecretCmd represents the jwt-secret command
var jwtSecretCmd = &cobra.Command{
	Use:   "jwt-secret",
	Short: "Manage the token signing secret",
	Long:  `Manage the token signing secret`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'jwt-secret' requires a subcommand generate")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(jwtSecretCmd)
}
