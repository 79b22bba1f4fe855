package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// permissionWatchCmd represents the permission watch command
var permissionWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a permission file and reload it when modified",
	Long: `Watch a YAML permission matrix file and reload it into the parameter
database whenever it changes.

Example:
  sqlgatectl permission watch /etc/sqlgate/permissions.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchPermissions(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch permissions: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	permissionCmd.AddCommand(permissionWatchCmd)
}

func watchPermissions(filename string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for permission changes\n", filename)

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, reloading permissions...\n", time.Now().Format(time.RFC3339))

				count, err := loadPermissionFile(filename)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error loading permissions: %v\n", err)
				} else {
					fmt.Printf("Loaded %d permission record(s)\n", count)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
