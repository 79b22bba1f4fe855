// Package db builds the two GORM connection pools the gateway uses: one for
// the parameter database (permission matrix + users) and one for the
// transaction database that client SQL executes against.
package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a database connection for the given URL.
func Connect(url string) (*gorm.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	// Default to silent logging unless SQLGATE_LOG_LEVEL=debug is set
	logMode := logger.Silent
	if os.Getenv("SQLGATE_LOG_LEVEL") == "debug" {
		logMode = logger.Info
	}

	database, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  url,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return database, nil
}
