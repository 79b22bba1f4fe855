// Package db embeds the parameter database migrations so production builds
// (built with the embed_migrations tag) carry them in the binary.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
