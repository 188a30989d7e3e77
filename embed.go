// Package hotelbot exposes assets embedded into the binary at build time.
package hotelbot

import "embed"

// MigrationsFS holds the SQL migration files applied on startup.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
