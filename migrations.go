// Package fitprogram carries assets compiled into the binaries.
package fitprogram

import "embed"

// MigrationsFS holds the PostgreSQL schema migrations.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
