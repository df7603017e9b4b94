// Package urlshot exposes embedded assets shared across commands.
package urlshot

import "embed"

// Migrations contains the SQL migration files applied by the migrate command
// and the integration test harness.
//
//go:embed migrations/*.sql
var Migrations embed.FS
