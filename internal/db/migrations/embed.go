// Package migrations embeds the SQL schema for the run tracker backends.
package migrations

import "embed"

// Postgres contains the PostgreSQL migrations, applied in file name order.
//
//go:embed postgres/*.up.sql
var Postgres embed.FS

// SQLite contains the SQLite migrations, applied in file name order.
//
//go:embed sqlite/*.up.sql
var SQLite embed.FS
