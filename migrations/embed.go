// Package migrations embeds the SQL schema scripts for each storage backend.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
