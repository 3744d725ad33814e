// Package migrations embeds the schema migrations of the SQL event stores.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
