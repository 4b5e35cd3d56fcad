// Package db embeds the SQL migrations so production builds can run them
// without the migration files on disk. The embed is gated behind the
// embed_migrations build tag at the call site; dev builds read the files
// directly.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
