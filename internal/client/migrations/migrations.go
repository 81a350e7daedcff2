// Package migrations embeds the goose SQL migrations for the local database.
package migrations

import "embed"

// Migrations holds the *.sql files at the FS root, ordered by version prefix.
//
//go:embed *.sql
var Migrations embed.FS
