// Package migrations embeds the goose migrations for the local draft store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
