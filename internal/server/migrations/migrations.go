// Package migrations embeds the goose migrations for the server-side
// documents store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
