// Package migrations embeds the SQL schema migrations so the server binary
// can apply them on startup without a filesystem checkout.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
