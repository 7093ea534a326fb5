// Package schemas embeds the table definitions for the MySQL-backed
// store, applied at startup.
package schemas

import "embed"

// Migrations holds the SQL files in apply order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
