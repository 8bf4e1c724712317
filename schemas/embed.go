// Package schemas provides the embedded SQL migrations for the mysql backend.
package schemas

import "embed"

// Migrations holds one idempotent statement per file, applied in name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
