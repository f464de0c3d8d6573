// Package migrations contains dialect-aware Go database migrations. The users
// and bookmarks tables need per-driver DDL (timestamp and text column types
// differ between SQLite, MySQL, and PostgreSQL), so they live here rather than
// in cross-database SQL files.
package migrations

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect configures the SQL dialect for Go migrations.
// Must be called before goose.Up. Valid values: "sqlite3", "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}
