// Package sqlite applies compiled scripts to a SQLite database.
package sqlite

// Config holds SQLite repository configuration derived from storage.Config.
type Config struct {
	// DSN is a SQLite connection string or file path, e.g.:
	//   "file:seed.db?cache=shared"
	//   "seed.db" (interpreted by the driver)
	DSN string
}
