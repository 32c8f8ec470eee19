package constants

const (
	DatabaseTypeSQLite = "sqlite"

	// DefaultSQLitePath is the database file used when ASKDB_SQLITE_PATH is
	// not set. It matches the file the seeder writes by default.
	DefaultSQLitePath = "data.db"
)
