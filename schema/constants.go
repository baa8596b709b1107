package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for persistence.
	StoreBackend string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
