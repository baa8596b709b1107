package starstore

import (
	"fmt"
	"regexp"
	"time"

	"github.com/huangsam/stargaze/schema"
)

// validateTableName validates that the table name is a safe SQL identifier.
// It ensures the name consists only of alphanumeric characters and underscores,
// starting with a letter or underscore, to prevent SQL injection.
func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	matched, err := regexp.MatchString(`^[a-zA-Z_][a-zA-Z0-9_]*$`, name)
	if err != nil {
		return fmt.Errorf("error validating table name: %w", err)
	}
	if !matched {
		return fmt.Errorf("invalid table name: %s (must match pattern ^[a-zA-Z_][a-zA-Z0-9_]*$)", name)
	}
	return nil
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.StoreBackend) string {
	switch backend {
	case schema.PostgreSQLBackend:
		return fmt.Sprintf("\"%s\"", name)
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite
		return fmt.Sprintf("\"%s\"", name)
	}
}

// formatTime converts a time.Time to the appropriate format for the backend.
// SQLite stores timestamps as RFC3339 text; MySQL and PostgreSQL take native
// datetime values.
func formatTime(t time.Time, backend schema.StoreBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.Format(time.RFC3339Nano)
	default:
		return t
	}
}
