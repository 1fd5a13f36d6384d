package repository

import (
	"database/sql"
	"fmt"
	"os"
)

// Migrate applies the DDL file at schemaPath. All statements are
// idempotent, so running it on every startup is safe.
func Migrate(db *sql.DB, schemaPath string) error {
	b, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.Exec(string(b)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
