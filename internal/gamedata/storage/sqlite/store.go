package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/occulta/internal/gamedata"
	"github.com/louisbranch/occulta/internal/gamedata/storage/sqlite/migrations"
	apperrors "github.com/louisbranch/occulta/internal/platform/errors"
	sqlitemigrate "github.com/louisbranch/occulta/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed access to the reference tables.
type Store struct {
	sqlDB *sql.DB
}

var (
	_ gamedata.Source          = (*Store)(nil)
	_ gamedata.NameSheetSource = (*Store)(nil)
)

// DB returns the underlying sql.DB instance.
func (s *Store) DB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.sqlDB
}

// Open opens a SQLite gamedata store at the provided path and applies the
// schema migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// tableError maps a query failure on table to a domain error.
func tableError(table string, err error) error {
	if sqlitemigrate.IsMissingTableError(err) {
		return apperrors.WrapWithMetadata(
			apperrors.CodeReferenceTableMissing,
			"reference table missing",
			map[string]string{"table": table},
			err,
		)
	}
	return fmt.Errorf("query %s: %w", table, err)
}

func encodeJSON(value any) (string, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func decodeJSON(raw string, target any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), target)
}
