package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-sqlite3"
)

const sqliteMemory = ":memory:"

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite using the
// primary result codes reported by go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
		return Retryable
	case sqlite3.ErrConstraint, sqlite3.ErrTooBig, sqlite3.ErrMismatch:
		return InvalidData
	}

	return NonRetryable
}

// sqliteDataSource turns "sqlite://<path>" into a path go-sqlite3 accepts.
// "file:" URIs and ":memory:" are passed through unchanged.
func sqliteDataSource(dsn string) string {
	if path, ok := strings.CutPrefix(dsn, "sqlite://"); ok {
		return path
	}
	return dsn
}

// createLocalDBDirIfNotExists makes sure the directory of a file-backed
// database exists, since SQLite creates the file but not its parents.
func createLocalDBDirIfNotExists(dataSource string) error {
	if dataSource == "" || dataSource == sqliteMemory || strings.HasPrefix(dataSource, "file:") {
		return nil
	}

	dir := filepath.Dir(dataSource)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}

	return nil
}
