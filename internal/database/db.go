// Package database persists user preferences in a small SQLite file.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite handle.
type Database struct {
	DB     *sql.DB
	dbFile string
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT
	);`,
}

// Open creates the file if needed and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &OpError{Op: "open", Key: path, Err: err}
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &OpError{Op: "open", Key: path, Err: err}
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &OpError{Op: "ping", Key: path, Err: err}
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) createTables(ctx context.Context) error {
	for _, query := range schema {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "migrate", Err: fmt.Errorf("%w: %s", err, query)}
		}
	}
	return nil
}

// Path returns the database file location.
func (d *Database) Path() string { return d.dbFile }

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
