package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting returns the stored value for key and whether one exists.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &OpError{Op: "get setting", Key: key, Err: err}
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

const upsertSetting = "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value"

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, upsertSetting, key, value)
	if err != nil {
		return &OpError{Op: "set setting", Key: key, Err: err}
	}
	return nil
}
