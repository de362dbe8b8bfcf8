package database

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/models"
)

// LoadPreferences overlays stored values on defaults. Unparseable values are
// ignored rather than failing startup.
func (d *Database) LoadPreferences(ctx context.Context, defaults models.Preferences) (models.Preferences, error) {
	p := defaults
	if v, ok, err := d.GetSetting(ctx, config.SettingTechnique); err != nil {
		return defaults, err
	} else if ok && v != "" {
		p.TechniqueID = v
	}
	if v, ok, err := d.GetSetting(ctx, config.SettingMinutes); err != nil {
		return defaults, err
	} else if ok {
		if n, perr := strconv.Atoi(v); perr == nil && n > 0 {
			p.SessionMinutes = n
		}
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{config.SettingHaptics, &p.Haptics},
		{config.SettingReminders, &p.Reminders},
		{config.SettingDarkMode, &p.DarkMode},
	}
	for _, b := range bools {
		v, ok, err := d.GetSetting(ctx, b.key)
		if err != nil {
			return defaults, err
		}
		if !ok {
			continue
		}
		if parsed, perr := strconv.ParseBool(v); perr == nil {
			*b.dst = parsed
		}
	}
	return p, nil
}

// SavePreferences writes every preference in one transaction.
func (d *Database) SavePreferences(ctx context.Context, p models.Preferences) error {
	values := []struct{ key, value string }{
		{config.SettingTechnique, p.TechniqueID},
		{config.SettingMinutes, strconv.Itoa(p.SessionMinutes)},
		{config.SettingHaptics, strconv.FormatBool(p.Haptics)},
		{config.SettingReminders, strconv.FormatBool(p.Reminders)},
		{config.SettingDarkMode, strconv.FormatBool(p.DarkMode)},
	}
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, v := range values {
			if _, err := tx.ExecContext(ctx, upsertSetting, v.key, v.value); err != nil {
				return &OpError{Op: "save preferences", Key: v.key, Err: err}
			}
		}
		return nil
	})
	var opErr *OpError
	if err != nil && !errors.As(err, &opErr) {
		return &OpError{Op: "save preferences", Err: err}
	}
	return err
}
