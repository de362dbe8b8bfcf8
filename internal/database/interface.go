package database

import (
	"context"

	"github.com/akyairhashvil/breathe/internal/models"
)

// SettingsRepository defines key/value settings access.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

// PreferenceRepository defines typed preference access.
type PreferenceRepository interface {
	LoadPreferences(ctx context.Context, defaults models.Preferences) (models.Preferences, error)
	SavePreferences(ctx context.Context, p models.Preferences) error
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	PreferenceRepository
}

var _ Repository = (*Database)(nil)
