package tui

import (
	"context"

	"github.com/akyairhashvil/breathe/internal/models"
)

// Store defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=database.go -destination=mock_store_test.go -package=tui
type Store interface {
	LoadPreferences(ctx context.Context, defaults models.Preferences) (models.Preferences, error)
	SavePreferences(ctx context.Context, p models.Preferences) error
}
