package testutil

import (
	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/models"
)

// TechniqueBuilder provides fluent API for creating test techniques.
type TechniqueBuilder struct {
	technique models.Technique
}

func NewTechnique() *TechniqueBuilder {
	return &TechniqueBuilder{
		technique: models.Technique{
			ID:     "test",
			Name:   "Test Technique",
			Inhale: 4,
			Exhale: 4,
		},
	}
}

func (b *TechniqueBuilder) WithID(id string) *TechniqueBuilder {
	b.technique.ID = id
	return b
}

func (b *TechniqueBuilder) WithName(name string) *TechniqueBuilder {
	b.technique.Name = name
	return b
}

func (b *TechniqueBuilder) WithTimings(inhale, hold, exhale int) *TechniqueBuilder {
	b.technique.Inhale = inhale
	b.technique.Hold = hold
	b.technique.Exhale = exhale
	return b
}

func (b *TechniqueBuilder) Build() models.Technique {
	return b.technique
}

// PreferencesBuilder provides fluent API for creating test preferences.
type PreferencesBuilder struct {
	prefs models.Preferences
}

func NewPreferences() *PreferencesBuilder {
	return &PreferencesBuilder{
		prefs: models.Preferences{
			TechniqueID:    config.DefaultTechnique,
			SessionMinutes: config.DefaultSessionMinutes,
			Haptics:        true,
			Reminders:      true,
		},
	}
}

func (b *PreferencesBuilder) WithTechnique(id string) *PreferencesBuilder {
	b.prefs.TechniqueID = id
	return b
}

func (b *PreferencesBuilder) WithMinutes(m int) *PreferencesBuilder {
	b.prefs.SessionMinutes = m
	return b
}

func (b *PreferencesBuilder) WithHaptics(on bool) *PreferencesBuilder {
	b.prefs.Haptics = on
	return b
}

func (b *PreferencesBuilder) WithDarkMode(on bool) *PreferencesBuilder {
	b.prefs.DarkMode = on
	return b
}

func (b *PreferencesBuilder) Build() models.Preferences {
	return b.prefs
}
