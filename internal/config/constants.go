package config

import "time"

// Session lengths offered on the home screen, in minutes.
var SessionChoices = []int{3, 5, 10}

// Timer settings.
const (
	DefaultSessionMinutes = 5
	DefaultTechnique      = "relaxation"

	// FrameInterval is how often the UI redraws and advances the engine.
	FrameInterval = 50 * time.Millisecond

	// PlainInterval drives the engine in headless mode.
	PlainInterval = 100 * time.Millisecond
)

// Breathing circle bounds. Fullness 0 maps to the Min values, 1 to the Max values.
const (
	CircleScaleMin   = 0.7
	CircleScaleMax   = 1.2
	CircleOpacityMin = 0.3
	CircleOpacityMax = 0.8
)

// Application settings.
const (
	AppName        = "breathe"
	DBFileName     = "breathe.db"
	ConfigFileName = "config.toml"
	EnvPrefix      = "BREATHE"
)

// Preference keys in the settings table.
const (
	SettingTechnique = "technique"
	SettingMinutes   = "session_minutes"
	SettingHaptics   = "haptics"
	SettingReminders = "reminders"
	SettingDarkMode  = "dark_mode"
)
