package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir is where the preference database lives.
func DataDir(app string) string {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"), app)
}

// ConfigDir is where config.toml is looked up.
func ConfigDir(app string) string {
	return xdgDir("XDG_CONFIG_HOME", ".config", app)
}

func xdgDir(env, fallback, app string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, fallback, app)
}

// ReportsDir is the default destination for exported guides.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	configPath := filepath.Join(home, ".config", "user-dirs.dirs")
	if data, err := os.ReadFile(configPath); err == nil {
		if dir := parseUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

func parseUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, key+"=") {
			continue
		}
		return strings.Trim(strings.TrimPrefix(line, key+"="), "\"")
	}
	return ""
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return strings.ReplaceAll(path, "$HOME", "")
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
