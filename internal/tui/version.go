package tui

import "fmt"

// Build metadata, set with -ldflags "-X".
var (
	AppVersion = "0.1.0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}

// VersionLabel is the string printed by the version command.
func VersionLabel() string { return versionLabel() }
