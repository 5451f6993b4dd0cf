package tui

import (
	"fmt"

	"github.com/akyairhashvil/pomo/internal/config"
)

// Set with -ldflags "-X github.com/akyairhashvil/pomo/internal/tui.AppVersion=...".
var (
	AppVersion = "dev"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := fmt.Sprintf("%s %s", config.AppName, AppVersion)
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", label, GitCommit, BuildTime)
	}
	return label
}
