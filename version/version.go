package version

import "fmt"

// Set via -ldflags "-X github.com/yeremiapane/restaurant-system/version.version=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func Version() string { return version }

func String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s", version, commit, date)
}
