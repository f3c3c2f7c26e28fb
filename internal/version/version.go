package version

import (
	"fmt"
	"runtime"
)

// Build identity, stamped by the release script:
//
//	go build -ldflags "\
//	  -X github.com/soyeahso/roster/internal/version.Version=$(git describe --tags) \
//	  -X github.com/soyeahso/roster/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/soyeahso/roster/internal/version.Date=$(date -u +%Y-%m-%d)"
//
// An unstamped binary reports itself as a dev build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info returns the one-line version banner printed by the version command.
func Info() string {
	return fmt.Sprintf("roster %s (commit: %s, built: %s, %s/%s)",
		Version, short(Commit), Date, runtime.GOOS, runtime.GOARCH)
}

func short(s string) string {
	if len(s) > 7 {
		return s[:7]
	}
	return s
}
