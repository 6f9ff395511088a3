package version

import "runtime"

// Set at build time via -ldflags "-X l10nlint/pkg/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)
