package version

// Version, Commit, and Date are set via ldflags at build time.
//
//	go build -ldflags "-X github.com/factlens/factlens/pkg/version.Version=v1.0.0
//	  -X github.com/factlens/factlens/pkg/version.Commit=abc1234
//	  -X github.com/factlens/factlens/pkg/version.Date=2025-01-01T00:00:00Z"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders the build info on a single line.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
