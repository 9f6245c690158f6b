package version

// Version contains the application version information.
// Release builds set it via ldflags:
// go build -ldflags "-X git.home.luguber.info/inful/vendordocs/internal/version.Version=v1.0.0".
var Version = "dev"

// Build metadata, also injected via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	return Version + " (commit " + GitCommit + ", built " + BuildTime + ")"
}
