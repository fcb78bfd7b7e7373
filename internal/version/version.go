package version

// Set at build time with -ldflags "-X ...version.Version=... -X ...version.Commit=...".
var (
	Version = "dev"
	Commit  = "none"
)
