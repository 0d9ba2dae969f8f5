package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/mihaiBront/venvup/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/mihaiBront/venvup/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/mihaiBront/venvup/internal/version.Date={{.Date}}
)
