package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/brewboot/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/brewboot/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/brewboot/internal/version.Date={{.Date}}
)

// Fields returns the build information for structured logging
func Fields() map[string]interface{} {
	return map[string]interface{}{
		"version": Version,
		"commit":  Commit,
		"date":    Date,
	}
}
