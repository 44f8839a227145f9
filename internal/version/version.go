package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/endlessm/xdg-user-dirs/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/endlessm/xdg-user-dirs/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/endlessm/xdg-user-dirs/internal/version.Date={{.Date}}
)
