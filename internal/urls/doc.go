// Package urls holds the documentation links printed by vpilot, so they can
// be updated in one place.
//
// Usage:
//
//	import "github.com/muurk/vpilot/internal/urls"
//
//	fmt.Printf("See %s\n", urls.Troubleshooting)
package urls
