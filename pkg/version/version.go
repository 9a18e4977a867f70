// Package version exposes the build version string.
package version

// version is overridden at build time via
// -ldflags "-X github.com/ErikTaylerd/soletear-calculator/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker.
var version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
