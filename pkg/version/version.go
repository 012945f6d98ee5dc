package version

// version is set at build time with
// -ldflags "-X gamecore/pkg/version.version=<version>"
var version = "dev"

// Get returns the build version.
func Get() string {
	return version
}
