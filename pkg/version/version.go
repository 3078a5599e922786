package version

import "fmt"

var (
	// version is the semantic version, set at build time with -ldflags.
	version = "v1.0.0"

	// commitFromGit is the git commit the binaries were built from, set
	// at build time with -ldflags.
	commitFromGit string
)

// Get returns the version string reported by the version subcommands.
func Get() string {
	if len(commitFromGit) > 0 {
		return fmt.Sprintf("%s (%s)", version, commitFromGit)
	}
	return version
}
