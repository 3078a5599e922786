package constants

import "time"

// Environment variables consumed by the query tools.
const (
	// HostEnv names the database host.
	HostEnv = "MODULE_QUERY_HOST"

	// DatabaseEnv names the applications database.
	DatabaseEnv = "MODULE_QUERY_DB"

	// UserEnv names the database user.
	UserEnv = "MODULE_QUERY_USER"

	// PasswordEnv holds the database password. It has no default.
	PasswordEnv = "MODULE_QUERY_PASSWD"

	// DebugEnv turns on debug output when set to a non-empty value.
	DebugEnv = "MODULE_QUERY_DEBUG"

	// FlavorsEnv overrides the default build flavor list.
	FlavorsEnv = "FASRCSW_FLAVORS"
)

// Default database coordinates.
const (
	DefaultHost     = "rcdb-internal"
	DefaultDatabase = "p3"
	DefaultUser     = "modulequery"
)

// DefaultFlavors is the build stack list searched when FASRCSW_FLAVORS is
// not set and no --flavors flag is given.
const DefaultFlavors = "HeLmod CentOS 7,Easy Build,Singularity 3,Bioconda,Anaconda,x86_64 binary,Java"

// Database connection retry policy.
const (
	// MaxConnectionAttempts is how many times a connection is tried
	// before giving up.
	MaxConnectionAttempts = 3

	// ConnectionWait is the pause between connection attempts.
	ConnectionWait = 2 * time.Second
)
