package util

import "regexp"

// matches the user:password@ prefix of a MySQL DSN
var dsnCredentialsRegexp = regexp.MustCompile(`^([^:@/]+):([^@]*)@`)

// RedactDSNPassword replaces the password portion of a MySQL DSN so the DSN
// can be logged without leaking credentials.
func RedactDSNPassword(dsn string) string {
	return dsnCredentialsRegexp.ReplaceAllString(dsn, "$1:xxxxx@")
}
