package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvardinformatics/module-query/pkg/api/constants"
)

func TestFromEnvironmentDefaults(t *testing.T) {
	for _, name := range []string{constants.HostEnv, constants.DatabaseEnv, constants.UserEnv, constants.PasswordEnv} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	cfg := FromEnvironment()
	assert.Equal(t, constants.DefaultHost, cfg.Host)
	assert.Equal(t, constants.DefaultDatabase, cfg.Database)
	assert.Equal(t, constants.DefaultUser, cfg.User)
	assert.Empty(t, cfg.Password)
}

func TestFromEnvironmentOverrides(t *testing.T) {
	t.Setenv(constants.HostEnv, "db.example.org")
	t.Setenv(constants.PasswordEnv, "secret")

	cfg := FromEnvironment()
	assert.Equal(t, "db.example.org", cfg.Host)
	assert.Equal(t, "secret", cfg.Password)
}

func TestLoadEnvironmentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "module-query.env")
	contents := `# database coordinates
MODULE_QUERY_HOST=db
MODULE_QUERY_PASSWD=filesecret
UNRELATED=ignored
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	cfg := FromEnvironment()
	require.NoError(t, LoadEnvironmentFile(cfg, path))
	assert.Equal(t, "db", cfg.Host)
	assert.Equal(t, "filesecret", cfg.Password)
	assert.Equal(t, constants.DefaultDatabase, cfg.Database)
}

func TestLoadEnvironmentFileMissing(t *testing.T) {
	cfg := FromEnvironment()
	assert.Error(t, LoadEnvironmentFile(cfg, filepath.Join(t.TempDir(), "no-such-file")))
}

func TestDefaultFlavors(t *testing.T) {
	t.Setenv(constants.FlavorsEnv, "")
	os.Unsetenv(constants.FlavorsEnv)
	assert.Equal(t, constants.DefaultFlavors, DefaultFlavors())

	t.Setenv(constants.FlavorsEnv, "HeLmod CentOS 7,Java")
	assert.Equal(t, "HeLmod CentOS 7,Java", DefaultFlavors())
}
