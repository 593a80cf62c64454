package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func getterFor(values map[string]any) configGetter {
	return func(key string) any {
		return values[key]
	}
}

func validBaseConfig() map[string]any {
	return map[string]any{
		"settings.db.blog.addr": "localhost:27017",
		"settings.db.blog.db":   "blog",
		"settings.secret":       "token-signing-secret",
	}
}

func TestValidateStartupConfigValid(t *testing.T) {
	require.NoError(t, validateStartupConfigWithGetter(getterFor(validBaseConfig())))
}

func TestValidateStartupConfigNilGetter(t *testing.T) {
	require.Error(t, validateStartupConfigWithGetter(nil))
}

func TestValidateStartupConfigMissingDB(t *testing.T) {
	values := validBaseConfig()
	delete(values, "settings.db.blog.addr")

	err := validateStartupConfigWithGetter(getterFor(values))
	require.Error(t, err)
	require.Contains(t, err.Error(), "settings.db.blog.addr")
}

func TestValidateStartupConfigMissingSecret(t *testing.T) {
	values := validBaseConfig()
	values["settings.secret"] = "   "

	err := validateStartupConfigWithGetter(getterFor(values))
	require.Error(t, err)
	require.Contains(t, err.Error(), "settings.secret")
}

func TestValidateStartupConfigHalfSeedPair(t *testing.T) {
	values := validBaseConfig()
	values["settings.seed.email"] = "seed@example.com"

	err := validateStartupConfigWithGetter(getterFor(values))
	require.Error(t, err)
	require.Contains(t, err.Error(), "settings.seed.email")
}

func TestValidateStartupConfigSeedPair(t *testing.T) {
	values := validBaseConfig()
	values["settings.seed.email"] = "seed@example.com"
	values["settings.seed.password"] = "pw"
	values["settings.seed.watchdog_interval"] = "30s"

	require.NoError(t, validateStartupConfigWithGetter(getterFor(values)))
}

func TestValidateStartupConfigBadWatchdogInterval(t *testing.T) {
	values := validBaseConfig()
	values["settings.seed.email"] = "seed@example.com"
	values["settings.seed.password"] = "pw"
	values["settings.seed.watchdog_interval"] = "-5s"

	err := validateStartupConfigWithGetter(getterFor(values))
	require.Error(t, err)
	require.Contains(t, err.Error(), "watchdog_interval")
}
