package cmd

import (
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
)

// configGetter retrieves raw configuration values by dotted key path.
type configGetter func(key string) any

// validateStartupConfig validates startup configuration from the shared config source.
// It returns an error when any configured value is malformed or violates constraints.
func validateStartupConfig() error {
	return validateStartupConfigWithGetter(func(key string) any {
		return gconfig.S.Get(key)
	})
}

// validateStartupConfigWithGetter validates startup configuration via a key-value getter.
// It accepts a value getter and returns nil when all configured values are valid.
func validateStartupConfigWithGetter(get configGetter) error {
	if get == nil {
		return errors.New("config getter is nil")
	}

	validationErrs := make([]string, 0)

	validateDBConfig(get, &validationErrs)
	validateSecretConfig(get, &validationErrs)
	validateSeedConfig(get, &validationErrs)

	if len(validationErrs) == 0 {
		return nil
	}

	return errors.Errorf("invalid configuration:\n - %s", strings.Join(validationErrs, "\n - "))
}

// validateDBConfig validates the mongodb connection settings.
// It accepts a getter and an error collector pointer and appends validation errors.
func validateDBConfig(get configGetter, errs *[]string) {
	validateRequiredString(get, "settings.db.blog.addr", errs)
	validateRequiredString(get, "settings.db.blog.db", errs)
}

// validateSecretConfig validates the token signing secret.
// It accepts a getter and an error collector pointer and appends validation errors.
func validateSecretConfig(get configGetter, errs *[]string) {
	validateRequiredString(get, "settings.secret", errs)
}

// validateSeedConfig validates the seeded admin settings. Email and password
// are optional as a pair; a lone half is a misconfiguration.
func validateSeedConfig(get configGetter, errs *[]string) {
	email := stringValue(get("settings.seed.email"))
	password := stringValue(get("settings.seed.password"))
	if (email == "") != (password == "") {
		*errs = append(*errs,
			"settings.seed.email and settings.seed.password must be set together")
	}

	validateOptionalDuration(get, "settings.seed.watchdog_interval", errs)
}

// validateRequiredString appends an error unless key holds a non-empty string.
func validateRequiredString(get configGetter, key string, errs *[]string) {
	if stringValue(get(key)) == "" {
		*errs = append(*errs, key+" must be a non-empty string")
	}
}

// validateOptionalDuration appends an error when key is set but does not
// parse as a positive duration.
func validateOptionalDuration(get configGetter, key string, errs *[]string) {
	raw := get(key)
	if raw == nil {
		return
	}

	s := stringValue(raw)
	if s == "" {
		return
	}

	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		*errs = append(*errs, key+" must be a positive duration like `30s`")
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
