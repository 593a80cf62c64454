package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
)

func TestSeedConfigEnabled(t *testing.T) {
	require.False(t, SeedConfig{}.Enabled())
	require.False(t, SeedConfig{Email: "seed@x.com"}.Enabled())
	require.False(t, SeedConfig{Password: "pw"}.Enabled())
	require.True(t, SeedConfig{Email: "seed@x.com", Password: "pw"}.Enabled())
}

// TestNewConfigFromSettingsDefaults covers the fallbacks applied when the
// settings file leaves the optional keys empty.
func TestNewConfigFromSettingsDefaults(t *testing.T) {
	cfg := NewConfigFromSettings()
	require.Equal(t, "uploads", cfg.UploadDir)
	require.Equal(t, 30*time.Second, cfg.Seed.WatchdogInterval)
	require.Equal(t, model.RoleMaster, cfg.Seed.Role)
}
