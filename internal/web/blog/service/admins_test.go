package service

import (
	"context"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
)

func TestIsSeedEmail(t *testing.T) {
	s := &Blog{cfg: Config{Seed: SeedConfig{Email: "Seed@Example.com"}}}

	require.True(t, s.isSeedEmail("seed@example.com"))
	require.True(t, s.isSeedEmail("SEED@EXAMPLE.COM"))
	require.False(t, s.isSeedEmail("editor@example.com"))
	require.False(t, s.isSeedEmail(""))
}

// TestIsSeedEmailUnconfigured ensures no email is treated as seeded when the
// seed account is not configured, even an empty one.
func TestIsSeedEmailUnconfigured(t *testing.T) {
	s := &Blog{cfg: Config{}}

	require.False(t, s.isSeedEmail("seed@example.com"))
	require.False(t, s.isSeedEmail(""))
}

func TestCheckSetupToken(t *testing.T) {
	s := &Blog{cfg: Config{SetupToken: "sekrit"}}

	require.NoError(t, s.CheckSetupToken("sekrit"))

	err := s.CheckSetupToken("wrong")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrNotAllowed))

	err = s.CheckSetupToken("")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrNotAllowed))
}

// TestCheckSetupTokenUnsetSecret ensures an unset server secret disables the
// gated endpoints entirely, a matching empty token does not pass.
func TestCheckSetupTokenUnsetSecret(t *testing.T) {
	s := &Blog{cfg: Config{}}

	err := s.CheckSetupToken("")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrNotAllowed))
}

// TestRegisterSeedEmailRefused ensures the public bootstrap endpoint can
// never claim the seeded identity, regardless of email casing.
func TestRegisterSeedEmailRefused(t *testing.T) {
	s := &Blog{cfg: Config{
		SetupToken: "sekrit",
		Seed:       SeedConfig{Email: "seed@example.com", Password: "pw"},
	}}

	_, err := s.Register(context.Background(), "SEED@example.com", "pw", "sekrit")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrSeededAdminRegister))
}

// TestRegisterEmptyCredentials ensures blank credentials are refused before
// any account is touched.
func TestRegisterEmptyCredentials(t *testing.T) {
	s := &Blog{cfg: Config{SetupToken: "sekrit"}}

	_, err := s.Register(context.Background(), "  ", "pw", "sekrit")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrEmailPasswordRequired))

	_, err = s.Register(context.Background(), "a@b.com", "   ", "sekrit")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrEmailPasswordRequired))
}

// TestRegisterBadSetupToken ensures the token gate runs before everything
// else, even the seeded-identity check.
func TestRegisterBadSetupToken(t *testing.T) {
	s := &Blog{cfg: Config{
		SetupToken: "sekrit",
		Seed:       SeedConfig{Email: "seed@example.com", Password: "pw"},
	}}

	_, err := s.Register(context.Background(), "seed@example.com", "pw", "wrong")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrNotAllowed))
}
