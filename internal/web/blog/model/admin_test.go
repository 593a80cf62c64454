package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAdminRole(t *testing.T) {
	require.Equal(t, RoleMaster, ParseAdminRole("master"))
	require.Equal(t, RoleEditor, ParseAdminRole("editor"))
	require.Equal(t, RoleEditor, ParseAdminRole(""))
	require.Equal(t, RoleEditor, ParseAdminRole("MASTER"))
	require.Equal(t, RoleEditor, ParseAdminRole("superuser"))
}

func TestNewAdminDefaults(t *testing.T) {
	a := NewAdmin()
	require.False(t, a.ID.IsZero())
	require.Equal(t, RoleEditor, a.Role)
	require.False(t, a.IsSeeded)
	require.False(t, a.IsMaster())
	require.False(t, a.CreatedAt.IsZero())
}
