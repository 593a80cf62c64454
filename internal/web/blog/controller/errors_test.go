package controller

import (
	"net/http"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
)

// TestMaskLoginErrorInvalidCredentials ensures invalid credentials are preserved as a safe error message.
func TestMaskLoginErrorInvalidCredentials(t *testing.T) {
	err := maskLoginError(model.ErrInvalidCredentials)
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrInvalidCredentials))
	require.Equal(t, model.ErrInvalidCredentials.Error(), err.Error())
}

// TestMaskLoginErrorInternal ensures internal errors are masked from the client.
func TestMaskLoginErrorInternal(t *testing.T) {
	err := maskLoginError(errors.New("db down"))
	require.Error(t, err)
	require.False(t, errors.Is(err, model.ErrInvalidCredentials))
	require.Equal(t, loginFailedMessage, err.Error())
}

// TestMaskLoginErrorNil ensures nil errors remain nil.
func TestMaskLoginErrorNil(t *testing.T) {
	require.NoError(t, maskLoginError(nil))
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{model.ErrInvalidCredentials, http.StatusUnauthorized},
		{model.ErrNotFound, http.StatusNotFound},
		{model.ErrNotAllowed, http.StatusForbidden},
		{model.ErrForbidden, http.StatusForbidden},
		{model.ErrSeededAdminDelete, http.StatusForbidden},
		{model.ErrSeededAdminRegister, http.StatusForbidden},
		{model.ErrSeededAdminCreate, http.StatusForbidden},
		{model.ErrEmailTaken, http.StatusBadRequest},
		{model.ErrSlugTaken, http.StatusBadRequest},
		{model.ErrEmailPasswordRequired, http.StatusBadRequest},
		{model.ErrTitleRequired, http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		require.Equal(t, tc.status, statusOf(errors.WithStack(tc.err)),
			"error %v", tc.err)
	}
}

// TestStatusOfWrapped ensures wrapping never changes the mapped status.
func TestStatusOfWrapped(t *testing.T) {
	err := errors.Wrap(model.ErrNotFound, "load article")
	require.Equal(t, http.StatusNotFound, statusOf(err))
}
