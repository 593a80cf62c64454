package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
	"github.com/inkwell-blog/inkwell/library/log"
)

const loginFailedMessage = "login failed"

// maskLoginError returns a sanitized login error for client responses.
// It accepts the raw error from the login flow and returns a safe error message.
func maskLoginError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, model.ErrInvalidCredentials) {
		return errors.WithStack(model.ErrInvalidCredentials)
	}

	return errors.WithStack(errors.New(loginFailedMessage))
}

// statusOf maps domain errors onto HTTP statuses. Unknown errors become 500.
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrNotAllowed),
		errors.Is(err, model.ErrForbidden),
		errors.Is(err, model.ErrSeededAdminDelete),
		errors.Is(err, model.ErrSeededAdminRegister),
		errors.Is(err, model.ErrSeededAdminCreate):
		return http.StatusForbidden
	case errors.Is(err, model.ErrEmailTaken),
		errors.Is(err, model.ErrSlugTaken),
		errors.Is(err, model.ErrEmailPasswordRequired),
		errors.Is(err, model.ErrTitleRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortErr write the error body and stop the handler chain. Internal
// errors are logged with their stack but never leaked to the client.
func abortErr(ctx *gin.Context, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Logger.Error("request failed",
			zap.String("path", ctx.Request.URL.Path), zap.Error(err))
		msg = "internal error"
	}

	ctx.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// abortBadRequest reject malformed input with its parse error.
func abortBadRequest(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
