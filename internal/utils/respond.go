package utils

import (
	"errors"

	"github.com/classtrack-dev/classtrack/internal/apperrors"
	"github.com/classtrack-dev/classtrack/internal/logger"
	"github.com/gin-gonic/gin"
)

// RespondError is the single translator from business failures to HTTP
// responses. Anything that is not an *apperrors.Error is logged and hidden
// behind a generic 500.
func RespondError(ctx *gin.Context, err error) {
	var appErr *apperrors.Error

	if !errors.As(err, &appErr) {
		logger.Log.Error("unexpected error", "path", ctx.FullPath(), "method", ctx.Request.Method, "error", err)
		appErr = apperrors.Internal("An unexpected error occurred.")
	}

	ctx.JSON(appErr.Status(), gin.H{
		"success": false,
		"message": appErr.Message,
	})
}
