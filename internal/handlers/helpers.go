package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "tally/internal/errors"
	"tally/internal/logger"
)

// respondWithError writes a consistent JSON error response.
//
// PartialFailures report which steps committed and which failed, so the
// caller can tell "nothing happened, fix input" apart from "something
// happened, data may be inconsistent, verify manually". AppErrors use the
// error's status code, code, and message. Anything else is logged and
// returned as a generic internal error.
func respondWithError(c *gin.Context, err error) {
	var partial *apperrors.PartialFailure
	if errors.As(err, &partial) {
		logger.Get().Errorw("partial failure",
			"op", partial.Op,
			"completed", partial.Completed,
			"failed", partial.Failed,
			"error", partial.Err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":            "PARTIAL_FAILURE",
				"message":         "The operation partially completed and the data may be inconsistent",
				"op":              partial.Op,
				"completed_steps": partial.Completed,
				"failed_step":     partial.Failed,
			},
		})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// pathID returns the :id path parameter, rejecting empty values.
func pathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if id == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseFlexibleTime accepts RFC3339 timestamps or bare dates.
func parseFlexibleTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be RFC3339 or YYYY-MM-DD")
	}
	return t, nil
}
