// util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondWithMappedError picks the status code from the error chain.
func RespondWithMappedError(c *gin.Context, err error) {
	var validationErr *echo_errors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.Is(err, echo_errors.ErrInvalidCredentials),
		errors.Is(err, echo_errors.ErrInvalidVerificationCode),
		errors.Is(err, echo_errors.ErrInvalidFormData),
		errors.Is(err, echo_errors.ErrInvalidUserData),
		errors.Is(err, echo_errors.ErrInvalidGroupData),
		errors.Is(err, echo_errors.ErrInvalidRoleData):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, echo_errors.ErrUnauthenticated), errors.Is(err, echo_errors.ErrSessionNotFound):
		RespondWithError(c, http.StatusUnauthorized, "Unauthenticated", err)
	case errors.Is(err, echo_errors.ErrForbidden):
		RespondWithError(c, http.StatusForbidden, "Forbidden", err)
	case errors.Is(err, echo_errors.ErrUserNotFound),
		errors.Is(err, echo_errors.ErrGroupNotFound),
		errors.Is(err, echo_errors.ErrRoleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, echo_errors.ErrUserConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, echo_errors.ErrDatabaseOperation), errors.Is(err, echo_errors.ErrInternalServer):
		RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	default:
		RespondWithError(c, http.StatusInternalServerError, "Unknown error", err)
	}
}

func GetUserIDFromContext(c *gin.Context) (string, error) {
	userID := c.GetString("userID")
	if userID == "" {
		return "", echo_errors.ErrUnauthenticated
	}
	return userID, nil
}
