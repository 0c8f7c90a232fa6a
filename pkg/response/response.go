// Package response implements the JSON response contract of the API:
// every response is either the requested payload or an {"error": string}
// body with a matching HTTP status.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/revolutionrp/community/pkg/logger"
)

// JSON sends a payload with the given status.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message sends a 200 response with a {"message": ...} body.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// BadRequest sends a 400 error for missing input or violated invariants.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// Unauthorized sends a 401 error for missing, malformed or expired tokens.
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// Forbidden sends a 403 error for a valid token with insufficient role or scope.
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": msg})
}

// NotFound sends a 404 error for unknown resource ids or unmatched routes.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// InternalError sends a 500 error. The cause is logged but never leaked to
// the client outside debug mode.
func InternalError(c *gin.Context, err error) {
	logger.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("internal error")

	msg := "Internal server error"
	if gin.Mode() == gin.DebugMode && err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
