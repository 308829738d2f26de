package responding

import (
	"net/http"

	"bitbucket.org/malama/ride-booking/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func requestLogger(c *gin.Context) *zerolog.Logger {
	if value, ok := c.Get("logger"); ok {
		if logger, ok := value.(*zerolog.Logger); ok {
			return logger
		}
	}

	logger := zerolog.Nop()
	return &logger
}

// HandleError logs the failure and aborts the request with a JSON error body.
func HandleError(c *gin.Context, code int, message string, err error) {
	logger := requestLogger(c)

	event := logger.Warn()
	if code >= http.StatusInternalServerError {
		event = logger.Error()
	}

	event.
		Err(err).
		Int("code", code).
		Msg(message)

	c.AbortWithStatusJSON(code, schema.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// HandleFieldErrors aborts with inline validation messages for the screen inputs.
func HandleFieldErrors(c *gin.Context, message string, errors schema.FieldErrors) {
	requestLogger(c).Info().
		Int("code", http.StatusUnprocessableEntity).
		Int("fieldErrors", len(errors)).
		Msg(message)

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, schema.ErrorResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Errors:  &errors,
	})
}
