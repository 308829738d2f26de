package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TapLogger(step string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := c.MustGet("logger").(*zerolog.Logger)

		requestLogger := logger.
			With().
			Str("step", step).
			Str("operationId", uuid.New().String()).
			Logger()

		c.Set("logger", &requestLogger)
	}
}
