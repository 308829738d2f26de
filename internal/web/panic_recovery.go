package web

import (
	"net/http"

	"bitbucket.org/malama/ride-booking/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func PanicRecovery(c *gin.Context) {
	gin.CustomRecoveryWithWriter(&recoveryWriter{
		logger: c.MustGet("logger").(*zerolog.Logger),
	}, func(c *gin.Context, err any) {
		message, ok := err.(string)
		if !ok {
			message = "Unknown error, panic recovered"
		}
		responding.HandleError(c, http.StatusInternalServerError, message, nil)
	})(c)
}

type recoveryWriter struct {
	logger *zerolog.Logger
}

func (r *recoveryWriter) Write(p []byte) (n int, err error) {
	r.
		logger.
		Error().
		Str("label", "panic").
		Msg(string(p))

	return len(p), nil
}
