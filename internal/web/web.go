package web

import (
	"net/http"
	"os"
	"time"

	"bitbucket.org/malama/ride-booking/internal/api"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRouter(log *zerolog.Logger, services api.Services) *gin.Engine {
	var (
		startTime      = time.Now()
		openApiContent = readOpenapi()
	)

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(OpenapiValidator(openApiContent))

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		if len(openApiContent) == 0 {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		c.Data(http.StatusOK, "application/json", openApiContent)
	})

	pprof.Register(router)

	api.RegisterRoutes(router, services)

	return router
}
