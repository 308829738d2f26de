package middleware

import (
	"bitbucket.org/malama/ride-booking/internal/booking"
	"github.com/gin-gonic/gin"
)

const (
	FlowKey string = "flow"
)

// PrepareFlow decodes the booking carried in the query string.
func PrepareFlow(ctx *gin.Context) {
	ctx.Set(FlowKey, booking.Decode(ctx.Request.URL.Query()))
}
