package middleware

import (
	"net/http"
	"reflect"

	"bitbucket.org/malama/ride-booking/internal/tools/responding"
	"github.com/gin-gonic/gin"
)

const (
	ParamsKey string = "params"
)

// PrepareParams binds the request body, or the query of a GET request, into a
// new value of val's type and stores the pointer under ParamsKey.
func PrepareParams(val any) gin.HandlerFunc {
	value := reflect.ValueOf(val)
	if value.Kind() == reflect.Ptr {
		panic(`Bind struct can not be a pointer.`)
	}

	typ := value.Type()

	return func(ctx *gin.Context) {
		params := reflect.New(typ).Interface()

		err := ctx.ShouldBind(params)
		if err != nil {
			responding.HandleError(ctx, http.StatusBadRequest, "Failed to bind request params", err)
			return
		}

		ctx.Set(ParamsKey, params)
	}
}
