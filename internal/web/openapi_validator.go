package web

import (
	"context"
	"net/http"
	"os"

	"bitbucket.org/malama/ride-booking/internal/tools/responding"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
)

func loadOpenapiRouter(content []byte) (routers.Router, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(content)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}

	return gorillamux.NewRouter(doc)
}

// OpenapiValidator rejects requests that do not match the documented
// operation. Undocumented routes pass through untouched, as does everything
// when no document is available.
func OpenapiValidator(content []byte) gin.HandlerFunc {
	router, err := loadOpenapiRouter(content)

	return func(c *gin.Context) {
		if err != nil || router == nil {
			return
		}

		route, pathParams, findErr := router.FindRoute(c.Request)
		if findErr != nil {
			return
		}

		validationErr := openapi3filter.ValidateRequest(c.Request.Context(), &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				MultiError:         false,
			},
		})
		if validationErr != nil {
			responding.HandleError(c, http.StatusBadRequest, "Request does not match the api definition", validationErr)
		}
	}
}

func readOpenapi() []byte {
	openApiLocation := os.Getenv("OPENAPI_LOCATION")
	if openApiLocation == "" {
		openApiLocation = "./api/openapi.json"
	}

	openApiContent, _ := os.ReadFile(openApiLocation)

	return openApiContent
}
