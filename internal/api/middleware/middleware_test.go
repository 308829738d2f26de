package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitbucket.org/malama/ride-booking/internal/api/middleware"
	"bitbucket.org/malama/ride-booking/internal/booking"
	"bitbucket.org/malama/ride-booking/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newRouter(log *zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("logger", log)
	})

	return router
}

func TestPrepareParams(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	router := newRouter(&log)
	router.POST("/auth/otp/verify", middleware.PrepareParams(schema.OTPVerifyParams{}), func(c *gin.Context) {
		params := c.MustGet(middleware.ParamsKey).(*schema.OTPVerifyParams)
		c.String(http.StatusOK, params.Contact+"/"+params.Code)
	})
	router.GET("/places/search", middleware.PrepareParams(schema.PlaceSearchParams{}), func(c *gin.Context) {
		params := c.MustGet(middleware.ParamsKey).(*schema.PlaceSearchParams)
		c.String(http.StatusOK, params.Query)
	})

	tests := []struct {
		name         string
		method       string
		url          string
		body         string
		expectedCode int
		expectedBody string
	}{
		{"json body", http.MethodPost, "/auth/otp/verify", `{"contact":"+91 9876543210","code":"1234"}`, http.StatusOK, "+91 9876543210/1234"},
		{"missing required", http.MethodPost, "/auth/otp/verify", `{"code":"1234"}`, http.StatusBadRequest, ""},
		{"broken json", http.MethodPost, "/auth/otp/verify", `{"contact":`, http.StatusBadRequest, ""},
		{"query", http.MethodGet, "/places/search?query=Indiranagar", "", http.StatusOK, "Indiranagar"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(test.method, test.url, strings.NewReader(test.body))
			if test.body != "" {
				request.Header.Set("Content-Type", "application/json")
			}

			router.ServeHTTP(recorder, request)

			assert.Equal(t, test.expectedCode, recorder.Code)
			if test.expectedBody != "" {
				assert.Equal(t, test.expectedBody, recorder.Body.String())
			}
		})
	}

	t.Run("should refuse pointers", func(t *testing.T) {
		assert.Panics(t, func() {
			middleware.PrepareParams(&schema.OTPVerifyParams{})
		})
	})
}

func TestPrepareFlow(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	router := newRouter(&log)
	router.GET("/booking/fares", middleware.PrepareFlow, func(c *gin.Context) {
		flow := c.MustGet(middleware.FlowKey).(booking.Flow)
		c.String(http.StatusOK, string(flow.Trip.ServiceType)+"/"+flow.Contact.Name)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/booking/fares?serviceType=pickup&name=Asha", nil))

	assert.Equal(t, "pickup/Asha", recorder.Body.String())
}

func TestTapLogger(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	router := newRouter(&log)
	router.GET("/rides", middleware.TapLogger("rides"), func(c *gin.Context) {
		logger := c.MustGet("logger").(*zerolog.Logger)
		logger.Info().Msg("listed")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rides", nil))

	assert.Contains(t, out.String(), `"step":"rides"`)
	assert.Contains(t, out.String(), `"operationId":"`)
}
