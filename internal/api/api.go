package api

import (
	"time"

	"bitbucket.org/malama/ride-booking/internal/api/interfaces"
	"bitbucket.org/malama/ride-booking/internal/api/middleware"
	"bitbucket.org/malama/ride-booking/internal/booking"
	"bitbucket.org/malama/ride-booking/internal/schema"
	"github.com/gin-gonic/gin"
)

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

type Services struct {
	Schedule booking.Schedule
	Auth     interfaces.OTPService
	Places   interfaces.PlaceFinder
	Payments interfaces.PaymentGateways
	Rides    interfaces.RideHistory
	Accounts interfaces.AccountStore
}

func RegisterRoutes(router *gin.Engine, services Services) {
	authGroup := router.Group("/auth")
	authGroup.GET("/countries", middleware.TapLogger("countries"), listCountries)
	authGroup.POST("/otp",
		middleware.TapLogger("otp"),
		middleware.PrepareParams(schema.OTPRequestParams{}),
		requestOTP(services.Auth),
	)
	authGroup.POST("/otp/verify",
		middleware.TapLogger("otp-verify"),
		middleware.PrepareParams(schema.OTPVerifyParams{}),
		verifyOTP(services.Auth),
	)

	bookingGroup := router.Group("/booking", middleware.PrepareFlow)
	bookingGroup.GET("/trip",
		middleware.TapLogger("trip"),
		showTrip(services),
	)
	bookingGroup.POST("/trip",
		middleware.TapLogger("trip"),
		middleware.PrepareParams(schema.TripEditParams{}),
		editTrip(services),
	)
	bookingGroup.POST("/contact",
		middleware.TapLogger("contact"),
		middleware.PrepareParams(schema.ContactParams{}),
		saveContact,
	)
	bookingGroup.GET("/fares",
		middleware.TapLogger("fares"),
		listFares,
	)
	bookingGroup.POST("/confirm",
		middleware.TapLogger("confirm"),
		middleware.PrepareParams(schema.ConfirmParams{}),
		confirmBooking(services),
	)

	placesGroup := router.Group("/places")
	placesGroup.GET("/search",
		middleware.TapLogger("places-search"),
		middleware.PrepareParams(schema.PlaceSearchParams{}),
		searchPlaces(services.Places),
	)
	placesGroup.GET("/details/:placeId",
		middleware.TapLogger("places-details"),
		placeDetails(services.Places),
	)
	placesGroup.GET("/reverse",
		middleware.TapLogger("places-reverse"),
		middleware.PrepareParams(schema.ReverseGeocodeParams{}),
		reverseGeocode(services.Places),
	)

	router.GET("/rides",
		middleware.TapLogger("rides"),
		middleware.PrepareParams(schema.RidesParams{}),
		listRides(services.Rides),
	)
	router.GET("/profile",
		middleware.TapLogger("profile"),
		showProfile(services.Accounts),
	)
}
