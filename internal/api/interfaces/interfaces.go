package interfaces

import (
	"context"

	"bitbucket.org/malama/ride-booking/internal/account"
	"bitbucket.org/malama/ride-booking/internal/auth"
	"bitbucket.org/malama/ride-booking/internal/booking"
	"bitbucket.org/malama/ride-booking/internal/payment"
	"bitbucket.org/malama/ride-booking/internal/places"
	"bitbucket.org/malama/ride-booking/internal/rides"
	"github.com/rs/zerolog"
)

type OTPService interface {
	RequestOTP(ctx context.Context, countryCode string, number string, logger *zerolog.Logger) (*auth.Challenge, error)
	Verify(contact string, entry *auth.Entry, logger *zerolog.Logger) (*auth.Verification, error)
}

type PlaceFinder interface {
	Search(ctx context.Context, query string, logger *zerolog.Logger) []places.Suggestion
	Resolve(ctx context.Context, placeID string, logger *zerolog.Logger) *booking.Coordinate
	ReverseGeocode(ctx context.Context, coordinate booking.Coordinate, logger *zerolog.Logger) string
}

type PaymentGateways interface {
	Gateway(method payment.Method) (payment.Gateway, error)
}

type RideHistory interface {
	History(status rides.Status) ([]rides.Ride, error)
}

type AccountStore interface {
	Current() account.Account
}
