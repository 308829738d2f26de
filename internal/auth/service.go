package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// there is no delivery, every challenge accepts the same code
	acceptedCode   = "1234"
	ResendCooldown = 30 * time.Second
	NextScreen     = "home"
)

const (
	MessageIncompleteOTP = "Please enter the complete OTP"
	MessageInvalidOTP    = "Invalid OTP. Please try again."
	MessageResend        = "Please wait before requesting a new OTP"
)

var (
	ErrorEmptyContact   = errors.New("contact is empty")
	ErrorUnknownCountry = errors.New("unknown country code")
	ErrorResendCooldown = errors.New("otp was requested too recently")
	ErrorIncompleteOTP  = errors.New("otp is incomplete")
	ErrorInvalidOTP     = errors.New("otp is invalid")
)

type Challenge struct {
	Contact     string
	ResendAfter time.Duration
}

type Verification struct {
	Contact string
	Next    string
}

type Service struct {
	redis *redis.Client
}

func NewService(redisClient *redis.Client) *Service {
	return &Service{
		redis: redisClient,
	}
}

func cooldownKey(contact string) string {
	return "otp:cooldown:" + contact
}

// Contact joins the dialing code and the phone number or email the rider typed.
func Contact(country Country, number string) string {
	return country.Code + " " + strings.TrimSpace(number)
}

// RequestOTP starts a challenge for the contact. Repeated requests inside the
// cooldown are refused.
func (s *Service) RequestOTP(ctx context.Context, countryCode string, number string, logger *zerolog.Logger) (*Challenge, error) {
	if strings.TrimSpace(number) == "" {
		return nil, ErrorEmptyContact
	}

	country, ok := FindCountry(countryCode)
	if !ok {
		return nil, ErrorUnknownCountry
	}

	contact := Contact(country, number)

	acquired, err := s.redis.SetNX(ctx, cooldownKey(contact), "", ResendCooldown).Result()
	if err != nil {
		// cooldown only throttles, the challenge still goes out
		logger.Warn().Err(err).Msg("Unable to store otp cooldown")
	} else if !acquired {
		return nil, ErrorResendCooldown
	}

	logger.Info().Str("contact", contact).Msg("OTP requested")

	return &Challenge{
		Contact:     contact,
		ResendAfter: ResendCooldown,
	}, nil
}

// Verify checks the entered code. A wrong code resets every field of the entry,
// an incomplete one keeps them.
func (s *Service) Verify(contact string, entry *Entry, logger *zerolog.Logger) (*Verification, error) {
	code := entry.Code()

	if len(code) < CodeLength {
		return nil, ErrorIncompleteOTP
	}

	if code != acceptedCode {
		entry.Reset()
		logger.Info().Str("contact", contact).Msg("OTP rejected")
		return nil, ErrorInvalidOTP
	}

	return &Verification{
		Contact: contact,
		Next:    NextScreen,
	}, nil
}

// Message is the inline text shown for a failed request or verification.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrorIncompleteOTP):
		return MessageIncompleteOTP
	case errors.Is(err, ErrorInvalidOTP):
		return MessageInvalidOTP
	case errors.Is(err, ErrorResendCooldown):
		return MessageResend
	case errors.Is(err, ErrorEmptyContact):
		return "Please enter your mobile number or email"
	case errors.Is(err, ErrorUnknownCountry):
		return "Please choose a country code"
	default:
		return ""
	}
}
