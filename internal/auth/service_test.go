package auth_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"bitbucket.org/malama/ride-booking/internal/auth"
	"github.com/go-redis/redismock/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRequestOTP(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should build the contact and lock the resend", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := auth.NewService(redisClient)

		redisMock.ExpectSetNX("otp:cooldown:+91 9876543210", "", auth.ResendCooldown).SetVal(true)

		challenge, err := service.RequestOTP(context.Background(), "+91", " 9876543210 ", &log)

		assert.Nil(t, err)
		assert.Equal(t, &auth.Challenge{Contact: "+91 9876543210", ResendAfter: auth.ResendCooldown}, challenge)
		assert.Nil(t, redisMock.ExpectationsWereMet())
	})

	t.Run("should default to india", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := auth.NewService(redisClient)

		redisMock.ExpectSetNX("otp:cooldown:+91 rider@example.com", "", auth.ResendCooldown).SetVal(true)

		challenge, err := service.RequestOTP(context.Background(), "", "rider@example.com", &log)

		assert.Nil(t, err)
		assert.Equal(t, "+91 rider@example.com", challenge.Contact)
	})

	t.Run("should refuse inside the cooldown", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := auth.NewService(redisClient)

		redisMock.ExpectSetNX("otp:cooldown:+44 7700900123", "", auth.ResendCooldown).SetVal(false)

		_, err := service.RequestOTP(context.Background(), "+44", "7700900123", &log)

		assert.Equal(t, auth.ErrorResendCooldown, err)
		assert.Equal(t, auth.MessageResend, auth.Message(err))
	})

	t.Run("should still challenge when redis fails", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := auth.NewService(redisClient)

		redisMock.ExpectSetNX("otp:cooldown:+65 81234567", "", auth.ResendCooldown).SetErr(errors.New("connection refused"))

		challenge, err := service.RequestOTP(context.Background(), "+65", "81234567", &log)

		assert.Nil(t, err)
		assert.Equal(t, "+65 81234567", challenge.Contact)
	})

	t.Run("should validate input", func(t *testing.T) {
		redisClient, _ := redismock.NewClientMock()
		service := auth.NewService(redisClient)

		_, err := service.RequestOTP(context.Background(), "+91", "   ", &log)
		assert.Equal(t, auth.ErrorEmptyContact, err)

		_, err = service.RequestOTP(context.Background(), "+7", "9876543210", &log)
		assert.Equal(t, auth.ErrorUnknownCountry, err)
	})
}

func TestVerify(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	redisClient, redisMock := redismock.NewClientMock()
	service := auth.NewService(redisClient)

	redisMock.ExpectSetNX("otp:cooldown:+91 9876543210", "", auth.ResendCooldown).SetVal(true)
	challenge, err := service.RequestOTP(context.Background(), "+91", "9876543210", &log)
	assert.Nil(t, err)

	t.Run("correct code should proceed home", func(t *testing.T) {
		verification, err := service.Verify(challenge.Contact, auth.EntryFromCode("1234"), &log)

		assert.Nil(t, err)
		assert.Equal(t, &auth.Verification{Contact: "+91 9876543210", Next: "home"}, verification)
	})

	t.Run("wrong code should reset every field", func(t *testing.T) {
		entry := auth.EntryFromCode("0000")

		verification, err := service.Verify(challenge.Contact, entry, &log)

		assert.Nil(t, verification)
		assert.Equal(t, auth.ErrorInvalidOTP, err)
		assert.Equal(t, "Invalid OTP. Please try again.", auth.Message(err))
		assert.Equal(t, [auth.CodeLength]string{"", "", "", ""}, entry.Digits)
		assert.Equal(t, 0, entry.Focus)
	})

	t.Run("incomplete code should keep the fields", func(t *testing.T) {
		entry := auth.EntryFromCode("12")

		_, err := service.Verify(challenge.Contact, entry, &log)

		assert.Equal(t, auth.ErrorIncompleteOTP, err)
		assert.Equal(t, "Please enter the complete OTP", auth.Message(err))
		assert.Equal(t, "12", entry.Code())
	})
}

func TestFindCountry(t *testing.T) {
	country, ok := auth.FindCountry("+61")
	assert.True(t, ok)
	assert.Equal(t, "Australia (+61)", country.Label)

	_, ok = auth.FindCountry("+999")
	assert.False(t, ok)
}
