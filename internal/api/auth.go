package api

import (
	"errors"
	"net/http"

	"bitbucket.org/malama/ride-booking/internal/api/interfaces"
	"bitbucket.org/malama/ride-booking/internal/api/middleware"
	"bitbucket.org/malama/ride-booking/internal/auth"
	"bitbucket.org/malama/ride-booking/internal/schema"
	"bitbucket.org/malama/ride-booking/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func listCountries(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, auth.Countries)
}

func requestOTP(service interfaces.OTPService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		params, ok := ctx.MustGet(middleware.ParamsKey).(*schema.OTPRequestParams)
		if !ok {
			responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
			return
		}

		logger := ctx.MustGet("logger").(*zerolog.Logger)

		challenge, err := service.RequestOTP(ctx.Request.Context(), params.CountryCode, params.Contact, logger)
		switch {
		case errors.Is(err, auth.ErrorEmptyContact):
			responding.HandleFieldErrors(ctx, "Invalid contact", schema.FieldErrors{
				schema.NewRequiredError("contact", auth.Message(err)),
			})
			return
		case errors.Is(err, auth.ErrorUnknownCountry):
			responding.HandleFieldErrors(ctx, "Invalid contact", schema.FieldErrors{
				schema.NewInvalidError("countryCode", auth.Message(err)),
			})
			return
		case errors.Is(err, auth.ErrorResendCooldown):
			responding.HandleError(ctx, http.StatusTooManyRequests, auth.Message(err), err)
			return
		case err != nil:
			responding.HandleError(ctx, http.StatusInternalServerError, "Failed requesting otp", err)
			return
		}

		ctx.JSON(http.StatusOK, schema.OTPChallengeResponse{
			Contact:     challenge.Contact,
			ResendAfter: int(challenge.ResendAfter.Seconds()),
		})
	}
}

func verifyOTP(service interfaces.OTPService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		params, ok := ctx.MustGet(middleware.ParamsKey).(*schema.OTPVerifyParams)
		if !ok {
			responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
			return
		}

		logger := ctx.MustGet("logger").(*zerolog.Logger)

		entry := auth.EntryFromCode(params.Code)
		if len(params.Digits) > 0 {
			entry = auth.NewEntry()
			for i, digit := range params.Digits {
				entry.Type(i, digit)
			}
		}

		verification, err := service.Verify(params.Contact, entry, logger)
		if err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, schema.OTPVerifyResponse{
				Message: auth.Message(err),
				Digits:  entry.Digits[:],
				Focus:   entry.Focus,
			})
			return
		}

		ctx.JSON(http.StatusOK, schema.OTPVerifyResponse{
			Verified: true,
			Next:     verification.Next,
			Digits:   entry.Digits[:],
			Focus:    entry.Focus,
		})
	}
}
