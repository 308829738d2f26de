package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"bitbucket.org/malama/ride-booking/internal/api/middleware"
	"bitbucket.org/malama/ride-booking/internal/booking"
	"bitbucket.org/malama/ride-booking/internal/payment"
	"bitbucket.org/malama/ride-booking/internal/schema"
	"bitbucket.org/malama/ride-booking/internal/tools/responding"
	"bitbucket.org/malama/ride-booking/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	nextContact = "step2"
	nextFares   = "step3"
	nextRides   = "rides"
)

func toSchemaPlace(place booking.Place) schema.Place {
	result := schema.Place{
		Label: place.Label,
	}

	if place.Coordinate != nil {
		result.Coordinate = &schema.Coordinate{
			Latitude:  place.Coordinate.Latitude,
			Longitude: place.Coordinate.Longitude,
		}
	}

	return result
}

func toSchemaTrip(trip booking.TripDescriptor, schedule booking.Schedule, now time.Time) schema.Trip {
	return schema.Trip{
		ServiceType:      string(trip.ServiceType),
		ServiceLabel:     trip.ServiceType.Label(),
		Terminal:         string(trip.Terminal),
		TerminalLabel:    trip.Terminal.Label(),
		Pickup:           toSchemaPlace(trip.Pickup),
		Drop:             toSchemaPlace(trip.Drop),
		CurrentLocation:  trip.CurrentLocation,
		ScheduledAt:      trip.ScheduledAt,
		MinimumBookingAt: schedule.MinimumBookable(now),
	}
}

func carriedContact(contact booking.ContactInfo) *booking.ContactInfo {
	if contact == (booking.ContactInfo{}) {
		return nil
	}

	return &contact
}

func tripResponse(builder *booking.Builder, flow booking.Flow, schedule booking.Schedule, now time.Time) schema.TripResponse {
	trip := builder.Trip()

	response := schema.TripResponse{
		Trip:     toSchemaTrip(trip, schedule, now),
		Params:   booking.Encode(trip, carriedContact(flow.Contact)).Encode(),
		Complete: true,
	}

	if fieldErrors := builder.Validate(now); len(fieldErrors) > 0 {
		response.Complete = false
		response.Errors = &fieldErrors
		return response
	}

	response.Next = nextContact

	return response
}

func resumeTrip(ctx *gin.Context, flow booking.Flow, schedule booking.Schedule, now time.Time) *booking.Builder {
	if len(ctx.Request.URL.RawQuery) == 0 {
		return booking.NewBuilder(schedule, now)
	}

	return booking.ResumeBuilder(schedule, flow.Trip, now)
}

func showTrip(services Services) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		now := CurrentTimeFunc()
		flow := ctx.MustGet(middleware.FlowKey).(booking.Flow)

		builder := resumeTrip(ctx, flow, services.Schedule, now)

		ctx.JSON(http.StatusOK, tripResponse(builder, flow, services.Schedule, now))
	}
}

func editTrip(services Services) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		params, ok := ctx.MustGet(middleware.ParamsKey).(*schema.TripEditParams)
		if !ok {
			responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
			return
		}

		logger := ctx.MustGet("logger").(*zerolog.Logger)
		now := CurrentTimeFunc()
		flow := ctx.MustGet(middleware.FlowKey).(booking.Flow)

		builder := resumeTrip(ctx, flow, services.Schedule, now)
		bucket := schema.NewErrorsBucket()

		if params.ServiceType != nil {
			if err := builder.SetServiceType(booking.ServiceType(*params.ServiceType)); err != nil {
				bucket.AddError(schema.NewInvalidError("serviceType", "Choose airport drop or airport pickup"))
			}
		}

		if params.Terminal != nil {
			if err := builder.SetTerminal(booking.Terminal(*params.Terminal)); err != nil {
				bucket.AddError(schema.NewInvalidError("terminal", "Select a terminal"))
			}
		}

		if params.CurrentLocation != nil {
			coordinate := booking.Coordinate{
				Latitude:  params.CurrentLocation.Latitude,
				Longitude: params.CurrentLocation.Longitude,
			}

			label := services.Places.ReverseGeocode(ctx.Request.Context(), coordinate, logger)
			builder.ApplyCurrentLocation(label, coordinate)
		}

		if params.Place != nil {
			if fieldError := applyPlace(ctx, services, builder, params.Place, logger); fieldError != nil {
				bucket.AddError(*fieldError)
			}
		}

		if params.ScheduledAt != nil {
			builder.SetScheduledAt(*params.ScheduledAt, now)
		}

		if params.Date != nil {
			builder.SetDate(params.Date.Year(), params.Date.Month(), params.Date.Day(), now)
		}

		if params.Time != nil {
			clock, err := time.Parse("15:04", *params.Time)
			if err != nil {
				bucket.AddError(schema.NewInvalidError("time", "Pick a time as HH:MM"))
			} else {
				builder.SetTime(clock.Hour(), clock.Minute(), now)
			}
		}

		if !bucket.Empty() {
			responding.HandleFieldErrors(ctx, "Invalid trip edit", bucket.Errors())
			return
		}

		ctx.JSON(http.StatusOK, tripResponse(builder, flow, services.Schedule, now))
	}
}

func applyPlace(
	ctx *gin.Context,
	services Services,
	builder *booking.Builder,
	edit *schema.PlaceEdit,
	logger *zerolog.Logger,
) *schema.FieldError {
	role := booking.Role(edit.Role)

	var coordinate *booking.Coordinate
	switch {
	case edit.Latitude != nil && edit.Longitude != nil:
		coordinate = &booking.Coordinate{
			Latitude:  *edit.Latitude,
			Longitude: *edit.Longitude,
		}
	case edit.PlaceID != "":
		coordinate = services.Places.Resolve(ctx.Request.Context(), edit.PlaceID, logger)
	}

	err := builder.SetPlace(role, edit.Label, coordinate)
	switch {
	case errors.Is(err, booking.ErrorAirportLegNotEditable):
		fieldError := schema.NewInvalidError(edit.Role+"Location", "The airport cannot be changed")
		return &fieldError
	case err != nil:
		fieldError := schema.NewInvalidError("place", "Unknown location role")
		return &fieldError
	}

	return nil
}

func saveContact(ctx *gin.Context) {
	params, ok := ctx.MustGet(middleware.ParamsKey).(*schema.ContactParams)
	if !ok {
		responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
		return
	}

	flow := ctx.MustGet(middleware.FlowKey).(booking.Flow)

	contact := booking.ContactInfo{
		Name:  strings.TrimSpace(params.Name),
		Phone: strings.TrimSpace(params.Whatsapp),
		Email: strings.TrimSpace(params.Email),
	}

	if fieldErrors := contact.Validate(); len(fieldErrors) > 0 {
		responding.HandleFieldErrors(ctx, "Invalid contact details", fieldErrors)
		return
	}

	ctx.JSON(http.StatusOK, schema.StepResponse{
		Params: booking.Encode(flow.Trip, &contact).Encode(),
		Next:   nextFares,
	})
}

func listFares(ctx *gin.Context) {
	flow := ctx.MustGet(middleware.FlowKey).(booking.Flow)
	trip := flow.Trip

	options := []schema.FareOption{}
	for _, option := range booking.FaresFor(trip.ServiceType) {
		options = append(options, schema.FareOption{
			Toll:     string(option.Toll),
			Label:    option.Label(),
			Amount:   option.Amount,
			Currency: booking.Currency,
		})
	}

	serviceType := trip.ServiceType
	if !serviceType.Valid() {
		serviceType = booking.ServiceTypeDrop
	}

	ctx.JSON(http.StatusOK, schema.FaresResponse{
		Summary: schema.BookingSummary{
			ServiceLabel:  serviceType.Label(),
			TerminalLabel: trip.Terminal.Label(),
			Pickup:        placeholder(trip.Pickup.Label),
			Drop:          placeholder(trip.Drop.Label),
			ScheduledAt:   trip.ScheduledAt,
			Name:          placeholder(flow.Contact.Name),
			Whatsapp:      placeholder(flow.Contact.Phone),
			Email:         flow.Contact.Email,
		},
		Options: options,
	})
}

func placeholder(value string) string {
	if value == "" {
		return "—"
	}

	return value
}

func confirmBooking(services Services) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		params, ok := ctx.MustGet(middleware.ParamsKey).(*schema.ConfirmParams)
		if !ok {
			responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
			return
		}

		logger := ctx.MustGet("logger").(*zerolog.Logger)
		now := CurrentTimeFunc()
		flow := ctx.MustGet(middleware.FlowKey).(booking.Flow)

		submission, fieldErrors := booking.NewSubmission(services.Schedule, now, flow.Trip, flow.Contact, booking.SubmissionDetails{
			Toll:                booking.TollOption(params.Toll),
			PaymentMethod:       payment.Method(params.PaymentMethod),
			ReturnTrip:          params.ReturnTrip,
			SpecialRequirements: params.SpecialRequirements,
		})
		if len(fieldErrors) > 0 {
			responding.HandleFieldErrors(ctx, "Booking is incomplete", fieldErrors)
			return
		}

		gateway, err := services.Payments.Gateway(submission.PaymentMethod)
		if err != nil {
			responding.HandleError(ctx, http.StatusServiceUnavailable, "Payment is unavailable", err)
			return
		}

		request := submission.PaymentRequest()

		slowLog := slowlog.CreateLogger(logger)
		slowLog.Start("payment:checkout")
		outcome := gateway.Checkout(ctx.Request.Context(), request, logger)
		slowLog.Stop("payment:checkout")

		response := schema.ConfirmResponse{
			Success:     outcome.Success,
			PaymentID:   outcome.PaymentID,
			Reason:      outcome.Reason,
			Silent:      outcome.Silent(),
			Amount:      request.Amount,
			Currency:    submission.Fare.Currency,
			Description: request.Description,
		}

		if !outcome.Success {
			logger.Warn().
				Str("paymentMethod", string(submission.PaymentMethod)).
				Str("reason", outcome.Reason).
				Msg("Payment not completed")

			ctx.JSON(http.StatusPaymentRequired, response)
			return
		}

		logger.Info().
			Str("paymentMethod", string(submission.PaymentMethod)).
			Str("paymentId", outcome.PaymentID).
			Int64("amount", request.Amount).
			Bool("returnTrip", submission.ReturnTrip).
			Msg("Booking confirmed")

		response.Next = nextRides
		ctx.JSON(http.StatusOK, response)
	}
}
