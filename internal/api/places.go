package api

import (
	"net/http"

	"bitbucket.org/malama/ride-booking/internal/api/interfaces"
	"bitbucket.org/malama/ride-booking/internal/api/middleware"
	"bitbucket.org/malama/ride-booking/internal/booking"
	"bitbucket.org/malama/ride-booking/internal/schema"
	"bitbucket.org/malama/ride-booking/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func searchPlaces(finder interfaces.PlaceFinder) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		params, ok := ctx.MustGet(middleware.ParamsKey).(*schema.PlaceSearchParams)
		if !ok {
			responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
			return
		}

		logger := ctx.MustGet("logger").(*zerolog.Logger)

		suggestions := []schema.Suggestion{}
		for _, suggestion := range finder.Search(ctx.Request.Context(), params.Query, logger) {
			suggestions = append(suggestions, schema.Suggestion{
				Label:          suggestion.Label,
				SecondaryLabel: suggestion.SecondaryLabel,
				PlaceID:        suggestion.PlaceID,
			})
		}

		ctx.JSON(http.StatusOK, schema.PlaceSearchResponse{
			Suggestions: suggestions,
		})
	}
}

func placeDetails(finder interfaces.PlaceFinder) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)
		placeID := ctx.Params.ByName("placeId")

		coordinate := finder.Resolve(ctx.Request.Context(), placeID, logger)
		if coordinate == nil {
			responding.HandleError(ctx, http.StatusNotFound, "Place could not be resolved", nil)
			return
		}

		ctx.JSON(http.StatusOK, schema.PlaceDetailsResponse{
			PlaceID: placeID,
			Coordinate: schema.Coordinate{
				Latitude:  coordinate.Latitude,
				Longitude: coordinate.Longitude,
			},
		})
	}
}

func reverseGeocode(finder interfaces.PlaceFinder) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		params, ok := ctx.MustGet(middleware.ParamsKey).(*schema.ReverseGeocodeParams)
		if !ok {
			responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
			return
		}

		logger := ctx.MustGet("logger").(*zerolog.Logger)

		label := finder.ReverseGeocode(ctx.Request.Context(), booking.Coordinate{
			Latitude:  *params.Latitude,
			Longitude: *params.Longitude,
		}, logger)
		if label == "" {
			label = booking.CurrentLocationLabel
		}

		ctx.JSON(http.StatusOK, schema.ReverseGeocodeResponse{
			Label: label,
		})
	}
}
