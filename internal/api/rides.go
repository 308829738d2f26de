package api

import (
	"net/http"

	"bitbucket.org/malama/ride-booking/internal/api/interfaces"
	"bitbucket.org/malama/ride-booking/internal/api/middleware"
	"bitbucket.org/malama/ride-booking/internal/rides"
	"bitbucket.org/malama/ride-booking/internal/schema"
	"bitbucket.org/malama/ride-booking/internal/tools/responding"
	"github.com/gin-gonic/gin"
)

func listRides(history interfaces.RideHistory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		params, ok := ctx.MustGet(middleware.ParamsKey).(*schema.RidesParams)
		if !ok {
			responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
			return
		}

		list, err := history.History(rides.Status(params.Status))
		if err != nil {
			responding.HandleError(ctx, http.StatusBadRequest, "Unknown ride status", err)
			return
		}

		ctx.JSON(http.StatusOK, struct {
			Sections []rides.Section `json:"sections"`
		}{
			Sections: rides.Sections(list),
		})
	}
}

func showProfile(accounts interfaces.AccountStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, accounts.Current())
	}
}
