//go:build !integration

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitbucket.org/malama/ride-booking/internal/account"
	"bitbucket.org/malama/ride-booking/internal/api"
	"bitbucket.org/malama/ride-booking/internal/auth"
	"bitbucket.org/malama/ride-booking/internal/booking"
	"bitbucket.org/malama/ride-booking/internal/payment"
	"bitbucket.org/malama/ride-booking/internal/places"
	"bitbucket.org/malama/ride-booking/internal/rides"
	"bitbucket.org/malama/ride-booking/internal/tools/caching"
	"bitbucket.org/malama/ride-booking/internal/tools/client"
	"bitbucket.org/malama/ride-booking/internal/tools/logger"
	"bitbucket.org/malama/ride-booking/internal/tools/redisfactory"
	"bitbucket.org/malama/ride-booking/internal/web"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		logger.Info().Msg("Shutting down server...")
		_ = httpServer.Shutdown(context.Background())
	}()

	err := <-done
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func bookingLocation(log *zerolog.Logger) *time.Location {
	name := os.Getenv("BOOKING_TIMEZONE")
	if name == "" {
		name = "Asia/Kolkata"
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("timezone", name).Msg("Unknown booking timezone, falling back to IST")
		return time.FixedZone("IST", 5*60*60+30*60)
	}

	return location
}

func placesConfig(log *zerolog.Logger) places.Config {
	config := places.Config{
		APIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		Country: os.Getenv("PLACES_COUNTRY"),
	}

	if ttl := os.Getenv("PLACES_CACHE_TTL"); ttl != "" {
		duration, err := time.ParseDuration(ttl)
		if err != nil {
			log.Warn().Err(err).Msg("Invalid PLACES_CACHE_TTL, using default")
		} else {
			config.CacheTTL = duration
		}
	}

	return config
}

func onlineGateway() (payment.Gateway, error) {
	var optionFuncs []client.OptionFunc
	if baseURL := os.Getenv("RAZORPAY_URL"); baseURL != "" {
		optionFuncs = append(optionFuncs, client.WithBaseURL(baseURL))
	}

	return payment.NewRazorpay(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
		optionFuncs...,
	)
}

func main() {
	_ = godotenv.Load(".env")
	log := logger.New(os.Getenv("LOG_LEVEL"))

	redisFactory := redisfactory.New()

	services := api.Services{
		Schedule: booking.NewSchedule(bookingLocation(log)),
		Auth:     auth.NewService(redisFactory.SessionsClient()),
		Places: places.NewService(
			placesConfig(log),
			caching.NewRedisCache(redisFactory.PlacesClient(), "places:"),
			client.WithTimeout(5*time.Second),
		),
		Payments: payment.NewFactory(onlineGateway),
		Rides:    rides.NewStaticStore(),
		Accounts: account.NewStaticStore(),
	}

	appRouter := web.SetupRouter(log, services)

	var host string
	if os.Getenv("TEST") == "true" {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", host, os.Getenv("PORT")),
		Handler: appRouter,
	}

	os.Exit(serverApp(httpServer, log))
}
