package places

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"bitbucket.org/malama/ride-booking/internal/booking"
	"bitbucket.org/malama/ride-booking/internal/tools/client"
	"bitbucket.org/malama/ride-booking/internal/tools/requesting"
	"bitbucket.org/malama/ride-booking/internal/tools/slowlog"
	"github.com/mmcloughlin/geohash"
	"github.com/rs/zerolog"
	"googlemaps.github.io/maps"
)

const (
	DefaultCountry  = "in"
	DefaultCacheTTL = 24 * time.Hour
	MinQueryLength  = 2

	// cells of roughly 150m share a reverse geocoding result
	reverseGeohashPrecision = 7
)

type Suggestion struct {
	Label          string `json:"label"`
	SecondaryLabel string `json:"secondaryLabel"`
	PlaceID        string `json:"placeId"`
}

type Cache interface {
	Store(ctx context.Context, key string, value any, ttl time.Duration) error
	Fetch(ctx context.Context, key string, destination any) bool
}

type Config struct {
	APIKey   string
	Country  string
	CacheTTL time.Duration
}

// Service looks up places for the booking legs. Every lookup is best effort,
// failures are logged and end as empty results.
type Service struct {
	config        Config
	cache         Cache
	options       *client.Options
	httpTransport http.RoundTripper
}

func NewService(config Config, cache Cache, optionFuncs ...client.OptionFunc) *Service {
	if config.Country == "" {
		config.Country = DefaultCountry
	}

	if config.CacheTTL <= 0 {
		config.CacheTTL = DefaultCacheTTL
	}

	return &Service{
		config:        config,
		cache:         cache,
		options:       client.NewOptions(optionFuncs...),
		httpTransport: http.DefaultTransport,
	}
}

func (s *Service) mapsClient(logger *zerolog.Logger) (*maps.Client, error) {
	httpClient := &http.Client{
		Timeout: s.options.Timeout(),
		Transport: &requesting.InterceptorTransport{
			Transport: s.httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(logger, "google-maps"),
			},
		},
	}

	optionFuncs := []maps.ClientOption{
		maps.WithAPIKey(s.config.APIKey),
		maps.WithHTTPClient(httpClient),
	}

	if baseURL := s.options.BaseURL(""); baseURL != "" {
		optionFuncs = append(optionFuncs, maps.WithBaseURL(baseURL))
	}

	return maps.NewClient(optionFuncs...)
}

// Search returns autocomplete suggestions for the query. Queries shorter than
// MinQueryLength are not sent.
func (s *Service) Search(ctx context.Context, query string, logger *zerolog.Logger) []Suggestion {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []Suggestion{}
	}

	key := "search:" + s.config.Country + ":" + strings.ToLower(query)

	suggestions := []Suggestion{}
	if s.cache.Fetch(ctx, key, &suggestions) {
		return suggestions
	}

	defer slowlog.Measure(slowlog.CreateLogger(logger), "places:search")()

	mapsClient, err := s.mapsClient(logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Unable to create maps client")
		return []Suggestion{}
	}

	response, err := mapsClient.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input: query,
		Components: map[maps.Component][]string{
			maps.ComponentCountry: {s.config.Country},
		},
	})
	if err != nil {
		logger.Warn().Err(err).Str("query", query).Msg("Places autocomplete failed")
		return []Suggestion{}
	}

	suggestions = make([]Suggestion, 0, len(response.Predictions))
	for _, prediction := range response.Predictions {
		label := prediction.StructuredFormatting.MainText
		if label == "" {
			label = prediction.Description
		}

		suggestions = append(suggestions, Suggestion{
			Label:          label,
			SecondaryLabel: prediction.StructuredFormatting.SecondaryText,
			PlaceID:        prediction.PlaceID,
		})
	}

	s.store(ctx, key, suggestions, logger)

	return suggestions
}

// Resolve fetches the coordinate of a suggestion. Nil means the place could
// not be resolved.
func (s *Service) Resolve(ctx context.Context, placeID string, logger *zerolog.Logger) *booking.Coordinate {
	if placeID == "" {
		return nil
	}

	key := "details:" + placeID

	coordinate := booking.Coordinate{}
	if s.cache.Fetch(ctx, key, &coordinate) {
		return &coordinate
	}

	defer slowlog.Measure(slowlog.CreateLogger(logger), "places:details")()

	mapsClient, err := s.mapsClient(logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Unable to create maps client")
		return nil
	}

	result, err := mapsClient.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  []maps.PlaceDetailsFieldMask{maps.PlaceDetailsFieldMaskGeometry},
	})
	if err != nil {
		logger.Warn().Err(err).Str("placeId", placeID).Msg("Place details failed")
		return nil
	}

	coordinate = booking.Coordinate{
		Latitude:  result.Geometry.Location.Lat,
		Longitude: result.Geometry.Location.Lng,
	}

	s.store(ctx, key, coordinate, logger)

	return &coordinate
}

// ReverseGeocode names a device location. An empty label means no name was
// found and the caller falls back to a generic one.
func (s *Service) ReverseGeocode(ctx context.Context, coordinate booking.Coordinate, logger *zerolog.Logger) string {
	key := "reverse:" + geohash.EncodeWithPrecision(coordinate.Latitude, coordinate.Longitude, reverseGeohashPrecision)

	label := ""
	if s.cache.Fetch(ctx, key, &label) {
		return label
	}

	defer slowlog.Measure(slowlog.CreateLogger(logger), "places:reverse")()

	mapsClient, err := s.mapsClient(logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Unable to create maps client")
		return ""
	}

	results, err := mapsClient.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: coordinate.Latitude,
			Lng: coordinate.Longitude,
		},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Reverse geocoding failed")
		return ""
	}

	if len(results) == 0 {
		return ""
	}

	label = results[0].FormattedAddress
	s.store(ctx, key, label, logger)

	return label
}

func (s *Service) store(ctx context.Context, key string, value any, logger *zerolog.Logger) {
	if err := s.cache.Store(ctx, key, value, s.config.CacheTTL); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Unable to cache places result")
	}
}
