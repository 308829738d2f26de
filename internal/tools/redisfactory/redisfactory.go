package redisfactory

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// If one connection needs to be broken up new function should be introduced
// example: PlacesDetailsClient()

type Factory struct {
	placesCache *redis.Client
	sessions    *redis.Client
}

func newClient(uriVariable string) *redis.Client {
	opt, err := redis.ParseURL(os.Getenv(uriVariable))
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return redis.NewClient(opt)
}

// New panics when a URI is missing so the service fails on start.
func New() *Factory {
	return &Factory{
		placesCache: newClient("PLACES_REDIS_URI"),
		sessions:    newClient("SESSIONS_REDIS_URI"),
	}
}

func (f *Factory) PlacesClient() *redis.Client {
	return f.placesCache
}

// SessionsClient keeps the otp resend cooldowns.
func (f *Factory) SessionsClient() *redis.Client {
	return f.sessions
}
