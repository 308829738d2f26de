package redisfactory_test

import (
	"testing"

	"bitbucket.org/malama/ride-booking/internal/tools/redisfactory"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("clients per uri", func(t *testing.T) {
		t.Setenv("PLACES_REDIS_URI", "redis://localhost:6379/1")
		t.Setenv("SESSIONS_REDIS_URI", "redis://localhost:6379/2")

		factory := redisfactory.New()

		assert.Equal(t, 1, factory.PlacesClient().Options().DB)
		assert.Equal(t, 2, factory.SessionsClient().Options().DB)
		assert.Equal(t, "localhost:6379", factory.SessionsClient().Options().Addr)
	})

	t.Run("missing uri", func(t *testing.T) {
		t.Setenv("PLACES_REDIS_URI", "")
		t.Setenv("SESSIONS_REDIS_URI", "redis://localhost:6379/2")

		assert.Panics(t, func() {
			redisfactory.New()
		})
	})
}
