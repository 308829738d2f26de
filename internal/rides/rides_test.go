package rides_test

import (
	"testing"

	"bitbucket.org/malama/ride-booking/internal/rides"
	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	store := rides.NewStaticStore()

	tests := []struct {
		name        string
		status      rides.Status
		expectedIDs []string
	}{
		{"all", "", []string{"1", "2", "3", "4"}},
		{"completed", rides.StatusCompleted, []string{"1", "2", "4"}},
		{"cancelled", rides.StatusCancelled, []string{"3"}},
		{"upcoming", rides.StatusUpcoming, []string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			history, err := store.History(test.status)
			assert.Nil(t, err)

			ids := []string{}
			for _, ride := range history {
				ids = append(ids, ride.ID)
			}
			assert.Equal(t, test.expectedIDs, ids)
		})
	}

	t.Run("unknown status should fail", func(t *testing.T) {
		_, err := store.History("lost")
		assert.Equal(t, rides.ErrorUnknownStatus, err)
	})
}

func TestSections(t *testing.T) {
	history, _ := rides.NewStaticStore().History("")

	sections := rides.Sections(history)

	assert.Len(t, sections, 2)
	assert.Equal(t, "This Month", sections[0].Title)
	assert.Len(t, sections[0].Rides, 2)
	assert.Equal(t, "Last Month", sections[1].Title)
	assert.Equal(t, "3", sections[1].Rides[0].ID)

	assert.Equal(t, []rides.Section{}, rides.Sections(nil))
}
