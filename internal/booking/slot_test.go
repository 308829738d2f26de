package booking_test

import (
	"testing"
	"time"

	"bitbucket.org/malama/ride-booking/internal/booking"
	"github.com/stretchr/testify/assert"
)

func TestRoundUp(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		expected time.Time
	}{
		{
			"already aligned",
			time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC),
			time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC),
		},
		{
			"inside a slot",
			time.Date(2024, 5, 1, 10, 7, 30, 0, time.UTC),
			time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC),
		},
		{
			"sub second past a boundary",
			time.Date(2024, 5, 1, 10, 15, 0, 1, time.UTC),
			time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			"last slot of the day",
			time.Date(2024, 5, 1, 23, 50, 0, 0, time.UTC),
			time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, booking.RoundUp(test.instant, booking.SlotQuantum))
		})
	}
}

func TestMinimumBookable(t *testing.T) {
	t.Run("should be aligned and not earlier than the lead", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		leads := []time.Duration{0, time.Hour, booking.MinimumLead, 7 * time.Hour}

		// every 7 seconds over a day
		for offset := time.Duration(0); offset < 24*time.Hour; offset += 7 * time.Second {
			now := start.Add(offset)
			for _, lead := range leads {
				minimum := booking.MinimumBookable(now, lead)

				assert.Contains(t, []int{0, 15, 30, 45}, minimum.Minute())
				assert.Equal(t, 0, minimum.Second())
				assert.Equal(t, 0, minimum.Nanosecond())
				assert.False(t, minimum.Before(now.Add(lead)))
			}
		}
	})

	t.Run("should round in the schedule location and return utc", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*60*60+30*60)
		schedule := booking.NewSchedule(ist)

		now := time.Date(2024, 5, 1, 0, 10, 0, 0, time.UTC)
		minimum := schedule.MinimumBookable(now)

		assert.Equal(t, time.Date(2024, 5, 1, 4, 15, 0, 0, time.UTC), minimum)
		assert.Equal(t, time.UTC, minimum.Location())
	})
}

func TestClamp(t *testing.T) {
	schedule := booking.NewSchedule(time.UTC)
	now := time.Date(2024, 5, 1, 8, 3, 0, 0, time.UTC)

	tests := []struct {
		name     string
		chosen   time.Time
		expected time.Time
	}{
		{
			"before minimum",
			time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 1, 12, 15, 0, 0, time.UTC),
		},
		{
			"exactly minimum",
			time.Date(2024, 5, 1, 12, 15, 0, 0, time.UTC),
			time.Date(2024, 5, 1, 12, 15, 0, 0, time.UTC),
		},
		{
			"later unaligned",
			time.Date(2024, 5, 3, 9, 5, 0, 0, time.UTC),
			time.Date(2024, 5, 3, 9, 15, 0, 0, time.UTC),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, schedule.Clamp(test.chosen, now))
		})
	}
}

func TestMerge(t *testing.T) {
	schedule := booking.NewSchedule(time.UTC)
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	previous := time.Date(2024, 5, 3, 10, 30, 0, 0, time.UTC)

	t.Run("date change should keep time of day", func(t *testing.T) {
		merged := schedule.MergeDate(previous, 2024, time.May, 10, now)

		assert.Equal(t, time.Date(2024, 5, 10, 10, 30, 0, 0, time.UTC), merged)
	})

	t.Run("time change should keep the date", func(t *testing.T) {
		merged := schedule.MergeTime(previous, 18, 45, now)

		assert.Equal(t, time.Date(2024, 5, 3, 18, 45, 0, 0, time.UTC), merged)
	})

	t.Run("date and time edits should not depend on order", func(t *testing.T) {
		dateFirst := schedule.MergeTime(schedule.MergeDate(previous, 2024, time.May, 12, now), 7, 15, now)
		timeFirst := schedule.MergeDate(schedule.MergeTime(previous, 7, 15, now), 2024, time.May, 12, now)

		assert.Equal(t, dateFirst, timeFirst)
		assert.Equal(t, time.Date(2024, 5, 12, 7, 15, 0, 0, time.UTC), dateFirst)
	})

	t.Run("merged result before minimum should be clamped", func(t *testing.T) {
		merged := schedule.MergeDate(previous, 2024, time.May, 1, now)

		assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), merged)
	})

	t.Run("time should be read in the schedule location", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*60*60+30*60)
		local := booking.NewSchedule(ist)

		merged := local.MergeTime(previous, 18, 0, now)

		assert.Equal(t, time.Date(2024, 5, 3, 12, 30, 0, 0, time.UTC), merged)
	})
}

func TestBookable(t *testing.T) {
	schedule := booking.NewSchedule(time.UTC)
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	assert.True(t, schedule.Bookable(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), now))
	assert.False(t, schedule.Bookable(time.Date(2024, 5, 1, 11, 45, 0, 0, time.UTC), now))
	assert.False(t, schedule.Bookable(time.Date(2024, 5, 1, 12, 5, 0, 0, time.UTC), now))
	assert.False(t, schedule.Bookable(time.Time{}, now))
}
