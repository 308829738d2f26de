package booking

import (
	"time"
)

const (
	SlotQuantum = 15 * time.Minute
	MinimumLead = 4 * time.Hour
)

// RoundUp returns the smallest instant aligned to quantum on t's wall clock
// that is not before t. Alignment is counted from local midnight.
func RoundUp(t time.Time, quantum time.Duration) time.Time {
	if quantum <= 0 {
		return t
	}

	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())

	elapsed := t.Sub(midnight)
	slots := elapsed / quantum
	if elapsed%quantum != 0 {
		slots++
	}

	return midnight.Add(slots * quantum)
}

func MinimumBookable(now time.Time, lead time.Duration) time.Time {
	return RoundUp(now.Add(lead), SlotQuantum)
}

// Schedule holds the rules a pickup time has to satisfy. Wall-clock edits are
// interpreted in Location, every returned instant is UTC.
type Schedule struct {
	Location *time.Location
	Lead     time.Duration
	Quantum  time.Duration
}

func NewSchedule(location *time.Location) Schedule {
	if location == nil {
		location = time.UTC
	}

	return Schedule{
		Location: location,
		Lead:     MinimumLead,
		Quantum:  SlotQuantum,
	}
}

func (s Schedule) MinimumBookable(now time.Time) time.Time {
	return RoundUp(now.In(s.Location).Add(s.Lead), s.Quantum).UTC()
}

// Clamp replaces a chosen time that is earlier than the minimum bookable time
// with the minimum, otherwise it rounds the choice up to the next slot.
func (s Schedule) Clamp(chosen time.Time, now time.Time) time.Time {
	minimum := s.MinimumBookable(now)
	if chosen.Before(minimum) {
		return minimum
	}

	return RoundUp(chosen.In(s.Location), s.Quantum).UTC()
}

// MergeDate keeps the time of day of previous and moves it to the given date.
func (s Schedule) MergeDate(previous time.Time, year int, month time.Month, day int, now time.Time) time.Time {
	local := previous.In(s.Location)
	merged := time.Date(year, month, day, local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), s.Location)

	return s.Clamp(merged, now)
}

// MergeTime keeps the calendar date of previous and replaces the time of day.
func (s Schedule) MergeTime(previous time.Time, hour int, minute int, now time.Time) time.Time {
	local := previous.In(s.Location)
	merged := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, s.Location)

	return s.Clamp(merged, now)
}

func (s Schedule) Aligned(t time.Time) bool {
	return RoundUp(t.In(s.Location), s.Quantum).Equal(t)
}

func (s Schedule) Bookable(t time.Time, now time.Time) bool {
	return !t.IsZero() && s.Aligned(t) && !t.Before(s.MinimumBookable(now))
}
