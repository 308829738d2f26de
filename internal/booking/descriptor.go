package booking

import (
	"strings"
	"time"

	"bitbucket.org/malama/ride-booking/internal/schema"
)

type ServiceType string

const (
	// ServiceTypeDrop is a ride from the city to the airport.
	ServiceTypeDrop ServiceType = "drop"
	// ServiceTypePickup is a ride from the airport to the city.
	ServiceTypePickup ServiceType = "pickup"
)

func (s ServiceType) Valid() bool {
	return s == ServiceTypeDrop || s == ServiceTypePickup
}

func (s ServiceType) Label() string {
	if s == ServiceTypePickup {
		return "Airport → City"
	}

	return "City → Airport"
}

// AirportRole is the leg fixed to the airport for the service type.
func (s ServiceType) AirportRole() Role {
	if s == ServiceTypePickup {
		return RolePickup
	}

	return RoleDrop
}

type Terminal string

const (
	TerminalUnset Terminal = ""
	Terminal1     Terminal = "terminal1"
	Terminal2     Terminal = "terminal2"
)

func (t Terminal) Valid() bool {
	return t == Terminal1 || t == Terminal2
}

func (t Terminal) Label() string {
	switch t {
	case Terminal1:
		return "Terminal 1"
	case Terminal2:
		return "Terminal 2"
	default:
		return "—"
	}
}

type Role string

const (
	RolePickup Role = "pickup"
	RoleDrop   Role = "drop"
)

func (r Role) Opposite() Role {
	if r == RolePickup {
		return RoleDrop
	}

	return RolePickup
}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Place struct {
	Label      string
	Coordinate *Coordinate
}

const CurrentLocationLabel = "Current Location"

// Airport is the fixed endpoint of every ride.
var Airport = Place{
	Label: "Kempegowda International Airport",
	Coordinate: &Coordinate{
		Latitude:  13.1986,
		Longitude: 77.7066,
	},
}

type TripDescriptor struct {
	ServiceType ServiceType
	Terminal    Terminal
	Pickup      Place
	Drop        Place
	// CurrentLocation marks the city leg as filled from the device location.
	CurrentLocation bool
	ScheduledAt     time.Time
}

func (d TripDescriptor) Leg(role Role) Place {
	if role == RolePickup {
		return d.Pickup
	}

	return d.Drop
}

func (d *TripDescriptor) setLeg(role Role, place Place) {
	if role == RolePickup {
		d.Pickup = place
		return
	}

	d.Drop = place
}

// CityRole is the user searched leg, the one that is not the airport.
func (d TripDescriptor) CityRole() Role {
	return d.ServiceType.AirportRole().Opposite()
}

func (d TripDescriptor) Validate(schedule Schedule, now time.Time) schema.FieldErrors {
	bucket := schema.NewErrorsBucket()

	if !d.ServiceType.Valid() {
		bucket.AddError(schema.NewInvalidError("serviceType", "Choose airport drop or airport pickup"))
	}

	if !d.Terminal.Valid() {
		bucket.AddError(schema.NewRequiredError("terminal", "Select a terminal"))
	}

	cityRole := d.CityRole()
	if strings.TrimSpace(d.Leg(cityRole).Label) == "" {
		bucket.AddError(schema.NewRequiredError(string(cityRole)+"Location", "Search for a location"))
	}

	switch {
	case d.ScheduledAt.IsZero():
		bucket.AddError(schema.NewRequiredError("date", "Pick a date and time"))
	case !schedule.Aligned(d.ScheduledAt):
		bucket.AddError(schema.NewInvalidError("date", "Pick a time in 15 minute steps"))
	case d.ScheduledAt.Before(schedule.MinimumBookable(now)):
		bucket.AddError(schema.NewTooEarlyError("date", "Rides must be booked at least 4 hours ahead"))
	}

	return bucket.Errors()
}

func (d TripDescriptor) Complete(schedule Schedule, now time.Time) bool {
	return len(d.Validate(schedule, now)) == 0
}

// Builder applies step one edits to a trip while keeping the airport leg and
// the device location fill consistent with the service type.
type Builder struct {
	schedule Schedule
	trip     TripDescriptor
}

func NewBuilder(schedule Schedule, now time.Time) *Builder {
	trip := TripDescriptor{
		ServiceType: ServiceTypeDrop,
		Drop:        Airport,
		ScheduledAt: schedule.MinimumBookable(now),
	}

	return &Builder{
		schedule: schedule,
		trip:     trip,
	}
}

// ResumeBuilder continues editing a trip carried over from flow params. Missing
// service type or time fall back to the defaults of a new booking.
func ResumeBuilder(schedule Schedule, trip TripDescriptor, now time.Time) *Builder {
	if !trip.ServiceType.Valid() {
		trip.ServiceType = ServiceTypeDrop
	}

	if trip.ScheduledAt.IsZero() {
		trip.ScheduledAt = schedule.MinimumBookable(now)
	}

	trip.setLeg(trip.ServiceType.AirportRole(), Airport)

	return &Builder{
		schedule: schedule,
		trip:     trip,
	}
}

func (b *Builder) Trip() TripDescriptor {
	return b.trip
}

func (b *Builder) SetServiceType(serviceType ServiceType) error {
	if !serviceType.Valid() {
		return ErrorUnknownServiceType
	}

	if serviceType == b.trip.ServiceType {
		return nil
	}

	city := b.trip.Leg(b.trip.CityRole())

	b.trip.ServiceType = serviceType
	b.trip.Terminal = TerminalUnset
	b.trip.setLeg(serviceType.AirportRole(), Airport)
	b.trip.setLeg(b.trip.CityRole(), city)

	return nil
}

func (b *Builder) SetTerminal(terminal Terminal) error {
	if !terminal.Valid() {
		return ErrorUnknownTerminal
	}

	b.trip.Terminal = terminal

	return nil
}

func (b *Builder) SetPlace(role Role, label string, coordinate *Coordinate) error {
	if role != RolePickup && role != RoleDrop {
		return ErrorUnknownRole
	}

	if role == b.trip.ServiceType.AirportRole() {
		return ErrorAirportLegNotEditable
	}

	b.trip.setLeg(role, Place{
		Label:      strings.TrimSpace(label),
		Coordinate: coordinate,
	})
	b.trip.CurrentLocation = false

	return nil
}

// ApplyCurrentLocation fills the city leg from a device location fix.
func (b *Builder) ApplyCurrentLocation(label string, coordinate Coordinate) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = CurrentLocationLabel
	}

	b.trip.setLeg(b.trip.CityRole(), Place{
		Label:      label,
		Coordinate: &coordinate,
	})
	b.trip.CurrentLocation = true
}

func (b *Builder) SetScheduledAt(chosen time.Time, now time.Time) {
	b.trip.ScheduledAt = b.schedule.Clamp(chosen, now)
}

func (b *Builder) SetDate(year int, month time.Month, day int, now time.Time) {
	b.trip.ScheduledAt = b.schedule.MergeDate(b.trip.ScheduledAt, year, month, day, now)
}

func (b *Builder) SetTime(hour int, minute int, now time.Time) {
	b.trip.ScheduledAt = b.schedule.MergeTime(b.trip.ScheduledAt, hour, minute, now)
}

func (b *Builder) Validate(now time.Time) schema.FieldErrors {
	return b.trip.Validate(b.schedule, now)
}
