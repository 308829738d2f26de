package booking

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/go-querystring/query"
)

// flowParams is the flat form of a booking in progress, carried from screen
// to screen in the query string.
type flowParams struct {
	ServiceType     string   `url:"serviceType,omitempty"`
	Terminal        string   `url:"terminal,omitempty"`
	PickupLocation  string   `url:"pickupLocation,omitempty"`
	PickupLat       *float64 `url:"pickupLat,omitempty"`
	PickupLng       *float64 `url:"pickupLng,omitempty"`
	DropLocation    string   `url:"dropLocation,omitempty"`
	DropLat         *float64 `url:"dropLat,omitempty"`
	DropLng         *float64 `url:"dropLng,omitempty"`
	CurrentLocation bool     `url:"currentLocation,omitempty"`
	Date            string   `url:"date,omitempty"`
	Name            string   `url:"name,omitempty"`
	Whatsapp        string   `url:"whatsapp,omitempty"`
	Email           string   `url:"email,omitempty"`
}

// Flow is a decoded booking in progress.
type Flow struct {
	Trip    TripDescriptor
	Contact ContactInfo
}

// Encode flattens a trip and, from step two on, the contact details.
func Encode(trip TripDescriptor, contact *ContactInfo) url.Values {
	params := flowParams{
		ServiceType:     string(trip.ServiceType),
		Terminal:        string(trip.Terminal),
		PickupLocation:  trip.Pickup.Label,
		DropLocation:    trip.Drop.Label,
		CurrentLocation: trip.CurrentLocation,
	}

	if trip.Pickup.Coordinate != nil {
		params.PickupLat = &trip.Pickup.Coordinate.Latitude
		params.PickupLng = &trip.Pickup.Coordinate.Longitude
	}

	if trip.Drop.Coordinate != nil {
		params.DropLat = &trip.Drop.Coordinate.Latitude
		params.DropLng = &trip.Drop.Coordinate.Longitude
	}

	if !trip.ScheduledAt.IsZero() {
		params.Date = trip.ScheduledAt.UTC().Format(time.RFC3339)
	}

	if contact != nil {
		params.Name = contact.Name
		params.Whatsapp = contact.Phone
		params.Email = contact.Email
	}

	// only fails for non struct input
	values, _ := query.Values(params)

	return values
}

// Decode is the inverse of Encode. Missing or malformed keys decode to empty
// values instead of failing.
func Decode(values url.Values) Flow {
	trip := TripDescriptor{
		ServiceType:     ServiceType(values.Get("serviceType")),
		Terminal:        Terminal(values.Get("terminal")),
		CurrentLocation: values.Get("currentLocation") == "true",
		Pickup: Place{
			Label:      values.Get("pickupLocation"),
			Coordinate: decodeCoordinate(values.Get("pickupLat"), values.Get("pickupLng")),
		},
		Drop: Place{
			Label:      values.Get("dropLocation"),
			Coordinate: decodeCoordinate(values.Get("dropLat"), values.Get("dropLng")),
		},
	}

	if date := values.Get("date"); date != "" {
		scheduledAt, err := time.Parse(time.RFC3339, date)
		if err == nil {
			trip.ScheduledAt = scheduledAt.UTC()
		}
	}

	contact := ContactInfo{
		Name:  values.Get("name"),
		Phone: values.Get("whatsapp"),
		Email: values.Get("email"),
	}

	return Flow{
		Trip:    trip,
		Contact: contact,
	}
}

func decodeCoordinate(lat string, lng string) *Coordinate {
	if lat == "" || lng == "" {
		return nil
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil
	}

	longitude, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return nil
	}

	return &Coordinate{
		Latitude:  latitude,
		Longitude: longitude,
	}
}
