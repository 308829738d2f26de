package schema

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Place struct {
	Label      string      `json:"label"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}

type Trip struct {
	ServiceType      string    `json:"serviceType"`
	ServiceLabel     string    `json:"serviceLabel"`
	Terminal         string    `json:"terminal,omitempty"`
	TerminalLabel    string    `json:"terminalLabel"`
	Pickup           Place     `json:"pickup"`
	Drop             Place     `json:"drop"`
	CurrentLocation  bool      `json:"currentLocation"`
	ScheduledAt      time.Time `json:"scheduledAt"`
	MinimumBookingAt time.Time `json:"minimumBookingAt"`
}

type PlaceEdit struct {
	Role      string   `json:"role" binding:"required"`
	Label     string   `json:"label"`
	PlaceID   string   `json:"placeId"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type TripEditParams struct {
	ServiceType     *string             `json:"serviceType"`
	Terminal        *string             `json:"terminal"`
	CurrentLocation *Coordinate         `json:"currentLocation"`
	Place           *PlaceEdit          `json:"place"`
	ScheduledAt     *time.Time          `json:"scheduledAt"`
	Date            *openapi_types.Date `json:"date"`
	// Time of day as HH:MM in the booking time zone
	Time *string `json:"time"`
}

type TripResponse struct {
	Trip     Trip         `json:"trip"`
	Params   string       `json:"params"`
	Complete bool         `json:"complete"`
	Next     string       `json:"next,omitempty"`
	Errors   *FieldErrors `json:"errors,omitempty"`
}

type ContactParams struct {
	Name     string `json:"name"`
	Whatsapp string `json:"whatsapp"`
	// Email is optional, an empty value counts as not given
	Email string `json:"email"`
}

type StepResponse struct {
	Params string `json:"params"`
	Next   string `json:"next"`
}

type FareOption struct {
	Toll     string `json:"toll"`
	Label    string `json:"label"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type BookingSummary struct {
	ServiceLabel  string    `json:"serviceLabel"`
	TerminalLabel string    `json:"terminalLabel"`
	Pickup        string    `json:"pickup"`
	Drop          string    `json:"drop"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	Name          string    `json:"name"`
	Whatsapp      string    `json:"whatsapp"`
	Email         string    `json:"email,omitempty"`
}

type FaresResponse struct {
	Summary BookingSummary `json:"summary"`
	Options []FareOption   `json:"options"`
}

type ConfirmParams struct {
	Toll                string `json:"toll"`
	PaymentMethod       string `json:"paymentMethod" binding:"required"`
	ReturnTrip          bool   `json:"returnTrip"`
	SpecialRequirements string `json:"specialRequirements"`
}

type ConfirmResponse struct {
	Success     bool   `json:"success"`
	PaymentID   string `json:"paymentId,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Silent      bool   `json:"silent"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Next        string `json:"next,omitempty"`
}
