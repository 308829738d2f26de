package booking

import (
	"strings"
	"time"

	"bitbucket.org/malama/ride-booking/internal/payment"
	"bitbucket.org/malama/ride-booking/internal/schema"
)

const PayeeName = "Malama Cabs"

type ContactInfo struct {
	Name string
	// Phone receives the ride updates on whatsapp
	Phone string
	Email string
}

func (c ContactInfo) Validate() schema.FieldErrors {
	bucket := schema.NewErrorsBucket()

	if strings.TrimSpace(c.Name) == "" {
		bucket.AddError(schema.NewRequiredError("name", "Please enter your name"))
	}

	if c.Email != "" && !strings.Contains(c.Email, "@") {
		bucket.AddError(schema.NewInvalidError("email", "Please enter a valid email"))
	}

	return bucket.Errors()
}

// Submission is the final snapshot of a booking. It only lives until it is
// handed over to the payment gateway.
type Submission struct {
	Trip                TripDescriptor
	Contact             ContactInfo
	Fare                FareQuote
	SpecialRequirements string
	ReturnTrip          bool
	PaymentMethod       payment.Method
}

type SubmissionDetails struct {
	Toll                TollOption
	PaymentMethod       payment.Method
	ReturnTrip          bool
	SpecialRequirements string
}

func NewSubmission(schedule Schedule, now time.Time, trip TripDescriptor, contact ContactInfo, details SubmissionDetails) (Submission, schema.FieldErrors) {
	bucket := schema.NewErrorsBucket()
	bucket.AddErrors(trip.Validate(schedule, now))
	bucket.AddErrors(contact.Validate())

	if !details.PaymentMethod.Valid() {
		bucket.AddError(schema.NewInvalidError("paymentMethod", "Choose online or cash payment"))
	}

	if !bucket.Empty() {
		return Submission{}, bucket.Errors()
	}

	return Submission{
		Trip:                trip,
		Contact:             contact,
		Fare:                Quote(trip.ServiceType, details.Toll),
		SpecialRequirements: strings.TrimSpace(details.SpecialRequirements),
		ReturnTrip:          details.ReturnTrip,
		PaymentMethod:       details.PaymentMethod,
	}, nil
}

func (s Submission) PaymentRequest() payment.Request {
	return payment.Request{
		Amount:      s.Fare.Amount,
		PayeeName:   PayeeName,
		Description: s.Fare.Description(),
		Prefill: payment.Prefill{
			Name:    s.Contact.Name,
			Email:   s.Contact.Email,
			Contact: s.Contact.Phone,
		},
	}
}
