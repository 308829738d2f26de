package payment

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

type Method string

const (
	MethodOnline Method = "online"
	MethodCash   Method = "cash"
)

func (m Method) Valid() bool {
	return m == MethodOnline || m == MethodCash
}

// ReasonCancelled is reported when the rider closes the checkout. It is not
// shown as a failure.
const ReasonCancelled = "Payment cancelled by user"

const (
	reasonFailed        = "Payment failed"
	reasonInvalidAmount = "Invalid payment amount"
)

var ErrorUnknownMethod = errors.New("unknown payment method")

type Prefill struct {
	Name    string
	Email   string
	Contact string
}

type Request struct {
	// Amount in rupees
	Amount      int64
	PayeeName   string
	Description string
	Prefill     Prefill
}

type Outcome struct {
	Success   bool
	PaymentID string
	Reason    string
}

// Silent reports failures the rider caused and does not need to be alerted about.
func (o Outcome) Silent() bool {
	return !o.Success && o.Reason == ReasonCancelled
}

func Succeeded(paymentID string) Outcome {
	return Outcome{
		Success:   true,
		PaymentID: paymentID,
	}
}

func Failed(reason string) Outcome {
	if reason == "" {
		reason = reasonFailed
	}

	return Outcome{
		Reason: reason,
	}
}

type Gateway interface {
	Checkout(context.Context, Request, *zerolog.Logger) Outcome
}

type cash struct{}

const CashPaymentID = "CASH"

func (c *cash) Checkout(ctx context.Context, request Request, logger *zerolog.Logger) Outcome {
	logger.Info().
		Int64("amount", request.Amount).
		Msg("Cash booking accepted")

	return Succeeded(CashPaymentID)
}

type Factory struct {
	newOnline func() (Gateway, error)
	gateways  map[Method]Gateway
	sync.Mutex
}

// Gateway resolves the checkout of a payment method, creating it on first use.
func (f *Factory) Gateway(method Method) (Gateway, error) {
	f.Lock()
	defer f.Unlock()

	_, ok := f.gateways[method]

	if !ok {
		switch method {
		case MethodOnline:
			gateway, err := f.newOnline()
			if err != nil {
				return nil, err
			}
			f.gateways[method] = gateway
		case MethodCash:
			f.gateways[method] = &cash{}
		default:
			return nil, ErrorUnknownMethod
		}
	}

	return f.gateways[method], nil
}

func NewFactory(newOnline func() (Gateway, error)) *Factory {
	return &Factory{
		newOnline: newOnline,
		gateways:  make(map[Method]Gateway),
	}
}
