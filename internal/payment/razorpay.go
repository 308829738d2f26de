package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bitbucket.org/malama/ride-booking/internal/tools/client"
	"bitbucket.org/malama/ride-booking/internal/tools/requesting"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const razorpayURL = "https://api.razorpay.com"

var ErrorMissingCredentials = errors.New("razorpay credentials missing")

type orderRQ struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

type orderRS struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

type errorRS struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

type Razorpay struct {
	keyID         string
	keySecret     string
	options       *client.Options
	httpTransport http.RoundTripper
}

// Checkout registers an order for the amount. The order id is the payment
// reference the rider completes the checkout against.
func (r *Razorpay) Checkout(ctx context.Context, request Request, logger *zerolog.Logger) Outcome {
	if request.Amount <= 0 {
		return Failed(reasonInvalidAmount)
	}

	httpClient := &http.Client{
		Timeout: r.options.Timeout(),
		Transport: &requesting.InterceptorTransport{
			Transport: r.httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(logger, "razorpay"),
			},
		},
	}

	order, err := r.createOrder(ctx, httpClient, request)
	if err != nil {
		logger.Warn().Err(err).Msg("Razorpay order failed")
		return Failed(err.Error())
	}

	return Succeeded(order.Id)
}

func (r *Razorpay) createOrder(ctx context.Context, httpClient *http.Client, request Request) (orderRS, error) {
	body, _ := json.Marshal(r.requestBody(request))

	url := r.options.BaseURL(razorpayURL) + "/v1/orders"
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return orderRS{}, err
	}

	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("User-Agent", r.options.Name())
	httpRequest.SetBasicAuth(r.keyID, r.keySecret)

	rs, requestErr := requesting.RequestErrors(httpClient.Do(httpRequest))
	if rs != nil {
		defer rs.Body.Close()
	}

	if requestErr != nil {
		if requestErr.Kind == requesting.StatusError {
			return orderRS{}, errors.New(describeFailure(rs.Body, requestErr))
		}

		return orderRS{}, errors.New(reasonFailed)
	}

	bodyBytes, _ := io.ReadAll(rs.Body)

	var order orderRS
	if err := json.Unmarshal(bodyBytes, &order); err != nil || order.Id == "" {
		return orderRS{}, errors.New(reasonFailed)
	}

	return order, nil
}

func (r *Razorpay) requestBody(request Request) orderRQ {
	return orderRQ{
		// paise
		Amount:   request.Amount * 100,
		Currency: "INR",
		Receipt:  uuid.New().String(),
		Notes: map[string]string{
			"payee":       request.PayeeName,
			"description": request.Description,
			"name":        request.Prefill.Name,
			"contact":     request.Prefill.Contact,
			"email":       request.Prefill.Email,
		},
	}
}

func describeFailure(body io.Reader, requestErr *requesting.RequestError) string {
	bodyBytes, _ := io.ReadAll(body)

	var failure errorRS
	if err := json.Unmarshal(bodyBytes, &failure); err == nil && failure.Error.Description != "" {
		return failure.Error.Description
	}

	return requestErr.Message
}

func NewRazorpay(keyID string, keySecret string, optionFuncs ...client.OptionFunc) (*Razorpay, error) {
	if keyID == "" || keySecret == "" {
		return nil, ErrorMissingCredentials
	}

	return &Razorpay{
		keyID:         keyID,
		keySecret:     keySecret,
		options:       client.NewOptions(optionFuncs...),
		httpTransport: http.DefaultTransport,
	}, nil
}
