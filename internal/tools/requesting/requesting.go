package requesting

import (
	"fmt"
	"net/http"
	"os"
)

type ErrorKind string

const (
	TimeoutError    ErrorKind = "TIMEOUT"
	ConnectionError ErrorKind = "CONNECTION"
	StatusError     ErrorKind = "STATUS"
)

type RequestError struct {
	Kind    ErrorKind
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

// RequestErrors classifies the result of client.Do. On a non 2xx status the
// response is returned alongside the error so the caller can read the body.
func RequestErrors(response *http.Response, err error) (*http.Response, *RequestError) {
	if err != nil {
		if os.IsTimeout(err) {
			return nil, &RequestError{Kind: TimeoutError, Message: err.Error()}
		}

		return nil, &RequestError{Kind: ConnectionError, Message: err.Error()}
	}

	if !isValidResponse(response.StatusCode) {
		return response, &RequestError{
			Kind:    StatusError,
			Message: fmt.Sprintf("remote returned status code %d", response.StatusCode),
		}
	}

	return response, nil
}
