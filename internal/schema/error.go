package schema

type FieldErrorCode string

const (
	RequiredError FieldErrorCode = "REQUIRED"
	InvalidError  FieldErrorCode = "INVALID"
	TooEarlyError FieldErrorCode = "TOO_EARLY"
)

// FieldError is an inline validation message bound to one input of a screen.
type FieldError struct {
	Field   string         `json:"field"`
	Code    FieldErrorCode `json:"code"`
	Message string         `json:"message"`
}

type FieldErrors []FieldError

type ErrorResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  *FieldErrors `json:"errors,omitempty"`
}

type errorsBucket struct {
	errors FieldErrors
}

func NewErrorsBucket() errorsBucket {
	return errorsBucket{
		errors: FieldErrors{},
	}
}

func (e *errorsBucket) AddErrors(errors FieldErrors) {
	e.errors = append(e.errors, errors...)
}

func (e *errorsBucket) AddError(err FieldError) {
	e.errors = append(e.errors, err)
}

func (e *errorsBucket) Errors() FieldErrors {
	return e.errors
}

func (e *errorsBucket) Empty() bool {
	return len(e.errors) == 0
}

func NewRequiredError(field string, msg string) FieldError {
	return FieldError{
		Field:   field,
		Code:    RequiredError,
		Message: msg,
	}
}

func NewInvalidError(field string, msg string) FieldError {
	return FieldError{
		Field:   field,
		Code:    InvalidError,
		Message: msg,
	}
}

func NewTooEarlyError(field string, msg string) FieldError {
	return FieldError{
		Field:   field,
		Code:    TooEarlyError,
		Message: msg,
	}
}
