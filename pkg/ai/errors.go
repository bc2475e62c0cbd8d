package ai

import "errors"

var (
	ErrUnreachable  = errors.New("could not reach the improvement service")
	ErrNoUsableText = errors.New("the service returned no usable text")
)

// ValidationError is returned before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ServiceError is a non-success answer from the improvement service. Message
// is the service's own error text when it sent one, else the status line.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// TransportError wraps a network failure. Its message is always the
// displayable ErrUnreachable text; the cause stays reachable via errors.As.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return ErrUnreachable.Error() }

func (e *TransportError) Unwrap() []error { return []error{ErrUnreachable, e.Err} }
