package errors

import (
	"encoding/json"
	"fmt"
	"time"
)

// Envelope is the uniform response wrapper used by every endpoint, for both
// success and failure payloads.
type Envelope struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
	Meta    Meta         `json:"meta"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// Meta carries response metadata shared by success and error envelopes
type Meta struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// ErrorOption is a functional option for configuring error envelopes
type ErrorOption func(*Envelope)

// WithDetails adds detail messages to the error envelope
func WithDetails(details ...string) ErrorOption {
	return func(e *Envelope) {
		e.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(e *Envelope) {
		e.Error.Message = message
	}
}

// NewSuccessEnvelope wraps handler output in the standard success shape
func NewSuccessEnvelope(data interface{}, requestID string) *Envelope {
	return &Envelope{
		Success: true,
		Data:    data,
		Meta: Meta{
			Timestamp: time.Now().UTC(),
			RequestID: requestID,
		},
	}
}

// NewErrorEnvelope creates a standardized error envelope with the given error
// code and request ID. Optional details can be added using functional options.
func NewErrorEnvelope(code ErrorCode, requestID string, opts ...ErrorOption) *Envelope {
	envelope := &Envelope{
		Success: false,
		Error: &ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
		},
		Meta: Meta{
			Timestamp: time.Now().UTC(),
			RequestID: requestID,
		},
	}

	for _, opt := range opts {
		opt(envelope)
	}

	return envelope
}

// NewValidationEnvelope creates a validation error envelope with
// field-specific error details. fieldErrors maps field names to messages.
func NewValidationEnvelope(fieldErrors map[string]string, requestID string) *Envelope {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}

	return NewErrorEnvelope(CodeValidation, requestID, WithDetails(details...))
}

// WrapInternalError wraps an internal error with a generic message so
// implementation details never reach the client. The original error is
// returned separately for server-side logging.
func WrapInternalError(err error, requestID string) (*Envelope, error) {
	return NewErrorEnvelope(CodeInternal, requestID), err
}

// ToJSON serializes the envelope to JSON bytes
func (e *Envelope) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// HTTPStatus returns the HTTP status code for the envelope's error code.
// Success envelopes have no intrinsic status; handlers choose 200/201/204.
func (e *Envelope) HTTPStatus() int {
	if e.Error == nil {
		return 200
	}
	return GetHTTPStatus(ErrorCode(e.Error.Code))
}

// IsClientError returns true if the envelope is a 4xx client error
func (e *Envelope) IsClientError() bool {
	status := e.HTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the envelope is a 5xx server error
func (e *Envelope) IsServerError() bool {
	return e.HTTPStatus() >= 500
}

// String returns a string representation of an error envelope
func (e *Envelope) String() string {
	if e.Error == nil {
		return fmt.Sprintf("success (request: %s)", e.Meta.RequestID)
	}
	return fmt.Sprintf("[%s] %s (request: %s)", e.Error.Code, e.Error.Message, e.Meta.RequestID)
}
