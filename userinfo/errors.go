package userinfo

import "fmt"

// Error codes carried by Error. The two response-layer failures share one
// code; callers that need to tell them apart branch on Kind instead.
const (
	ErrorCodeTransportFailure = "transport_failure"
	ErrorCodeInvalidResponse  = "invalid_user_info_response"
)

// Kind identifies which stage of the UserInfo exchange failed.
type Kind int

const (
	// KindTransport - the request never produced a response (network,
	// DNS, TLS, timeout, cancellation)
	KindTransport Kind = iota + 1
	// KindMalformedSuccessBody - HTTP 200 but the body was not a JSON object
	KindMalformedSuccessBody
	// KindMalformedErrorBody - non-200 status and the error body could not
	// be parsed as an OAuth2 error object
	KindMalformedErrorBody
	// KindProviderError - non-200 status with a parseable OAuth2 error object
	KindProviderError
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindMalformedSuccessBody:
		return "malformed_success_body"
	case KindMalformedErrorBody:
		return "malformed_error_body"
	case KindProviderError:
		return "provider_error"
	default:
		return "unknown"
	}
}

// Error is the single failure representation produced by a Retriever. A call
// yields either a claims map or an *Error, never both.
type Error struct {
	Code        string
	Description string
	Kind        Kind
	cause       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Description)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newTransportError(cause error) *Error {
	return &Error{
		Code:        ErrorCodeTransportFailure,
		Description: fmt.Sprintf("An error occurred while sending the UserInfo Request: %s", cause.Error()),
		Kind:        KindTransport,
		cause:       cause,
	}
}

func newSuccessBodyError(cause error) *Error {
	return &Error{
		Code:        ErrorCodeInvalidResponse,
		Description: fmt.Sprintf("An error occurred reading the UserInfo Success response: %s", cause.Error()),
		Kind:        KindMalformedSuccessBody,
		cause:       cause,
	}
}

func newErrorBodyError(cause error) *Error {
	return &Error{
		Code:        ErrorCodeInvalidResponse,
		Description: fmt.Sprintf("An error occurred parsing the UserInfo Error response: %s", cause.Error()),
		Kind:        KindMalformedErrorBody,
		cause:       cause,
	}
}
