// Package errx defines the error taxonomy shared by every SDK package.
//
// Callers are expected to branch on the error kind (for example, to show a
// different message for wrong credentials than for a dead network), so each
// failure mode gets a stable Kind rather than a bare fmt.Errorf. Errors
// created here support errors.Is against the predefined kind values and
// errors.Unwrap for transport causes.
package errx

import (
	"fmt"
)

// Kind identifies a failure class of the campus protocol.
type Kind int

const (
	// KindNetwork is a transport-level failure. Never retried by the SDK.
	KindNetwork Kind = iota + 1

	// KindInvalidResponse means the response lacked an expected structural
	// element (body, status line, content type).
	KindInvalidResponse

	// KindLoginFailed means SSO or downstream login was rejected for a
	// reason other than bad credentials (missing token, missing redirect,
	// server error).
	KindLoginFailed

	// KindInvalidCredentials is the heuristically detected wrong
	// identifier/secret case: the downstream login endpoint answers 200
	// either way, an empty subject id is the only available signal.
	KindInvalidCredentials

	// KindNotLoggedIn means an operation requiring an established token ran
	// before login completed or after logout cleared it.
	KindNotLoggedIn

	// KindTooManyRedirects means the redirect walker hit its depth bound.
	KindTooManyRedirects

	// KindDecoding means a response body did not match the expected
	// envelope or field shape.
	KindDecoding

	// KindMissingData means a required downstream field was absent.
	KindMissingData
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network_error"
	case KindInvalidResponse:
		return "invalid_response"
	case KindLoginFailed:
		return "login_failed"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindNotLoggedIn:
		return "not_logged_in"
	case KindTooManyRedirects:
		return "too_many_redirects"
	case KindDecoding:
		return "decoding_error"
	case KindMissingData:
		return "missing_data"
	default:
		return "unknown"
	}
}

// Error is a classified SDK error. Description is human-readable context,
// Err carries the underlying cause when one exists.
type Error struct {
	Kind        Kind
	Description string
	Err         error
}

func (e *Error) Error() string {
	switch {
	case e.Description != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Description, e.Err)
	case e.Description != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Description)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same Kind, so callers can write
// errors.Is(err, errx.ErrInvalidCredentials) without caring about the
// description attached at the failure site.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Predefined values for the argument-free kinds. Use these as errors.Is
// targets; the constructors below attach context at the failure site.
var (
	ErrInvalidResponse    = &Error{Kind: KindInvalidResponse}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrNotLoggedIn        = &Error{Kind: KindNotLoggedIn}
	ErrTooManyRedirects   = &Error{Kind: KindTooManyRedirects}
	ErrNetwork            = &Error{Kind: KindNetwork}
	ErrLoginFailed        = &Error{Kind: KindLoginFailed}
	ErrDecoding           = &Error{Kind: KindDecoding}
	ErrMissingData        = &Error{Kind: KindMissingData}
)

// Network wraps a transport failure.
func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

// LoginFailed reports a rejected login with the reason observed on the wire.
func LoginFailed(reason string) *Error {
	return &Error{Kind: KindLoginFailed, Description: reason}
}

// LoginFailedStatus reports a rejected login from an unexpected HTTP status.
func LoginFailedStatus(status int) *Error {
	return &Error{Kind: KindLoginFailed, Description: fmt.Sprintf("unexpected status %d", status)}
}

// InvalidResponse reports a structurally broken response.
func InvalidResponse(desc string) *Error {
	return &Error{Kind: KindInvalidResponse, Description: desc}
}

// Decoding wraps a JSON or envelope decode failure.
func Decoding(err error) *Error {
	return &Error{Kind: KindDecoding, Err: err}
}

// MissingData reports an absent required downstream field.
func MissingData(desc string) *Error {
	return &Error{Kind: KindMissingData, Description: desc}
}

// TooManyRedirects reports an exceeded redirect depth bound.
func TooManyRedirects(depth int) *Error {
	return &Error{Kind: KindTooManyRedirects, Description: fmt.Sprintf("exceeded %d redirects", depth)}
}
