package tarkov

import (
	"errors"
	"fmt"
)

// Code is a protocol code reported in the "err" field of every response
// envelope. It is distinct from the HTTP status code.
type Code uint16

// Protocol codes with a known meaning
const (
	CodeSuccess              Code = 0
	CodeNotAuthorized        Code = 201
	CodeInvalidUserSelection Code = 205
)

// Login codes. These only carry meaning on the launcher endpoints.
const (
	CodeBadCredentials    Code = 205
	CodeTwoFactorRequired Code = 209
	CodeBadTwoFactorCode  Code = 211
	CodeCaptchaRequired   Code = 214
	CodeRateLimited       Code = 227
)

var (
	ErrTransport = errors.New("transport failure")
	ErrFormat    = errors.New("malformed response")
	ErrStatus    = errors.New("non-success response status")

	ErrNotAuthorized        = errors.New("not authorized or game profile not selected")
	ErrInvalidUserSelection = errors.New("invalid user id selected")
	ErrUnknownCode          = errors.New("unknown api error code")

	// ErrNotifierBroken is returned by NotifierConn.Next once an earlier
	// read has failed.
	ErrNotifierBroken = errors.New("notifier connection is broken")

	// ErrMissingPayload is returned when the envelope reports success but
	// carries no payload.
	ErrMissingPayload = errors.New("api returned no error but payload is missing")

	ErrLogin              = errors.New("login failed")
	ErrInvalidCredentials = errors.New("email, password and fingerprint are required")
	ErrBadCredentials     = errors.New("bad email or password")
	ErrTwoFactorRequired  = errors.New("hardware activation code required")
	ErrBadTwoFactorCode   = errors.New("bad hardware activation code")
	ErrCaptchaRequired    = errors.New("captcha required")
	ErrRateLimited        = errors.New("too many login attempts")
)

// TransportError reports a failure to send a request or receive its response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("send request to %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// FormatError reports a response body that could not be decompressed or
// parsed. Op is either "decompress" or "parse".
type FormatError struct {
	Op  string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s response: %v", e.Op, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// StatusError reports a non-200 HTTP status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-success response from api: %d", e.StatusCode)
}

func (e *StatusError) Is(target error) bool { return target == ErrStatus }

// ProtocolKind classifies a protocol code.
type ProtocolKind int

const (
	ProtocolSuccess ProtocolKind = iota
	ProtocolNotAuthorized
	ProtocolInvalidUserSelection
	ProtocolUnknownCode
)

func (k ProtocolKind) String() string {
	switch k {
	case ProtocolSuccess:
		return "success"
	case ProtocolNotAuthorized:
		return "not_authorized"
	case ProtocolInvalidUserSelection:
		return "invalid_user_selection"
	case ProtocolUnknownCode:
		return "unknown_code"
	default:
		return fmt.Sprintf("ProtocolKind(%d)", int(k))
	}
}

// extraKinds holds the codes that are only meaningful for some calls. A
// call opts in by listing the code in its extra set.
var extraKinds = map[Code]ProtocolKind{
	CodeInvalidUserSelection: ProtocolInvalidUserSelection,
}

// Classify maps a protocol code to its kind. 0 and 201 are meaningful for
// every call; other known codes only when listed in extra.
func Classify(code Code, extra ...Code) ProtocolKind {
	switch code {
	case CodeSuccess:
		return ProtocolSuccess
	case CodeNotAuthorized:
		return ProtocolNotAuthorized
	}
	kind, known := extraKinds[code]
	if !known {
		return ProtocolUnknownCode
	}
	for _, c := range extra {
		if c == code {
			return kind
		}
	}
	return ProtocolUnknownCode
}

// ProtocolError is a nonzero protocol code resolved to its kind.
type ProtocolError struct {
	Kind    ProtocolKind
	Code    Code
	Message string
}

func (e *ProtocolError) Error() string {
	var msg string
	switch e.Kind {
	case ProtocolNotAuthorized:
		msg = ErrNotAuthorized.Error()
	case ProtocolInvalidUserSelection:
		msg = ErrInvalidUserSelection.Error()
	default:
		msg = fmt.Sprintf("unidentified api error with error code: %d", e.Code)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *ProtocolError) Is(target error) bool {
	switch target {
	case ErrNotAuthorized:
		return e.Kind == ProtocolNotAuthorized
	case ErrInvalidUserSelection:
		return e.Kind == ProtocolInvalidUserSelection
	case ErrUnknownCode:
		return e.Kind == ProtocolUnknownCode
	}
	return false
}

// Resolve returns the envelope payload on success and the resolved
// protocol error otherwise.
func Resolve[T any](env *Envelope[T], extra ...Code) (*T, error) {
	kind := Classify(env.Code, extra...)
	if kind != ProtocolSuccess {
		return nil, &ProtocolError{Kind: kind, Code: env.Code, Message: env.Message}
	}
	if env.Data == nil {
		return nil, ErrMissingPayload
	}
	return env.Data, nil
}

// LoginReason identifies why the launcher rejected a login.
type LoginReason int

const (
	LoginBadCredentials LoginReason = iota + 1
	LoginTwoFactorRequired
	LoginBadTwoFactorCode
	LoginCaptchaRequired
	LoginRateLimited
)

var loginReasons = map[Code]LoginReason{
	CodeBadCredentials:    LoginBadCredentials,
	CodeTwoFactorRequired: LoginTwoFactorRequired,
	CodeBadTwoFactorCode:  LoginBadTwoFactorCode,
	CodeCaptchaRequired:   LoginCaptchaRequired,
	CodeRateLimited:       LoginRateLimited,
}

func (r LoginReason) sentinel() error {
	switch r {
	case LoginBadCredentials:
		return ErrBadCredentials
	case LoginTwoFactorRequired:
		return ErrTwoFactorRequired
	case LoginBadTwoFactorCode:
		return ErrBadTwoFactorCode
	case LoginCaptchaRequired:
		return ErrCaptchaRequired
	case LoginRateLimited:
		return ErrRateLimited
	}
	return ErrLogin
}

// LoginError is a launcher-reported login failure.
type LoginError struct {
	Reason  LoginReason
	Code    Code
	Message string
}

func (e *LoginError) Error() string {
	msg := "login api error: " + e.Reason.sentinel().Error()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *LoginError) Is(target error) bool {
	return target == ErrLogin || target == e.Reason.sentinel()
}

// resolveLogin resolves a launcher envelope. Login-specific codes become a
// *LoginError; everything else goes through the shared resolver.
func resolveLogin[T any](env *Envelope[T], allowed ...Code) (*T, error) {
	if env.Code != CodeSuccess {
		for _, c := range allowed {
			if c != env.Code {
				continue
			}
			if reason, ok := loginReasons[c]; ok {
				return nil, &LoginError{Reason: reason, Code: env.Code, Message: env.Message}
			}
		}
	}
	return Resolve(env)
}
