package form

import "context"

// Result is the outcome reported by an Authenticator. ResultNone means no attempt has
// landed since mount or since the last mode switch.
type Result int

const (
	ResultNone Result = iota
	ResultOk
	ResultUnknownEmail
	ResultBadPassword
	ResultUnavailable
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultOk:
		return "ok"
	case ResultUnknownEmail:
		return "unknown_email"
	case ResultBadPassword:
		return "bad_password"
	case ResultUnavailable:
		return "unavailable"
	default:
		return "unrecognized"
	}
}

// Authenticator checks credentials against an authentication service. It always resolves
// to a Result; service and transport failures are reported as ResultUnavailable.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) Result
}

// AuthenticatorFunc adapts a plain function to Authenticator.
type AuthenticatorFunc func(ctx context.Context, email, password string) Result

func (f AuthenticatorFunc) Authenticate(ctx context.Context, email, password string) Result {
	return f(ctx, email, password)
}

const (
	UnknownEmailMessage      = "Unknown email"
	IncorrectPasswordMessage = "Incorrect password"
)

// FieldErrors holds the inline hint for each field. Empty means no hint.
type FieldErrors struct {
	Email    string
	Password string
}

// ErrorsFor derives the inline field hints for a result. Results other than an unknown
// email or a bad password produce no hints.
func ErrorsFor(r Result) FieldErrors {
	switch r {
	case ResultUnknownEmail:
		return FieldErrors{Email: UnknownEmailMessage}
	case ResultBadPassword:
		return FieldErrors{Password: IncorrectPasswordMessage}
	default:
		return FieldErrors{}
	}
}
