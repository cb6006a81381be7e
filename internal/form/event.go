package form

// Event is one user or collaborator action applied to a State.
type Event interface {
	event()
}

type EmailChanged struct{ Value string }

type PasswordChanged struct{ Value string }

type ConfirmPasswordChanged struct{ Value string }

type SwitchToRegister struct{}

type SwitchToLogin struct{}

type Submit struct{}

// SubmitCompleted carries the result of the outstanding authentication call.
type SubmitCompleted struct{ Result Result }

func (EmailChanged) event()           {}
func (PasswordChanged) event()        {}
func (ConfirmPasswordChanged) event() {}
func (SwitchToRegister) event()       {}
func (SwitchToLogin) event()          {}
func (Submit) event()                 {}
func (SubmitCompleted) event()        {}

// Field names a text input. The values double as the input names and route segments.
type Field string

const (
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// EditEvent returns the edit event for a field.
func EditEvent(f Field, value string) (Event, bool) {
	switch f {
	case FieldEmail:
		return EmailChanged{Value: value}, true
	case FieldPassword:
		return PasswordChanged{Value: value}, true
	case FieldConfirmPassword:
		return ConfirmPasswordChanged{Value: value}, true
	}
	return nil, false
}
