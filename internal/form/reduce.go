package form

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmitDisabled is returned for a Submit while the submit action is disabled.
	ErrSubmitDisabled = errors.New("submit is disabled")
	// ErrNotInFlight is returned for a SubmitCompleted with no outstanding call.
	ErrNotInFlight = errors.New("no authentication call in flight")
)

// Reduce applies ev to s and returns the next state. On error the returned state is s.
func Reduce(s State, ev Event) (State, error) {
	switch ev := ev.(type) {
	case EmailChanged:
		s.Email = ev.Value
		return revalidate(s), nil
	case PasswordChanged:
		s.Password = ev.Value
		return revalidate(s), nil
	case ConfirmPasswordChanged:
		s.ConfirmPassword = ev.Value
		return revalidate(s), nil

	case SwitchToRegister:
		if s.Mode != ModeLogin {
			return s, nil
		}
		s.Mode = ModeRegister
		s.LastResult = ResultNone
		return s, nil
	case SwitchToLogin:
		if s.Mode != ModeRegister {
			return s, nil
		}
		s.Mode = ModeLogin
		s.LastResult = ResultNone
		return s, nil

	case Submit:
		if !s.SubmitEnabled {
			return s, ErrSubmitDisabled
		}
		s.InFlight = true
		s.SubmitEnabled = false
		return s, nil
	case SubmitCompleted:
		if !s.InFlight {
			return s, ErrNotInFlight
		}
		s.LastResult = ev.Result
		s.InFlight = false
		// re-enabled regardless of the current field values
		s.SubmitEnabled = true
		return s, nil
	}
	return s, fmt.Errorf("unknown event %T", ev)
}

func revalidate(s State) State {
	s.SubmitEnabled = IsValid(s.Email, s.Password) && !s.InFlight
	return s
}
