package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(t *testing.T, s State, events ...Event) State {
	t.Helper()
	for _, ev := range events {
		var err error
		s, err = Reduce(s, ev)
		require.NoError(t, err, "%T", ev)
	}
	return s
}

func TestSubmitEnabledTracksValidity(t *testing.T) {
	edits := []Event{
		EmailChanged{Value: "a"},
		PasswordChanged{Value: "x"},
		EmailChanged{Value: "a@b"},
		EmailChanged{Value: "a@b.com"},
		ConfirmPasswordChanged{Value: "different"},
		PasswordChanged{Value: ""},
		PasswordChanged{Value: "secret"},
		EmailChanged{Value: "A@B.COM"},
		EmailChanged{Value: ""},
	}

	var s State
	for _, ev := range edits {
		s = apply(t, s, ev)
		assert.Equal(t, IsValid(s.Email, s.Password) && !s.InFlight, s.SubmitEnabled, "after %#v", ev)
	}
}

func TestEditsDoNotTouchLastResult(t *testing.T) {
	s := State{LastResult: ResultBadPassword}
	s = apply(t, s, EmailChanged{Value: "a@b.com"}, PasswordChanged{Value: "y"})
	assert.Equal(t, ResultBadPassword, s.LastResult)
}

func TestEditWhileInFlightKeepsSubmitDisabled(t *testing.T) {
	s := apply(t, State{}, EmailChanged{Value: "a@b.com"}, PasswordChanged{Value: "x"}, Submit{})
	s = apply(t, s, PasswordChanged{Value: "y"})
	assert.True(t, s.InFlight)
	assert.False(t, s.SubmitEnabled)
	assert.Equal(t, "y", s.Password)
}

func TestValidCredentialsEnableSubmit(t *testing.T) {
	s := apply(t, State{}, EmailChanged{Value: "a@b.com"}, PasswordChanged{Value: "x"})
	assert.Equal(t, ModeLogin, s.Mode)
	assert.True(t, s.SubmitEnabled)
}

func TestSubmitLifecycleUnknownEmail(t *testing.T) {
	s := apply(t, State{}, EmailChanged{Value: "a@b.com"}, PasswordChanged{Value: "x"})

	s = apply(t, s, Submit{})
	assert.False(t, s.SubmitEnabled)
	assert.True(t, s.InFlight)

	s = apply(t, s, SubmitCompleted{Result: ResultUnknownEmail})
	assert.Equal(t, ResultUnknownEmail, s.LastResult)
	assert.Equal(t, "Unknown email", ErrorsFor(s.LastResult).Email)
	assert.Empty(t, ErrorsFor(s.LastResult).Password)
	assert.True(t, s.SubmitEnabled)
	assert.False(t, s.InFlight)
}

func TestModeRoundTripClearsResult(t *testing.T) {
	start := State{Email: "a@b.com", Password: "x", SubmitEnabled: true, LastResult: ResultBadPassword}

	s := apply(t, start, SwitchToRegister{})
	assert.Equal(t, ModeRegister, s.Mode)
	assert.Equal(t, ResultNone, s.LastResult)
	assert.Equal(t, "a@b.com", s.Email)
	assert.Equal(t, "x", s.Password)

	s.LastResult = ResultUnknownEmail
	s = apply(t, s, SwitchToLogin{})
	assert.Equal(t, ModeLogin, s.Mode)
	assert.Equal(t, ResultNone, s.LastResult)
	assert.Equal(t, "a@b.com", s.Email)
	assert.Equal(t, "x", s.Password)
	assert.True(t, s.SubmitEnabled)
}

func TestRejectedSubmitLeavesStateUnchanged(t *testing.T) {
	start := apply(t, State{}, EmailChanged{Value: "not-an-email"}, PasswordChanged{Value: "x"})
	require.False(t, start.SubmitEnabled)

	s, err := Reduce(start, Submit{})
	assert.ErrorIs(t, err, ErrSubmitDisabled)
	assert.Equal(t, start, s)
}

func TestSwitchToRegisterIsIdempotent(t *testing.T) {
	once := apply(t, State{LastResult: ResultOk}, SwitchToRegister{})
	twice := apply(t, once, SwitchToRegister{})
	assert.Equal(t, once, twice)

	// a result landing while in register mode is not cleared by another switch
	withResult := once
	withResult.LastResult = ResultBadPassword
	assert.Equal(t, withResult, apply(t, withResult, SwitchToRegister{}))
}

func TestSwitchToLoginInLoginModeIsNoop(t *testing.T) {
	s := State{LastResult: ResultBadPassword}
	assert.Equal(t, s, apply(t, s, SwitchToLogin{}))
}

func TestSubmitCompletedReenablesUnconditionally(t *testing.T) {
	s := apply(t, State{}, EmailChanged{Value: "a@b.com"}, PasswordChanged{Value: "x"}, Submit{})
	s = apply(t, s, PasswordChanged{Value: ""})
	s = apply(t, s, SubmitCompleted{Result: ResultOk})
	assert.True(t, s.SubmitEnabled)
	assert.False(t, IsValid(s.Email, s.Password))
}

func TestSubmitCompletedWithoutCall(t *testing.T) {
	_, err := Reduce(State{}, SubmitCompleted{Result: ResultOk})
	assert.ErrorIs(t, err, ErrNotInFlight)
}

func TestResultLandsAfterModeSwitch(t *testing.T) {
	s := apply(t, State{}, EmailChanged{Value: "a@b.com"}, PasswordChanged{Value: "x"}, Submit{}, SwitchToRegister{})
	s = apply(t, s, SubmitCompleted{Result: ResultBadPassword})
	assert.Equal(t, ModeRegister, s.Mode)
	assert.Equal(t, ResultBadPassword, s.LastResult)
}

func TestErrorsFor(t *testing.T) {
	assert.Equal(t, FieldErrors{Email: "Unknown email"}, ErrorsFor(ResultUnknownEmail))
	assert.Equal(t, FieldErrors{Password: "Incorrect password"}, ErrorsFor(ResultBadPassword))
	for _, r := range []Result{ResultNone, ResultOk, ResultUnavailable, Result(42)} {
		assert.Equal(t, FieldErrors{}, ErrorsFor(r), r.String())
	}
}

func TestEditEvent(t *testing.T) {
	ev, ok := EditEvent(FieldConfirmPassword, "z")
	require.True(t, ok)
	assert.Equal(t, ConfirmPasswordChanged{Value: "z"}, ev)

	_, ok = EditEvent(Field("mode"), "z")
	assert.False(t, ok)
}
