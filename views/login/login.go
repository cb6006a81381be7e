package login

import (
	"authform/internal/constants"
	"authform/internal/form"

	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const (
	CardID         = "login-form"
	StatusID       = "form-status"
	SubmitButtonID = "submit-button"
	EmailHintID    = "email-hint"
	PasswordHintID = "password-hint"

	// how soon a form with a call in flight asks for its next status
	pollDelay = "load delay:300ms"
)

// Page is the full document for a freshly mounted form.
func Page(p Props) gomponents.Node {
	return components.HTML5(components.HTML5Props{
		Title:    p.HeaderText(),
		Language: "en",
		Head: []gomponents.Node{
			Link(Rel("stylesheet"), Href("/static/app.css")),
			Script(Src("https://unpkg.com/htmx.org@1.9.10")),
		},
		Body: []gomponents.Node{
			Div(Class("overlay"), Card(p)),
		},
	})
}

// Card renders one form instance.
func Card(p Props) gomponents.Node {
	s := p.State
	errs := p.Errors()

	return Div(
		ID(CardID),
		Class("card"),
		Div(
			Class("card-header"),
			H3(gomponents.Text(p.HeaderText())),
			Button(
				Type("button"),
				Class("close"),
				Aria("label", "close"),
				hx.Post(p.Url("/close")),
				hx.Include("#"+CardID+" [name='"+constants.CsrfInputName+"']"),
				gomponents.Text("×"),
			),
		),
		Form(
			Class("card-content"),
			hx.Post(p.Url("/submit")),
			hx.Target("#"+StatusID),
			hx.Swap("outerHTML"),
			Input(Type("hidden"), Name(constants.CsrfInputName), Value(p.CSRFToken)),
			field(p, form.FieldEmail, "Email", "email", s.Email, hint(EmailHintID, errs.Email, false), true),
			field(p, form.FieldPassword, "Password", "password", s.Password, hint(PasswordHintID, errs.Password, false), false),
			gomponents.If(s.Mode == form.ModeRegister,
				field(p, form.FieldConfirmPassword, "Confirm password", "password", s.ConfirmPassword, nil, false),
			),
			gomponents.If(s.Mode == form.ModeLogin,
				Div(Class("link-row"), Button(Type("button"), Class("link"), gomponents.Text("Forgot password?"))),
			),
			modeToggle(p),
			Div(Class("submit-row"), submitButton(s.SubmitEnabled, false)),
			poller(p),
		),
	)
}

// Status is the response to a submit and to every poll while the call is in flight. It
// never touches the inputs: the poller replaces itself and the submit button and hints
// are swapped out of band.
func Status(p Props) gomponents.Node {
	errs := p.Errors()
	return gomponents.Group{
		poller(p),
		submitButton(p.State.SubmitEnabled, true),
		hint(EmailHintID, errs.Email, true),
		hint(PasswordHintID, errs.Password, true),
	}
}

// SubmitButton is swapped in on its own after every field edit.
func SubmitButton(enabled bool) gomponents.Node {
	return submitButton(enabled, false)
}

func submitButton(enabled, oob bool) gomponents.Node {
	return Button(
		ID(SubmitButtonID),
		Type("submit"),
		Class("primary"),
		gomponents.If(oob, hx.SwapOOB("true")),
		gomponents.If(!enabled, Disabled()),
		gomponents.Text("Login"),
	)
}

// poller asks for the status again until the call in flight has landed.
func poller(p Props) gomponents.Node {
	return Div(
		ID(StatusID),
		gomponents.If(p.State.InFlight, gomponents.Group{
			hx.Get(p.Url("/status")),
			hx.Trigger(pollDelay),
			hx.Swap("outerHTML"),
		}),
	)
}

func hint(id, text string, oob bool) gomponents.Node {
	return P(
		ID(id),
		Class("helper-text"),
		gomponents.If(oob, hx.SwapOOB("true")),
		gomponents.Text(text),
	)
}

func field(p Props, f form.Field, label, inputType, value string, hint gomponents.Node, autofocus bool) gomponents.Node {
	id := string(f)

	return Div(
		Class("field"),
		Label(For(id), gomponents.Text(label)),
		Input(
			ID(id),
			Name(id),
			Type(inputType),
			Value(value),
			Required(),
			gomponents.If(autofocus, AutoFocus()),
			hx.Post(p.FieldUrl(f)),
			hx.Trigger("input changed delay:150ms"),
			hx.Target("#"+SubmitButtonID),
			hx.Swap("outerHTML"),
		),
		hint,
	)
}

func modeToggle(p Props) gomponents.Node {
	target, text := form.ModeRegister, "Register"
	if p.State.Mode == form.ModeRegister {
		target, text = form.ModeLogin, "Already have an account?"
	}

	return Div(
		Class("link-row"),
		Button(
			Type("button"),
			Class("link"),
			hx.Post(p.ModeUrl(target)),
			hx.Target("#"+CardID),
			hx.Swap("outerHTML"),
			gomponents.Text(text),
		),
	)
}
