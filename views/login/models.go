package login

import (
	"authform/internal/form"

	"github.com/google/uuid"
)

// FieldEdit is the route of a single field edit.
type FieldEdit struct {
	ID    string `params:"id" validate:"required,uuid4"`
	Field string `params:"field" validate:"required,oneof=email password confirmPassword"`
}

// ModeSwitch is the route of a mode toggle.
type ModeSwitch struct {
	ID   string `params:"id" validate:"required,uuid4"`
	Mode string `params:"mode" validate:"required,oneof=login register"`
}

// FormRef is the route of every other per-form action.
type FormRef struct {
	ID string `params:"id" validate:"required,uuid4"`
}

// Props is everything the card needs to render one form instance.
type Props struct {
	ID        uuid.UUID
	CSRFToken string
	State     form.State
}

func (p Props) Errors() form.FieldErrors {
	return form.ErrorsFor(p.State.LastResult)
}

func (p Props) Url(suffix string) string {
	return "/forms/" + p.ID.String() + suffix
}

func (p Props) FieldUrl(f form.Field) string {
	return p.Url("/fields/" + string(f))
}

func (p Props) ModeUrl(m form.Mode) string {
	return p.Url("/mode/" + m.String())
}

func (p Props) HeaderText() string {
	if p.State.Mode == form.ModeRegister {
		return "Register"
	}
	return "Log in"
}
