package app

import (
	"authform/components"
	"context"
	"authform/internal/form"
	"authform/internal/registry"
	"authform/internal/view"
	loginviews "authform/views/login"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"maragu.dev/gomponents"
)

// validate is shared so struct metadata is cached across requests.
var validate = validator.New()

// FormHandlers turn htmx requests into form events. Each handler dispatches at most one
// event to the instance's controller.
type FormHandlers struct {
	forms         *registry.Registry
	closeRedirect string
}

// Mount creates a new form instance and renders the whole page.
func (h *FormHandlers) Mount(c *fiber.Ctx) error {
	inst := h.forms.Mount(owner(c))
	state := inst.Controller.State()
	return view.RenderFunc(c, fiber.StatusOK, func(ctx context.Context) gomponents.Node {
		return loginviews.Page(props(ctx, inst.ID, state))
	})
}

func (h *FormHandlers) Show(c *fiber.Ctx) error {
	var params loginviews.FormRef
	inst, err := h.instance(c, &params, &params.ID)
	if err != nil {
		return err
	}

	return h.renderCard(c, inst.ID, inst.Controller.State())
}

// Status renders only the parts of the form a finished call can change. The card polls
// it while a call is in flight so that inputs being edited are left alone.
func (h *FormHandlers) Status(c *fiber.Ctx) error {
	var params loginviews.FormRef
	inst, err := h.instance(c, &params, &params.ID)
	if err != nil {
		return err
	}

	return h.renderStatus(c, inst.ID, inst.Controller.State())
}

func (h *FormHandlers) EditField(c *fiber.Ctx) error {
	var params loginviews.FieldEdit
	inst, err := h.instance(c, &params, &params.ID)
	if err != nil {
		return err
	}

	ev, ok := form.EditEvent(form.Field(params.Field), c.FormValue(params.Field))
	if !ok {
		return fiber.ErrNotFound
	}

	state, err := inst.Controller.Dispatch(ev)
	if err != nil {
		return err
	}

	return view.RenderNode(c, fiber.StatusOK, loginviews.SubmitButton(state.SubmitEnabled))
}

func (h *FormHandlers) SwitchMode(c *fiber.Ctx) error {
	var params loginviews.ModeSwitch
	inst, err := h.instance(c, &params, &params.ID)
	if err != nil {
		return err
	}

	mode, ok := form.ParseMode(params.Mode)
	if !ok {
		return fiber.ErrNotFound
	}

	var ev form.Event = form.SwitchToLogin{}
	if mode == form.ModeRegister {
		ev = form.SwitchToRegister{}
	}

	state, err := inst.Controller.Dispatch(ev)
	if err != nil {
		return err
	}

	return h.renderCard(c, inst.ID, state)
}

// Submit starts the authentication call. A rejected submit returns form.ErrSubmitDisabled
// and nothing changes.
func (h *FormHandlers) Submit(c *fiber.Ctx) error {
	var params loginviews.FormRef
	inst, err := h.instance(c, &params, &params.ID)
	if err != nil {
		return err
	}

	state, err := inst.Controller.Dispatch(form.Submit{})
	if err != nil {
		return err
	}

	fiberlog.Debug("submitted form ", inst.ID)
	return h.renderStatus(c, inst.ID, state)
}

// Close is the host's closeForm: the instance is dropped and the browser sent on.
func (h *FormHandlers) Close(c *fiber.Ctx) error {
	var params loginviews.FormRef
	inst, err := h.instance(c, &params, &params.ID)
	if err != nil {
		return err
	}

	if err := h.forms.Close(inst.ID, owner(c)); err != nil {
		return err
	}

	if c.Get("HX-Request") == "true" {
		c.Set("HX-Location", h.closeRedirect)
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect(h.closeRedirect, fiber.StatusFound)
}

// instance parses and validates the route params into params and returns the form
// instance named by *id.
func (h *FormHandlers) instance(c *fiber.Ctx, params any, id *string) (*registry.Instance, error) {
	if err := c.ParamsParser(params); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(params); err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	formID, err := uuid.Parse(*id)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return h.forms.Get(formID, owner(c))
}

func (h *FormHandlers) renderCard(c *fiber.Ctx, id uuid.UUID, state form.State) error {
	return view.RenderFunc(c, fiber.StatusOK, func(ctx context.Context) gomponents.Node {
		return loginviews.Card(props(ctx, id, state))
	})
}

func (h *FormHandlers) renderStatus(c *fiber.Ctx, id uuid.UUID, state form.State) error {
	return view.RenderFunc(c, fiber.StatusOK, func(ctx context.Context) gomponents.Node {
		return loginviews.Status(props(ctx, id, state))
	})
}

func props(ctx context.Context, id uuid.UUID, state form.State) loginviews.Props {
	return loginviews.Props{
		ID:        id,
		CSRFToken: components.GetCsrfToken(ctx),
		State:     state,
	}
}
