package app

import (
	"authform/internal/form"
	"authform/internal/registry"
	"authform/internal/view"
	errorviews "authform/views/errors"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

func errorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := http.StatusInternalServerError
	msg := err.Error()

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	// Unknown, closed and foreign forms all look the same
	if errors.Is(err, registry.ErrNotFound) {
		code = http.StatusNotFound
	}

	// A submit while disabled is a no-op for the form, htmx leaves the page alone on 4xx
	if errors.Is(err, form.ErrSubmitDisabled) {
		code = http.StatusConflict
	}

	// Parameter decoding errors indicate user input did not match the route, i.e. not found (but may also be bugs)
	if strings.HasPrefix(msg, "failed to decode:") {
		code = http.StatusNotFound
	}

	if code == http.StatusNotFound {
		return view.RenderNode(c, code, errorviews.Error404())
	}

	if code < http.StatusInternalServerError {
		return view.RenderNode(c, code, errorviews.GenericError(code, msg))
	}

	// Log 500 errors and also render a default template
	fiberlog.Error(msg)
	return view.RenderNode(c, code, errorviews.Error500())
}
