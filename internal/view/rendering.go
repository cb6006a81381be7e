package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"maragu.dev/gomponents"
)

func RenderComponent(c *fiber.Ctx, status int, component templ.Component) error {
	c.Status(status).Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Context(), c)
}

// RenderNode renders a gomponents node through the templ pipeline.
func RenderNode(c *fiber.Ctx, status int, node gomponents.Node) error {
	return RenderComponent(c, status, Adapt(node))
}

// RenderFunc is RenderNode for views that need the request context, such as the csrf
// token the middleware left among the request values.
func RenderFunc(c *fiber.Ctx, status int, build func(ctx context.Context) gomponents.Node) error {
	return RenderComponent(c, status, Contextual(build))
}

// Adapt wraps a gomponents node as a templ.Component.
func Adapt(node gomponents.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// Contextual builds the node at render time from the context templ renders with.
func Contextual(build func(ctx context.Context) gomponents.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}
