package app

import (
	"authform/internal/config"
	"authform/internal/constants"
	"authform/internal/registry"
	"authform/internal/view"
	errorviews "authform/views/errors"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/postgres/v3"
)

const sweepInterval = time.Minute

func New(config *config.Config) *fiber.App {
	fiberlog.Debugf("Starting app: env=%q auth=%q", config.Env, config.AuthBackend)

	app := fiber.New(fiber.Config{
		AppName:      "AuthForm 0.1.0",
		ErrorHandler: errorHandler,
	})

	sessionConfig := session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:authform_session_id",
		CookieSecure:   config.CookieSecure,
		CookieHTTPOnly: true,
	}
	if config.DatabaseUrl != "" {
		sessionConfig.Storage = postgres.New(postgres.Config{
			ConnectionURI: config.DatabaseUrl,
			Table:         "authform_sessions",
		})
	}
	sessionStore := session.New(sessionConfig)

	forms := registry.New(config.Authenticator, config.FormIdleTimeout)
	stopSweep := make(chan struct{})
	go forms.Run(sweepInterval, stopSweep)
	app.Hooks().OnShutdown(func() error {
		close(stopSweep)
		return nil
	})

	app.Use(logger.New(logger.Config{
		DisableColors: config.DisableLogColors,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: config.EnableStackTrace,
	}))
	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(favicon.New())
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(config.StaticFS),
		PathPrefix: "static",
	}))

	// Combine two CSRF extractors: use form field as default
	// so forms work without JS, with header as fallback.
	csrfFromForm := csrf.CsrfFromForm(constants.CsrfInputName)
	csrfFromHeader := csrf.CsrfFromHeader(constants.CsrfHeaderName)

	app.Use(csrf.New(csrf.Config{
		CookieSecure:   config.CookieSecure,
		CookieHTTPOnly: true,
		Session:        sessionStore,
		Extractor: func(c *fiber.Ctx) (string, error) {
			token, err := csrfFromForm(c)
			if err == nil {
				return token, nil
			}

			if errors.Is(err, csrf.ErrMissingForm) {
				return csrfFromHeader(c)
			}

			// unexpected programmer error
			panic(err)
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			fiberlog.Error("CSRF error: ", err.Error())
			return view.RenderNode(c, fiber.StatusForbidden,
				errorviews.GenericError(fiber.StatusForbidden, "Forbidden"))
		},
		ContextKey: constants.CsrfTokenContextKey,
		CookieName: "authform_csrf",
	}))

	app.Use(SetOwner(sessionStore))

	handlers := FormHandlers{
		forms:         forms,
		closeRedirect: config.CloseRedirect,
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login", fiber.StatusFound)
	})
	app.Get("/login", handlers.Mount)

	f := app.Group("/forms/:id")
	f.Get("", handlers.Show)
	f.Get("/status", handlers.Status)
	f.Post("/fields/:field", handlers.EditField)
	f.Post("/mode/:mode", handlers.SwitchMode)
	f.Post("/submit", handlers.Submit)
	f.Post("/close", handlers.Close)

	return app
}
