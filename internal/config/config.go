package config

import (
	"authform/internal/constants"
	"authform/internal/form"
	"authform/internal/secrets"
	"embed"
	"os"
	"strings"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

const (
	defaultCloseRedirect   = "/"
	defaultFormIdleTimeout = 30 * time.Minute
)

// Config is the global config for the app router. Host and Port are needed for absolute URL generation.
type Config struct {
	Env                 string
	Host                string
	Port                string
	AuthBackend         string
	CognitoClientId     string
	CognitoClientSecret string
	CookieSecure        bool
	DatabaseUrl         string
	DisableLogColors    bool
	EnableStackTrace    bool
	CloseRedirect       string
	FormIdleTimeout     time.Duration
	StaticFS            embed.FS
	// Authenticator is built from AuthBackend by the caller, it needs a context and a db.
	Authenticator form.Authenticator
}

func NewConfigFromEnvironment(staticFS embed.FS) Config {
	env := os.Getenv("ENV")
	dbUrlKey := "DATABASE_URL"
	if strings.EqualFold(env, constants.EnvTest) {
		dbUrlKey = "TEST_DATABASE_URL"
	}

	s := secrets.New(dbUrlKey)

	authBackend := os.Getenv("AUTH_BACKEND")
	if authBackend == "" {
		authBackend = constants.AuthBackendCognito
	}

	closeRedirect := os.Getenv("CLOSE_REDIRECT")
	if closeRedirect == "" {
		closeRedirect = defaultCloseRedirect
	}

	return Config{
		Env:                 env,
		Host:                os.Getenv("HOST"),
		Port:                os.Getenv("PORT"),
		AuthBackend:         authBackend,
		CognitoClientId:     s.CognitoClientId(),
		CognitoClientSecret: s.CognitoClientSecret(),
		CookieSecure:        env == constants.EnvProduction,
		DatabaseUrl:         s.DatabaseUrl(),
		DisableLogColors:    env == constants.EnvProduction,
		EnableStackTrace:    env == constants.EnvDevelopment,
		CloseRedirect:       closeRedirect,
		FormIdleTimeout:     parseDuration("FORM_IDLE_TIMEOUT", defaultFormIdleTimeout),
		StaticFS:            staticFS,
	}
}

// NewTestConfig returns a config with memory session storage and no database.
func NewTestConfig() Config {
	return Config{
		Env:             constants.EnvTest,
		AuthBackend:     constants.AuthBackendPostgres,
		CloseRedirect:   defaultCloseRedirect,
		FormIdleTimeout: defaultFormIdleTimeout,
	}
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		fiberlog.Warnf("invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
