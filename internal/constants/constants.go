package constants

const (
	EnvDevelopment      = "development"
	EnvProduction       = "production"
	EnvTest             = "test"
	CsrfInputName       = "_csrf"
	CsrfHeaderName      = "X-CSRF-Token"
	CsrfTokenContextKey = "csrf.token"
	AuthBackendCognito  = "cognito"
	AuthBackendPostgres = "postgres"
)
