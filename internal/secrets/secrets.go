package secrets

import (
	"os"
)

type Secrets interface {
	DatabaseUrl() string
	CognitoClientId() string
	CognitoClientSecret() string
}

// New reads secrets from the environment. databaseUrlKey lets tests point at a separate
// database.
func New(databaseUrlKey string) Secrets {
	return &secrets{
		databaseUrl:         os.Getenv(databaseUrlKey),
		cognitoClientId:     os.Getenv("COGNITO_CLIENT_ID"),
		cognitoClientSecret: os.Getenv("COGNITO_CLIENT_SECRET"),
	}
}

type secrets struct {
	databaseUrl         string
	cognitoClientId     string
	cognitoClientSecret string
}

func (s secrets) DatabaseUrl() string {
	return s.databaseUrl
}

func (s secrets) CognitoClientId() string {
	return s.cognitoClientId
}

func (s secrets) CognitoClientSecret() string {
	return s.cognitoClientSecret
}
