package auth

import (
	"context"
	"database/sql"
	"fmt"

	"authform/internal/config"
	"authform/internal/constants"
	"authform/internal/form"
	"authform/internal/repo"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// New builds the Authenticator selected by cfg.AuthBackend. db is only used by the
// postgres backend and may be nil otherwise.
func New(ctx context.Context, cfg *config.Config, db *sql.DB) (form.Authenticator, error) {
	switch cfg.AuthBackend {
	case constants.AuthBackendCognito:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading aws config: %w", err)
		}
		return &Cognito{
			Client:       cognito.NewFromConfig(awsCfg),
			ClientId:     cfg.CognitoClientId,
			ClientSecret: cfg.CognitoClientSecret,
		}, nil

	case constants.AuthBackendPostgres:
		if db == nil {
			return nil, fmt.Errorf("auth backend %q needs DATABASE_URL", cfg.AuthBackend)
		}
		return &Accounts{Repo: repo.New(db)}, nil
	}

	return nil, fmt.Errorf("unknown auth backend %q", cfg.AuthBackend)
}
