package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"authform/internal/form"
	"github.com/aws/aws-sdk-go-v2/aws"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// CognitoAPI is the subset of the Cognito client used for sign-in.
type CognitoAPI interface {
	InitiateAuth(ctx context.Context, params *cognito.InitiateAuthInput, optFns ...func(*cognito.Options)) (*cognito.InitiateAuthOutput, error)
}

// Cognito authenticates against a Cognito user pool app client with USER_PASSWORD_AUTH.
type Cognito struct {
	Client       CognitoAPI
	ClientId     string
	ClientSecret string
}

var _ form.Authenticator = (*Cognito)(nil)

func (c *Cognito) Authenticate(ctx context.Context, email, password string) form.Result {
	params := map[string]string{
		"USERNAME": email,
		"PASSWORD": password,
	}
	if c.ClientSecret != "" {
		params["SECRET_HASH"] = secretHash(email, c.ClientId, c.ClientSecret)
	}

	_, err := c.Client.InitiateAuth(ctx, &cognito.InitiateAuthInput{
		AuthFlow:       types.AuthFlowTypeUserPasswordAuth,
		ClientId:       aws.String(c.ClientId),
		AuthParameters: params,
	})
	return cognitoResult(err)
}

func cognitoResult(err error) form.Result {
	if err == nil {
		return form.ResultOk
	}

	var notFound *types.UserNotFoundException
	if errors.As(err, &notFound) {
		return form.ResultUnknownEmail
	}

	var notAuthorized *types.NotAuthorizedException
	if errors.As(err, &notAuthorized) {
		return form.ResultBadPassword
	}

	fiberlog.Error("cognito InitiateAuth: ", err)
	return form.ResultUnavailable
}

// secretHash is Base64(HMAC_SHA256(clientSecret, username + clientId)).
func secretHash(username, clientId, clientSecret string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientId))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
