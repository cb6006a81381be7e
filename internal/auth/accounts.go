package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"authform/gen/authform/public/model"
	"authform/internal/form"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
)

// AccountLookup finds a stored account by its lowercased email. It returns sql.ErrNoRows
// when there is none.
type AccountLookup interface {
	GetAccountByEmail(ctx context.Context, email string) (model.Accounts, error)
}

// Accounts authenticates against locally stored bcrypt password hashes.
type Accounts struct {
	Repo AccountLookup
}

var _ form.Authenticator = (*Accounts)(nil)

func (a *Accounts) Authenticate(ctx context.Context, email, password string) form.Result {
	account, err := a.Repo.GetAccountByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return form.ResultUnknownEmail
	}
	if err != nil {
		fiberlog.Error("looking up account: ", err)
		return form.ResultUnavailable
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return form.ResultBadPassword
	}
	if err != nil {
		fiberlog.Error("comparing password hash: ", err)
		return form.ResultUnavailable
	}

	return form.ResultOk
}

// HashPassword returns the bcrypt hash stored for a new account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
