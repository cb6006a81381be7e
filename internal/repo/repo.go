package repo

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"

	"authform/gen/authform/public/model"
	"github.com/go-jet/jet/v2/qrm"

	. "authform/gen/authform/public/table"
	. "github.com/go-jet/jet/v2/postgres"
)

//go:embed schema.sql
var schema string

type Repository interface {
	GetAccountByEmail(ctx context.Context, email string) (model.Accounts, error)
	CreateAccount(ctx context.Context, email string, passwordHash string) (model.Accounts, error)
	Migrate(ctx context.Context) error
}

func New(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

type repository struct {
	db *sql.DB
}

// GetAccountByEmail returns sql.ErrNoRows if no account has the given email.
func (r *repository) GetAccountByEmail(ctx context.Context, email string) (model.Accounts, error) {
	stmt := Accounts.SELECT(Accounts.AllColumns).WHERE(Accounts.Email.EQ(String(email))).LIMIT(1)

	var result model.Accounts
	if err := stmt.QueryContext(ctx, r.db, &result); err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return result, sql.ErrNoRows
		}
		return result, err
	}

	if result.ID == 0 {
		return result, sql.ErrNoRows
	}

	return result, nil
}

func (r *repository) CreateAccount(ctx context.Context, email string, passwordHash string) (model.Accounts, error) {
	var result model.Accounts

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return result, err
	}
	defer tx.Rollback()

	stmt := Accounts.INSERT(Accounts.Email, Accounts.PasswordHash).
		VALUES(email, passwordHash).
		RETURNING(Accounts.AllColumns)

	if err := stmt.QueryContext(ctx, tx, &result); err != nil {
		return result, err
	}

	if err = tx.Commit(); err != nil {
		return result, err
	}

	return result, nil
}

// Migrate creates the accounts table if it does not exist.
func (r *repository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}
