package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close db: %+v", err)
		}
	})
	return db
}

func TestAccounts(t *testing.T) {
	db := openTestDB(t)
	r := New(db)
	ctx := context.Background()

	if err := r.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	email := fmt.Sprintf("repo-test-%d@example.com", time.Now().UnixNano())
	t.Cleanup(func() {
		_, _ = db.Exec("DELETE FROM accounts WHERE email = $1", email)
	})

	created, err := r.CreateAccount(ctx, email, "hash")
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 || created.Email != email {
		t.Fatalf("unexpected account: %+v", created)
	}

	found, err := r.GetAccountByEmail(ctx, email)
	if err != nil {
		t.Fatal(err)
	}
	if found.ID != created.ID || found.PasswordHash != "hash" {
		t.Fatalf("unexpected account: %+v", found)
	}

	_, err = r.GetAccountByEmail(ctx, "missing-"+email)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
