package cli

import (
	"authform/internal/auth"
	"authform/internal/config"
	"authform/internal/form"
	"authform/internal/repo"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	accountEmail    string
	accountPassword string
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage local accounts",
}

var accountsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the accounts table",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, closeDB, err := openRepo()
		if err != nil {
			return err
		}
		defer closeDB()

		if err := r.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "accounts table ready")
		return nil
	},
}

var accountsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account for the postgres auth backend",
	Example: `  authform accounts create --email user@example.com --password 'correct horse'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := form.Validate(accountEmail, accountPassword); err != nil {
			return err
		}

		hash, err := auth.HashPassword(accountPassword)
		if err != nil {
			return err
		}

		r, closeDB, err := openRepo()
		if err != nil {
			return err
		}
		defer closeDB()

		account, err := r.CreateAccount(cmd.Context(), auth.NormalizeEmail(accountEmail), hash)
		if err != nil {
			return fmt.Errorf("creating account: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created account %d for %s\n", account.ID, account.Email)
		return nil
	},
}

func openRepo() (repo.Repository, func(), error) {
	cfg := config.NewConfigFromEnvironment(staticFS)
	if cfg.DatabaseUrl == "" {
		return nil, nil, errors.New("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", cfg.DatabaseUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	return repo.New(db), func() { _ = db.Close() }, nil
}

func init() {
	accountsCreateCmd.Flags().StringVar(&accountEmail, "email", "", "account email")
	accountsCreateCmd.Flags().StringVar(&accountPassword, "password", "", "account password")
	_ = accountsCreateCmd.MarkFlagRequired("email")
	_ = accountsCreateCmd.MarkFlagRequired("password")

	accountsCmd.AddCommand(accountsMigrateCmd)
	accountsCmd.AddCommand(accountsCreateCmd)
}
