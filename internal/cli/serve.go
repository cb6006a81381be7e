package cli

import (
	"authform/internal/app"
	"authform/internal/auth"
	"authform/internal/config"
	"database/sql"
	"fmt"

	fiberlog "github.com/gofiber/fiber/v2/log"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfigFromEnvironment(staticFS)

		var db *sql.DB
		if cfg.DatabaseUrl != "" {
			var err error
			db, err = sql.Open("postgres", cfg.DatabaseUrl)
			if err != nil {
				return fmt.Errorf("failed to open db: %w", err)
			}
			defer func(db *sql.DB) {
				if err := db.Close(); err != nil {
					fiberlog.Errorf("failed to close db: %+v", err)
				}
			}(db)
		}

		authenticator, err := auth.New(cmd.Context(), &cfg, db)
		if err != nil {
			return err
		}
		cfg.Authenticator = authenticator

		a := app.New(&cfg)
		return a.Listen(cfg.Host + ":" + cfg.Port)
	},
}
