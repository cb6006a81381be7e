package cli

import (
	"embed"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var staticFS embed.FS

var rootCmd = &cobra.Command{
	Use:   "authform",
	Short: "Login form server",
	Long: `authform serves an htmx login form backed by Cognito or a local accounts table.

Available commands:
  serve       Start the HTTP server (default)
  accounts    Manage local accounts for the postgres auth backend`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env is fine, the environment may already be set
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute runs the root command with the embedded static assets.
func Execute(static embed.FS) {
	staticFS = static
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(accountsCmd)
}
