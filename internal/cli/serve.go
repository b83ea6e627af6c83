package cli

import (
	"github.com/spf13/cobra"

	"github.com/relaylabs/relaylog/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP ingestion server",
	Long: `Start the HTTP server that accepts transcripts on POST /v1/runs and
returns the normalized run as JSON.

Configuration comes from the environment:
  RELAYLOG_ADDR              listen address (default :8080)
  RELAYLOG_SHUTDOWN_TIMEOUT  graceful shutdown timeout (default 10s)
  RELAYLOG_LOG_LEVEL         zap log level (default info)`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.New()
	if err != nil {
		return err
	}
	return app.Run(cfg)
}
