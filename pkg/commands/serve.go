package commands

import (
	"github.com/spf13/cobra"

	"railroute/app"
	"railroute/pkg/config"
)

var serveEnvFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the routing simulator HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(serveEnvFile)
		if err != nil {
			return err
		}
		return app.Serve(cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveEnvFile, "env-file", "", "Path to a .env file (defaults to ./.env)")
}
