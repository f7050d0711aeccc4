package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/magoc/flowgen/config"
	flowhttp "github.com/magoc/flowgen/http"
	"github.com/magoc/flowgen/telemetry"
)

// newServeCmd creates the 'serve' subcommand.
func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				if !os.IsNotExist(err) {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = &config.Config{}
			}
			telemetry.Init(cfg)

			if host == "" {
				host = cfg.HTTP.Host
			}
			if host == "" {
				host = config.DefaultHost
			}
			if port == 0 {
				port = cfg.HTTP.Port
			}
			if port == 0 {
				port = config.DefaultPort
			}
			addr := fmt.Sprintf("%s:%d", host, port)
			return flowhttp.StartServer(addr, cfg)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "bind host (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "bind port (overrides config)")
	return cmd
}
