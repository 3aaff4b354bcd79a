package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/tagz/pkg/server"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the render server",
		Long: `Start an HTTP server exposing the renderer.

Endpoints:
  POST /render    parse the body and stream it back (?pretty, ?indent, ?chunk)
  POST /lines     pretty-render the body as plain text
  GET  /ws        render documents sent as WebSocket messages, line by line
  GET  /metrics   Prometheus metrics
  GET  /healthz   liveness check

Examples:
  tagz serve
  tagz serve --port=9000 --host=0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			return server.New(cfg, server.WithLogger(g.logger)).Run()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "P", 0, "Port to listen on (default from tagz.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from tagz.json)")
	return cmd
}
