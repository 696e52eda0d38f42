package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yaklabco/semlint/internal/logging"
	"github.com/yaklabco/semlint/internal/server"
	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
)

type serveFlags struct {
	addr         string
	maxBodyBytes int64
	pack         string
}

func newServeCommand() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the semantic checker over HTTP",
		Long: `Start an HTTP server that checks documents posted to it.

Endpoints:
  POST /v1/check   check the request body (HTML or Markdown)
  GET  /v1/rules   list rules as configured for this server
  GET  /healthz    liveness probe
  GET  /metrics    Prometheus metrics

The body of /v1/check is the document itself. Its format is taken from the
"name" query parameter, then the Content-Type header, then the content.

Examples:
  semlint serve --addr :9000
  curl --data-binary @index.html -H 'Content-Type: text/html' localhost:9000/v1/check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().Int64Var(&flags.maxBodyBytes, "max-body-bytes", 0,
		"maximum request body size in bytes (default from config, 4 MiB)")
	cmd.Flags().StringVar(&flags.pack, "pack", "", "rule pack: default, strict, structure, fragment")

	return cmd
}

func runServe(cmd *cobra.Command, flags *serveFlags) error {
	cliCfg := &config.Config{
		Pack: flags.pack,
		Server: config.ServerConfig{
			Addr:         flags.addr,
			MaxBodyBytes: flags.maxBodyBytes,
		},
	}

	cfg, _, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, lint.DefaultRegistry, server.WithLogger(logging.FromContext(ctx)))
	if err := srv.ListenAndServe(ctx, ""); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
