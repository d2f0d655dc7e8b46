package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"valet/internal/config"
	"valet/internal/gateway"
	"valet/internal/store"

	"github.com/spf13/cobra"
)

var gatewayAddr string

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Serve both assistants over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if gatewayAddr != "" {
			cfg.Gateway.Addr = gatewayAddr
		}

		shutdown, err := initTracing(ctx, cfg)
		if err != nil {
			return fmt.Errorf("initializing tracing: %w", err)
		}
		defer shutdown(context.Background())

		transcripts, err := store.Open(cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("opening transcript store: %w", err)
		}
		defer transcripts.Close()

		jobs, cards, err := buildAssistants(cfg)
		if err != nil {
			return err
		}

		srv := gateway.NewServer(transcripts, jobs, cards)
		slog.Info("starting gateway", "addr", cfg.Gateway.Addr)
		return srv.ListenAndServe(ctx, cfg.Gateway.Addr)
	},
}

func init() {
	gatewayCmd.Flags().StringVarP(&gatewayAddr, "addr", "a", "", "override gateway listen address")
}
