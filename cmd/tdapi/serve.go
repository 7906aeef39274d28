package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexbilevskiy/tdapi/internal/config"
	"github.com/alexbilevskiy/tdapi/internal/db"
	"github.com/alexbilevskiy/tdapi/internal/journal"
	"github.com/alexbilevskiy/tdapi/internal/rpc"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the record journal gRPC server and HTTP gateway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.InitConfiguration(configPath)
			if err != nil {
				return err
			}
			log := opts.log
			if cfg.Debug && !opts.debug {
				log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, log, cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "json config file")

	return cmd
}

func serve(ctx context.Context, log *slog.Logger, cfg *config.Config) error {
	ttl, err := cfg.CacheTTLDuration()
	if err != nil {
		return err
	}

	mongoClient, err := db.NewClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect mongo", "error", err)
		}
	}()

	storage := db.NewRecordsStorage(cfg, mongoClient)
	if err := storage.EnsureIndexes(ctx); err != nil {
		return err
	}

	srv, err := rpc.NewServer(log, journal.NewService(log, storage, cfg.CacheSize, ttl))
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	return srv.Run(ctx, cfg.Listen)
}
