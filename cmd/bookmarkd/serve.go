package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adwaithaSV/bookmark-backend/internal/api"
	"github.com/adwaithaSV/bookmark-backend/internal/auth"
	"github.com/adwaithaSV/bookmark-backend/internal/config"
	"github.com/adwaithaSV/bookmark-backend/internal/db"
	"github.com/adwaithaSV/bookmark-backend/internal/logger"
	"github.com/adwaithaSV/bookmark-backend/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Log.Level, cfg.Log.Pretty)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			userStore := store.NewUserStore(database)
			bookmarkStore := store.NewBookmarkStore(database, cfg.Limits.MaxPerUser)
			tokens := auth.NewTokenService([]byte(cfg.JWT.Secret), cfg.JWT.TTL)

			router := api.NewRouter(api.Deps{
				AuthHandlers:  auth.NewHandlers(userStore, tokens, log),
				BearerAuth:    auth.NewBearerTokenMiddleware(tokens, userStore),
				BookmarkStore: bookmarkStore,
				DB:            database,
				Log:           log,
			})

			srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("listening", zap.String("addr", cfg.HTTP.Addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
