package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"firststeps/internal/api"
	"firststeps/internal/config"
	"firststeps/internal/db"
	"firststeps/internal/logging"
	"firststeps/internal/store"
)

const (
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
	disconnectTimeout = 5 * time.Second
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

			logger, err := logging.New(cfg.DebugMode)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx := context.Background()
			mongo, err := db.Connect(ctx, cfg, logger)
			if err != nil {
				return err
			}

			userStore := store.NewUserStore(mongo.Database)
			fileStore := store.NewFileStore(mongo.Bucket)

			if err := userStore.EnsureIndexes(ctx); err != nil {
				disconnect(mongo, logger)
				return err
			}

			router := api.NewRouter(api.Deps{
				Logger:    logger,
				Pinger:    mongo,
				UserStore: userStore,
				FileStore: fileStore,
			})

			srv := &http.Server{
				Addr:         cfg.Addr(),
				Handler:      router,
				ReadTimeout:  readTimeout,
				WriteTimeout: writeTimeout,
				IdleTimeout:  idleTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server started",
					zap.String("addr", srv.Addr),
					zap.String("app", cfg.AppName),
					zap.String("env", cfg.Env),
				)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				// The listener died; still close the Mongo connection.
				disconnect(mongo, logger)
				return err
			case sig := <-stop:
				logger.Info("shutting down", zap.String("signal", sig.String()))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("server shutdown", zap.Error(err))
			}

			disconnect(mongo, logger)
			logger.Info("server stopped")
			return nil
		},
	}
}

func disconnect(m *db.Mongo, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := m.Disconnect(ctx, logger); err != nil {
		logger.Error("mongodb disconnect", zap.Error(err))
	}
}
