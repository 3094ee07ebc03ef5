package main

import (
	"context"

	"github.com/spf13/cobra"

	"firststeps/internal/config"
	"firststeps/internal/db"
	"firststeps/internal/logging"
	"firststeps/internal/store"
)

func newEnsureIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create the unique user indexes",
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
			defer disconnect(mongo, logger)

			if err := store.NewUserStore(mongo.Database).EnsureIndexes(ctx); err != nil {
				return err
			}

			logger.Info("indexes ensured")
			return nil
		},
	}
}
