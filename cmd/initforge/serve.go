package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/initforge/initforge/internal/cli/config"
	"github.com/initforge/initforge/internal/convert"
	"github.com/initforge/initforge/internal/metadata"
	"github.com/initforge/initforge/internal/metadata/cache"
	"github.com/initforge/initforge/internal/web/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the project generation HTTP API",
	Long: `Start the HTTP API serving the metadata catalog and converting
project-generation requests into validated project descriptions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck // stderr sync is best effort

		registry, loader, closeCache, err := buildRegistry(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		router := server.NewRouter(registry, convert.NewConverter(), logger)
		srvConfig := server.DefaultConfig(router)
		srvConfig.Address = cfg.Server.Addr()

		srv, err := server.New(srvConfig)
		if err != nil {
			return err
		}

		refreshCtx, stopRefresh := context.WithCancel(context.Background())
		if loader != nil && cfg.Metadata.RefreshInterval > 0 {
			go registry.RunRefresh(refreshCtx, cfg.Metadata.RefreshInterval, loader.Load, logger)
		}

		gs := server.NewGracefulShutdown(srv, 30*time.Second, logger)
		gs.RegisterHook(func(ctx context.Context) error {
			stopRefresh()
			return nil
		})
		if closeCache != nil {
			gs.RegisterHook(func(ctx context.Context) error { return closeCache() })
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("http server listening", zap.String("address", srvConfig.Address))
			errCh <- srv.Start()
		}()

		shutdownCh := make(chan error, 1)
		go func() { shutdownCh <- gs.WaitForSignal() }()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return <-shutdownCh
		case err := <-shutdownCh:
			return err
		}
	},
}

// buildRegistry creates the catalog registry, plus the loader and cache
// closer when an external metadata source is configured. Without a source
// the built-in catalog is used and never refreshed.
func buildRegistry(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*metadata.Registry, *metadata.Loader, func() error, error) {
	if cfg.Metadata.Source == "" {
		logger.Info("using built-in metadata catalog")
		return metadata.NewRegistry(metadata.NewCatalogBuilder().WithDefaults().Build()), nil, nil, nil
	}

	var (
		documentCache cache.Cache
		closeCache    func() error
	)
	switch cfg.Metadata.Cache.Backend {
	case "redis":
		redisCache, err := cache.NewRedis(cache.RedisConfig{
			Addr:   cfg.Metadata.Cache.RedisAddr,
			Config: cache.DefaultConfig(),
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect metadata cache: %w", err)
		}
		documentCache = redisCache
		closeCache = redisCache.Close
	default:
		memCache := cache.NewMemory()
		documentCache = memCache
		closeCache = memCache.Close
	}

	loader := metadata.NewLoader(cfg.Metadata.Source, logger,
		metadata.WithCache(documentCache, cfg.Metadata.Cache.TTL))

	catalog, err := loader.Load(ctx)
	if err != nil {
		if closeCache != nil {
			closeCache() //nolint:errcheck // already failing
		}
		return nil, nil, nil, fmt.Errorf("failed to load metadata: %w", err)
	}

	return metadata.NewRegistry(catalog), loader, closeCache, nil
}
