package cli

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"dreamhouse/internal/config"
	"dreamhouse/internal/database"
	"dreamhouse/internal/events"
	httpapi "dreamhouse/internal/http"
	"dreamhouse/internal/logger"
	"dreamhouse/internal/repository"
	"dreamhouse/internal/service"
	"dreamhouse/internal/store"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// app holds everything serve builds, so it can be torn down in one place.
type app struct {
	handler http.Handler
	db      *sql.DB
	redis   *redis.Client
	pub     events.Publisher
	store   string
}

func (a *app) Close() {
	if a.pub != nil {
		a.pub.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	_ = database.Close(a.db)
}

// buildApp wires repositories, cache, events and routes from cfg.
// Optional backends that fail to start are logged and skipped.
func buildApp(ctx context.Context, cfg *config.Config, log *zap.Logger) *app {
	a := &app{store: "memory"}

	var repo repository.DesignsRepository
	var ping func(context.Context) error
	if cfg.DBEnabled {
		db, err := openStore(ctx, &cfg.Database, log)
		if err == nil {
			a.db = db
			a.store = cfg.Database.Driver
			repo = repository.NewSQLDesignsRepo(db, cfg.Database.Driver)
			ping = db.PingContext
			log.Info("DB enabled for dreamhouse", zap.String("driver", cfg.Database.Driver))
		} else {
			log.Warn("DB enabled but connection failed, falling back to memory store", zap.Error(err))
		}
	}
	if repo == nil {
		// DB 未就绪：使用内存 repo
		repo = repository.NewMemoryDesignsRepo()
	}

	if cfg.Redis.Enabled {
		client := store.NewRedisClient(&cfg.Redis)
		kv := store.NewRedisKV(client)
		if err := kv.Ping(ctx); err != nil {
			log.Warn("Redis enabled but unreachable, design cache disabled", zap.Error(err))
			_ = client.Close()
		} else {
			a.redis = client
			repo = repository.NewCachedDesignsRepo(repo, kv, cfg.Cache.TTL, log)
			log.Info("design cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Cache.TTL))
		}
	}

	a.pub = events.NoopPublisher{}
	if cfg.MQTT.Enabled {
		pub, err := events.NewMQTTPublisher(&cfg.MQTT)
		if err != nil {
			log.Warn("MQTT enabled but connection failed, events disabled", zap.Error(err))
		} else {
			a.pub = pub
			log.Info("publishing design events", zap.String("broker", cfg.MQTT.Broker), zap.String("topic", cfg.MQTT.Topic))
		}
	}

	svc := service.NewDesignService(repo, a.pub, log)
	router := httpapi.NewRouter(log)
	router.RegisterDesignRoutes(httpapi.NewDesignHandler(svc, ping, log))
	a.handler = router.With(
		httpapi.RequestID(),
		httpapi.Recover(log),
		httpapi.AccessLog(log),
		httpapi.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log),
	)
	return a
}

func openStore(ctx context.Context, cfg *config.DatabaseConfig, log *zap.Logger) (*sql.DB, error) {
	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, cfg, log); err != nil {
			return nil, err
		}
	}
	return database.Open(ctx, cfg)
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and index page",
		Example: `  # Start on the default :5000 with a SQLite file in data/
  dreamhouse serve

  # PostgreSQL with a Redis read cache
  DB_DRIVER=postgres DB_HOST=db REDIS_ENABLED=true dreamhouse serve --addr :8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "dreamhouse")
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync()

			ctx := cmd.Context()
			a := buildApp(ctx, cfg, log)
			defer a.Close()

			srv := service.NewServer(cfg.HTTP.Addr, a.handler, log)
			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Stop(shutdownCtx); err != nil {
					log.Error("server shutdown failed", zap.Error(err))
					return err
				}
				log.Info("server stopped")
				return nil
			case err := <-errCh:
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides HTTP_ADDR)")

	return cmd
}
