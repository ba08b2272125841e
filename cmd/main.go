package main

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/golang-cz/devslog"
	"github.com/mdobak/go-xerrors"

	"github.com/siahsang/blogfront/internal/auth"
	"github.com/siahsang/blogfront/internal/carousel"
	"github.com/siahsang/blogfront/internal/config"
	"github.com/siahsang/blogfront/internal/fetch"
	"github.com/siahsang/blogfront/internal/prefs"
	"github.com/siahsang/blogfront/internal/store"
	"github.com/siahsang/blogfront/internal/toast"
	"github.com/siahsang/blogfront/models"
)

type application struct {
	config   config.Config
	logger   *slog.Logger
	source   fetch.Source
	articles *store.ArticleStore
	carousel *carousel.Carousel[models.Article]
	toasts   *toast.Center
	darkMode *prefs.DarkMode
	auth     *auth.Auth
	wg       sync.WaitGroup
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading configuration", "error", err)
		os.Exit(1)
	}

	logger := configLogger(cfg.SlogLevel())
	logger.Info("Starting application...", "source", cfg.Source, "storage", cfg.StorageDriver)

	ctx := context.Background()
	app, closeAll, err := newApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("Error initialising application", "stack", xerrors.Sprint(err))
		os.Exit(1)
	}
	defer closeAll()

	if err := app.serve(); err != nil {
		logger.Error("Error running server", "stack", xerrors.Sprint(err))
		os.Exit(1)
	}
}

func configLogger(level slog.Level) *slog.Logger {
	handler := devslog.NewHandler(
		os.Stdout, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     level,
			},
			NewLineAfterLog: false,
		})

	logger := slog.New(handler)
	return logger
}

// newApplication wires the configured backends. The returned func releases
// database and redis connections.
func newApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) (*application, func(), error) {
	var closers []func() error
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Error("Error closing resource", "error", err)
			}
		}
	}

	source, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if closeSource != nil {
		closers = append(closers, closeSource)
	}

	kv, closeKV, err := openPreferences(ctx, cfg)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	if closeKV != nil {
		closers = append(closers, closeKV)
	}

	darkMode, err := prefs.NewDarkMode(ctx, kv, cfg.DarkModeDefault, logger)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	articles := store.NewArticleStore(logger)
	items, err := articles.List(ctx)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		source:   source,
		articles: articles,
		carousel: carousel.New(items, cfg.CarouselInterval),
		toasts:   toast.NewCenter(cfg.ToastTTL, logger),
		darkMode: darkMode,
		auth: auth.New(auth.Config{
			Username:     cfg.EditorUsername,
			PasswordHash: cfg.EditorPasswordHash,
			Secret:       cfg.JWTSecret,
			TokenTTL:     cfg.TokenTTL,
		}),
	}
	return app, closeAll, nil
}

func openSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (fetch.Source, func() error, error) {
	if cfg.Source == "http" {
		logger.Info("Using upstream posts server", "url", cfg.UpstreamURL)
		return fetch.NewHTTPSource(cfg.UpstreamURL, cfg.UpstreamTimeout, logger), nil, nil
	}

	if cfg.StorageDriver == "postgres" {
		db, err := store.OpenPostgres(ctx, cfg.DatabaseDSN, cfg.DatabaseTimeout, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Init(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info("Database connection established successfully")
		return fetch.NewStoreSource(db, cfg.FixturePath, logger), db.Close, nil
	}

	return fetch.NewStoreSource(store.NewMemory(logger), cfg.FixturePath, logger), nil, nil
}

func openPreferences(ctx context.Context, cfg config.Config) (prefs.KV, func() error, error) {
	switch cfg.PreferencesDriver {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, xerrors.Newf("could not connect to redis (%s): %w", cfg.RedisAddr, err)
		}
		return prefs.NewRedisKV(client), client.Close, nil
	case "file":
		return prefs.NewFileKV(cfg.PreferencesFile), nil, nil
	default:
		return prefs.NewMemoryKV(), nil, nil
	}
}
