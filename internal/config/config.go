package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
	"github.com/mdobak/go-xerrors"

	"github.com/siahsang/blogfront/internal/validator"
)

var DefaultFiles = []string{"./blogfront.hcl", "./blogfront.local.hcl"}

var ErrInvalidConfig = xerrors.Message("invalid configuration")

type Config struct {
	Addr     string `hcl:"addr" env:"ADDR" default:":4000"`
	LogLevel string `hcl:"log_level" env:"LOG_LEVEL" default:"info"`
	BaseURL  string `hcl:"base_url" env:"BASE_URL" default:"http://localhost:4000"`

	Source          string        `hcl:"source" env:"SOURCE" default:"store"`
	UpstreamURL     string        `hcl:"upstream_url" env:"UPSTREAM_URL" default:"http://localhost:3001"`
	UpstreamTimeout time.Duration `hcl:"upstream_timeout" env:"UPSTREAM_TIMEOUT" default:"10s"`

	StorageDriver   string        `hcl:"storage_driver" env:"STORAGE_DRIVER" default:"memory"`
	DatabaseDSN     string        `hcl:"database_dsn" env:"DATABASE_DSN"`
	DatabaseTimeout time.Duration `hcl:"database_timeout" env:"DATABASE_TIMEOUT" default:"5s"`
	FixturePath     string        `hcl:"fixture_path" env:"FIXTURE_PATH"`

	PreferencesDriver string `hcl:"preferences_driver" env:"PREFERENCES_DRIVER" default:"file"`
	PreferencesFile   string `hcl:"preferences_file" env:"PREFERENCES_FILE" default:"./preferences.json"`
	RedisAddr         string `hcl:"redis_addr" env:"REDIS_ADDR" default:"localhost:6379"`
	DarkModeDefault   bool   `hcl:"dark_mode_default" env:"DARK_MODE_DEFAULT" default:"false"`

	CarouselInterval time.Duration `hcl:"carousel_interval" env:"CAROUSEL_INTERVAL" default:"5s"`
	ToastTTL         time.Duration `hcl:"toast_ttl" env:"TOAST_TTL" default:"5s"`

	EditorUsername     string        `hcl:"editor_username" env:"EDITOR_USERNAME"`
	EditorPasswordHash string        `hcl:"editor_password_hash" env:"EDITOR_PASSWORD_HASH"`
	JWTSecret          string        `hcl:"jwt_secret" env:"JWT_SECRET"`
	TokenTTL           time.Duration `hcl:"token_ttl" env:"TOKEN_TTL" default:"24h"`
}

// Load reads the config from the given HCL files and BLOG_* environment
// variables. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = DefaultFiles
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags:        true,
		EnvPrefix:        "BLOG",
		AllowUnknownEnvs: true,
		Files:            files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})

	if err := loader.Load(); err != nil {
		return Config{}, xerrors.Newf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	v := validator.New()

	v.Check(validator.PermittedValue(c.Source, "store", "http"), "source", "must be store or http")
	if c.Source == "http" {
		v.CheckNotBlank(c.UpstreamURL, "upstream_url", "is required when source is http")
	}
	v.Check(validator.PermittedValue(c.StorageDriver, "memory", "postgres"), "storage_driver", "must be memory or postgres")
	if c.StorageDriver == "postgres" {
		v.CheckNotBlank(c.DatabaseDSN, "database_dsn", "is required when storage_driver is postgres")
	}
	v.Check(validator.PermittedValue(c.PreferencesDriver, "memory", "file", "redis"), "preferences_driver", "must be memory, file or redis")
	if c.PreferencesDriver == "file" {
		v.CheckNotBlank(c.PreferencesFile, "preferences_file", "is required when preferences_driver is file")
	}
	if c.PreferencesDriver == "redis" {
		v.CheckNotBlank(c.RedisAddr, "redis_addr", "is required when preferences_driver is redis")
	}
	v.Check(c.CarouselInterval > 0, "carousel_interval", "must be positive")
	v.Check(c.ToastTTL > 0, "toast_ttl", "must be positive")
	if c.EditorUsername != "" {
		v.CheckNotBlank(c.EditorPasswordHash, "editor_password_hash", "is required when editor_username is set")
		v.CheckNotBlank(c.JWTSecret, "jwt_secret", "is required when editor_username is set")
	}

	if v.IsValid() {
		return nil
	}
	return xerrors.Newf("%w: %s", ErrInvalidConfig, formatErrors(v.Errors))
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func formatErrors(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, errs[k]))
	}
	return strings.Join(parts, "; ")
}
