package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

type AppConfig struct {
	Name         string `mapstructure:"name" validate:"required"`
	Port         int    `mapstructure:"port" validate:"min=1,max=65535"`
	Env          string `mapstructure:"env" validate:"oneof=development staging production"`
	BasePath     string `mapstructure:"base_path"`     // Prefix for the /logs routes, e.g. "/api/admin"
	EnableViewer bool   `mapstructure:"enable_viewer"` // Serve the HTML log viewer
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"oneof=postgres pgx mysql sqlite"`
	Host            string `mapstructure:"host" validate:"required_unless=Driver sqlite"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname" validate:"required_unless=Driver sqlite"`
	SSLMode         string `mapstructure:"sslmode"`
	Path            string `mapstructure:"path" validate:"required_if=Driver sqlite"` // SQLite file, or ":memory:"
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"min=0"` // seconds
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host" validate:"required_if=Enabled true"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format"`
}

type PaginationConfig struct {
	DefaultLimit int `mapstructure:"default_limit" validate:"min=1"`
	MaxLimit     int `mapstructure:"max_limit" validate:"min=0"` // 0 disables the cap
}

type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Max     int  `mapstructure:"max" validate:"min=1"`
	Window  int  `mapstructure:"window" validate:"min=1"` // seconds
}

// NewConfig loads config.yaml from the working directory or ./config
func NewConfig() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	return load(v)
}

// Load reads the configuration from an explicit file path
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	return load(v)
}

func newViper() *viper.Viper {
	// A missing .env is fine; real environments set variables directly
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "apilog-admin")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.env", "production")
	v.SetDefault("app.base_path", "")
	v.SetDefault("app.enable_viewer", true)

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 300)
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "")

	v.SetDefault("pagination.default_limit", 20)
	v.SetDefault("pagination.max_limit", 0)

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.max", 60)
	v.SetDefault("rate_limit.window", 60)
}

func load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.App.BasePath = strings.TrimRight(cfg.App.BasePath, "/")
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// ConnMaxLifetimeDuration returns the pool connection lifetime
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// WindowDuration returns the rate limit window
func (r *RateLimitConfig) WindowDuration() time.Duration {
	return time.Duration(r.Window) * time.Second
}
