package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application-wide configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port         int        `mapstructure:"port"`
	BodyLimit    int64      `mapstructure:"body_limit"` // bytes
	CORS         CORSConfig `mapstructure:"cors"`
	ReadTimeout  int        `mapstructure:"read_timeout"`  // seconds
	WriteTimeout int        `mapstructure:"write_timeout"` // seconds
}

// CORSConfig cross-origin settings
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Supported database drivers.
const (
	DriverPostgres  = "postgres"
	DriverMySQL     = "mysql"
	DriverSQLServer = "sqlserver"
	DriverSQLite    = "sqlite"
)

// DatabaseConfig relational store settings
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	DSNOverride     string `mapstructure:"dsn"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // minutes
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // minutes
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
	EnsureEmojiID   bool   `mapstructure:"ensure_emoji_id"`
}

// DSN builds the connection string for the configured driver.
// An explicit db.dsn always wins.
func (c *DatabaseConfig) DSN() string {
	if c.DSNOverride != "" {
		return c.DSNOverride
	}

	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
			c.User, c.Password, c.Host, c.Port, c.Name,
		)
	case DriverSQLServer:
		return fmt.Sprintf(
			"sqlserver://%s:%s@%s:%d?database=%s&encrypt=disable",
			c.User, c.Password, c.Host, c.Port, c.Name,
		)
	case DriverSQLite:
		return c.Name
	default:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
		)
	}
}

// RedisConfig backs the distributed rate limiter. Empty addr disables it.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig JWT and password policy
type AuthConfig struct {
	JWTSecret          string        `mapstructure:"jwt_secret"`
	TokenTTL           time.Duration `mapstructure:"token_ttl"`
	PasswordMaxAgeDays int           `mapstructure:"password_max_age_days"`
	MinPasswordLength  int           `mapstructure:"min_password_length"`
	BcryptCost         int           `mapstructure:"bcrypt_cost"`
}

// RateLimitConfig throttles the public answer endpoint.
type RateLimitConfig struct {
	AnswersPerMinute int `mapstructure:"answers_per_minute"`
}

// LogConfig logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, an optional config file, a .env
// file and the environment.
// Precedence: environment > config file > defaults.
func Load(path string) (*Config, error) {
	// .env is optional; legacy deployments keep their settings there.
	_ = godotenv.Load()

	v := viper.New()

	// ── defaults ──
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000", "http://localhost:3001"})
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)

	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "SurveyManagement")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 60)
	v.SetDefault("db.conn_max_idle_time", 30)
	v.SetDefault("db.auto_migrate", false)
	v.SetDefault("db.ensure_emoji_id", true)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.token_ttl", "8h")
	v.SetDefault("auth.password_max_age_days", 60)
	v.SetDefault("auth.min_password_length", 6)
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("rate_limit.answers_per_minute", 120)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── config file ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── environment ──
	v.SetEnvPrefix("SURVEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("invalid config: auth.jwt_secret must be set")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("invalid config: auth.jwt_secret must be at least 16 characters")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be within 1-65535")
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLServer, DriverSQLite:
	default:
		return fmt.Errorf("invalid config: unsupported db.driver %q", c.Database.Driver)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("invalid config: auth.token_ttl must be positive")
	}
	return nil
}
