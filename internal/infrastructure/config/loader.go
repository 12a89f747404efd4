package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // billing zones must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MM"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration for the environment named by MM_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not load .env file:", err)
	}
	return Load(ConfigPaths)
}

// Load reads <env>.yaml from the first of paths that has it and applies
// defaults and MM_* environment overrides
func Load(paths []string) (*Config, error) {
	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. A missing file is not an error.
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"http://localhost:3000"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowThreshold", 200)  // milliseconds
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("auth.leeway", 30) // seconds

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.viewKeyPrefix", "view:")
	v.SetDefault("redis.viewChannel", "medimeet:views")

	v.SetDefault("credits.billingTimeZone", "UTC")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.serviceName", "medimeet")
	v.SetDefault("telemetry.endpoint", "localhost:4317")
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("telemetry.sampleRatio", 1.0)

	v.SetDefault("rateLimit.enabled", false)
	v.SetDefault("rateLimit.requests", 120)
	v.SetDefault("rateLimit.window", 60) // seconds
}

// getEnvironment determines the environment from MM_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides gives the short MM_* names precedence over file values.
// Secrets are expected to arrive this way.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"MM_DB_DRIVER":       "database.driver",
		"MM_DB_HOST":         "database.host",
		"MM_DB_USERNAME":     "database.username",
		"MM_DB_PASSWORD":     "database.password",
		"MM_DB_NAME":         "database.database",
		"MM_DB_SSL_MODE":     "database.sslMode",
		"MM_SERVER_HOST":     "server.host",
		"MM_LOGGER_LEVEL":    "logger.level",
		"MM_AUTH_JWT_SECRET": "auth.jwtSecret",
		"MM_AUTH_ISSUER":     "auth.issuer",
		"MM_REDIS_ADDR":      "redis.addr",
		"MM_REDIS_PASSWORD":  "redis.password",
		"MM_OTEL_ENDPOINT":   "telemetry.endpoint",
		"MM_BILLING_TZ":      "credits.billingTimeZone",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"MM_DB_PORT":             "database.port",
		"MM_DB_MAX_OPEN_CONNS":   "database.maxOpenConns",
		"MM_DB_MAX_IDLE_CONNS":   "database.maxIdleConns",
		"MM_DB_RETRY_ATTEMPTS":   "database.retryAttempts",
		"MM_SERVER_PORT":         "server.port",
		"MM_RATE_LIMIT_REQUESTS": "rateLimit.requests",
	}
	for env, key := range intOverrides {
		if value, ok := getEnvInt(env); ok {
			v.Set(key, value)
		}
	}

	if admins := os.Getenv("MM_ADMINS"); admins != "" {
		v.Set("admins", strings.Split(admins, ","))
	}
	if enabled, err := strconv.ParseBool(os.Getenv("MM_OTEL_ENABLED")); err == nil {
		v.Set("telemetry.enabled", enabled)
	}
}

func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts the raw unit counts read from config into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.SlowThreshold = config.Database.SlowThreshold * time.Millisecond
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second

	config.Auth.Leeway = config.Auth.Leeway * time.Second
	config.RateLimit.Window = config.RateLimit.Window * time.Second
}

// Validate checks the settings every environment needs
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret is required (set MM_AUTH_JWT_SECRET)")
	}
	if c.Environment == Production && len(c.Auth.JWTSecret) < 32 {
		return errors.New("auth.jwtSecret must be at least 32 bytes in production")
	}
	if _, err := time.LoadLocation(c.Credits.BillingTimeZone); err != nil {
		return fmt.Errorf("invalid credits.billingTimeZone %q: %w", c.Credits.BillingTimeZone, err)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		return errors.New("rateLimit.requests and rateLimit.window must be positive")
	}
	if c.Telemetry.Enabled && (c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1) {
		return fmt.Errorf("telemetry.sampleRatio must be within [0,1], got %v", c.Telemetry.SampleRatio)
	}
	return nil
}
