package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RedisURL          string
	JWTSecret         string
	JWTTokenTTL       time.Duration
	RosterCacheTTL    time.Duration
	LoginRateMax      int
	LoginRateWindow   time.Duration
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	SeedEnabled       bool
	SeedToken         string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GRADEBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Gradebook API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("jwt.token_ttl", "24h")
	v.SetDefault("roster.cache_ttl", "2m")
	v.SetDefault("login.rate_max", 10)
	v.SetDefault("login.rate_window", "1m")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("seed.enabled", false)

	tokenTTL, err := time.ParseDuration(v.GetString("jwt.token_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid jwt token ttl: %w", err)
	}

	rosterTTL, err := time.ParseDuration(v.GetString("roster.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid roster cache ttl: %w", err)
	}

	rateWindow, err := time.ParseDuration(v.GetString("login.rate_window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid login rate window: %w", err)
	}

	connLifetime, err := time.ParseDuration(v.GetString("db.conn_max_lifetime"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid db conn max lifetime: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		RedisURL:          v.GetString("redis.url"),
		JWTSecret:         v.GetString("jwt.secret"),
		JWTTokenTTL:       tokenTTL,
		RosterCacheTTL:    rosterTTL,
		LoginRateMax:      v.GetInt("login.rate_max"),
		LoginRateWindow:   rateWindow,
		DBMaxOpenConns:    v.GetInt("db.max_open_conns"),
		DBMaxIdleConns:    v.GetInt("db.max_idle_conns"),
		DBConnMaxLifetime: connLifetime,
		SeedEnabled:       v.GetBool("seed.enabled"),
		SeedToken:         v.GetString("seed.token"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.DBMaxOpenConns <= 0 {
		cfg.DBMaxOpenConns = 20
	}

	if cfg.DBMaxIdleConns <= 0 {
		cfg.DBMaxIdleConns = 5
	}

	return cfg, nil
}
