package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"
)

// DefaultUpdateURL is the community-maintained pricing document consumed
// when no override is configured.
const DefaultUpdateURL = "https://raw.githubusercontent.com/davidbz/tariff/" +
	"main/data/pricing/pricing_simple.json"

// Config represents the service configuration.
type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Pricing PricingConfig
	Redis   RedisConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// PricingConfig controls the pricing cache and its update source.
type PricingConfig struct {
	// CacheDir is where the on-disk pricing cache lives. Empty means
	// <user home>/.tariff, resolved at load time.
	CacheDir      string `env:"PRICING_CACHE_DIR"`
	UpdateURL     string `env:"PRICING_UPDATE_URL"`
	AutoUpdate    bool   `env:"PRICING_AUTO_UPDATE"     envDefault:"true"`
	CacheTTLHours int    `env:"PRICING_CACHE_TTL_HOURS" envDefault:"24"`
	FetchTimeout  int    `env:"PRICING_FETCH_TIMEOUT"   envDefault:"10"`
	// Store selects the cache backend: "file" or "redis".
	Store string `env:"PRICING_STORE" envDefault:"file"`
}

// RedisConfig contains settings for the optional Redis cache backend.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"        envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"          envDefault:"0"`
	Key      string `env:"REDIS_PRICING_KEY" envDefault:"tariff:pricing"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*PricingConfig
	*RedisConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	if cfg.Pricing.CacheDir == "" {
		cfg.Pricing.CacheDir = defaultCacheDir()
	}
	if cfg.Pricing.UpdateURL == "" {
		cfg.Pricing.UpdateURL = DefaultUpdateURL
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Pricing,
		&cfg.Redis,
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tariff"
	}
	return filepath.Join(home, ".tariff")
}
