package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Browse   BrowseConfig
	Cart     CartConfig
	Checkout CheckoutConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Cart.ensureBackend(cfg.Redis); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig points at the static product list and store configuration
// documents the storefront serves from.
type CatalogConfig struct {
	ProductsURL  string        `envconfig:"STOREFRONT_CATALOG_PRODUCTS_URL" required:"true"`
	ConfigURL    string        `envconfig:"STOREFRONT_CATALOG_CONFIG_URL" required:"true"`
	FetchTimeout time.Duration `envconfig:"STOREFRONT_CATALOG_FETCH_TIMEOUT" default:"10s"`
}

type BrowseConfig struct {
	PageSize    int `envconfig:"STOREFRONT_BROWSE_PAGE_SIZE" default:"12"`
	MaxPageSize int `envconfig:"STOREFRONT_BROWSE_MAX_PAGE_SIZE" default:"48"`
}

// CartConfig selects the persistence backend for serialized cart records.
type CartConfig struct {
	Backend       string        `envconfig:"STOREFRONT_CART_BACKEND" default:"sqlite"`
	KeyPrefix     string        `envconfig:"STOREFRONT_CART_KEY_PREFIX" default:"cart"`
	SessionCookie string        `envconfig:"STOREFRONT_CART_SESSION_COOKIE" default:"sf_session"`
	SessionTTL    time.Duration `envconfig:"STOREFRONT_CART_SESSION_TTL" default:"720h"`
}

const (
	CartBackendSQLite = "sqlite"
	CartBackendRedis  = "redis"
	CartBackendMemory = "memory"
)

func (c *CartConfig) ensureBackend(redis RedisConfig) error {
	backend := strings.TrimSpace(strings.ToLower(c.Backend))
	switch backend {
	case CartBackendSQLite, CartBackendMemory:
	case CartBackendRedis:
		if redis.URL == "" && redis.Address == "" {
			return fmt.Errorf("%s or %s is required when %s is %q", EnvRedisURL, EnvRedisAddr, EnvCartBackend, CartBackendRedis)
		}
	default:
		return fmt.Errorf("%s must be one of sqlite, redis, memory", EnvCartBackend)
	}
	c.Backend = backend
	return nil
}

// CheckoutConfig drives the order hand-off. The webhook URL is optional:
// without it orders hand off through the WhatsApp link alone.
type CheckoutConfig struct {
	WebhookURL     string        `envconfig:"STOREFRONT_CHECKOUT_WEBHOOK_URL"`
	WhatsAppNumber string        `envconfig:"STOREFRONT_CHECKOUT_WHATSAPP_NUMBER"`
	SubmitTimeout  time.Duration `envconfig:"STOREFRONT_CHECKOUT_SUBMIT_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Path            string        `envconfig:"STOREFRONT_DB_PATH" default:"storefront.db"`
	AutoMigrate     bool          `envconfig:"STOREFRONT_DB_AUTO_MIGRATE" default:"true"`
	MaxOpenConns    int           `envconfig:"STOREFRONT_DB_MAX_OPEN_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOREFRONT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
