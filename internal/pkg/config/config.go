package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Cart    CartConfig
	Session SessionConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	User        string        `envconfig:"REDIS_USER" default:""`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	MaxRetries  int           `envconfig:"REDIS_MAX_RETRIES" default:"3"`
	DialTimeout time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	Timeout     time.Duration `envconfig:"REDIS_TIMEOUT" default:"3s"`
}

type CartConfig struct {
	// "redis" or "memory"
	Store      string        `envconfig:"CART_STORE" default:"redis"`
	KeyPrefix  string        `envconfig:"CART_KEY_PREFIX" default:"cart"`
	TTL        time.Duration `envconfig:"CART_TTL" default:"720h"`
	MinorUnits int32         `envconfig:"CART_MINOR_UNITS" default:"2"`
	// Unit price snapshotted onto customized jerseys when they are added.
	CustomJerseyPrice string `envconfig:"CART_CUSTOM_JERSEY_PRICE" default:"1499.00"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"cart_session"`
	Domain     string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	Secure     bool          `envconfig:"SESSION_COOKIE_SECURE" default:"true"`
	SameSite   string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
	MaxAge     time.Duration `envconfig:"SESSION_COOKIE_MAX_AGE" default:"720h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone, c.MaxConns,
	)
}

func (c CartConfig) CustomJerseyUnitPrice() (decimal.Decimal, error) {
	price, err := decimal.NewFromString(c.CustomJerseyPrice)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid CART_CUSTOM_JERSEY_PRICE %q: %w", c.CustomJerseyPrice, err)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("CART_CUSTOM_JERSEY_PRICE must not be negative: %s", c.CustomJerseyPrice)
	}
	return price, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.Cart.CustomJerseyUnitPrice(); err != nil {
		return Config{}, err
	}
	if cfg.Cart.Store != "redis" && cfg.Cart.Store != "memory" {
		return Config{}, fmt.Errorf("CART_STORE must be redis or memory: %q", cfg.Cart.Store)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 5,
		},
		Redis: RedisConfig{
			Addr:        "localhost:16379",
			DialTimeout: time.Second,
			Timeout:     time.Second,
		},
		Cart: CartConfig{
			Store:             "memory",
			KeyPrefix:         "cart-test",
			TTL:               time.Hour,
			MinorUnits:        2,
			CustomJerseyPrice: "1499.00",
		},
		Session: SessionConfig{
			CookieName: "cart_session",
			SameSite:   "Lax",
			MaxAge:     time.Hour,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
	}
}
