package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Redis      RedisConfig
	Promotion  PromotionConfig
	Notifier   NotifierConfig
	Storefront StorefrontConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Kyiv"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Kyiv"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

// Location is the fixed zone log timestamps and request ids are rendered in.
func (c LogConfig) Location() *time.Location {
	return time.FixedZone(c.TimeZone, c.TimeZoneOffset)
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration time.Duration `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// Empty Addr disables the snapshot cache.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"50"`
}

const (
	CheckoutDiscountModeOnce    = "once"
	CheckoutDiscountModeReapply = "reapply"
)

type PromotionConfig struct {
	ShippingCost         int64         `envconfig:"PROMO_SHIPPING_COST" default:"39"`
	FlashOfferLimit      int64         `envconfig:"PROMO_FLASH_OFFER_LIMIT" default:"200"`
	CurrencySymbol       string        `envconfig:"PROMO_CURRENCY_SYMBOL" default:"₴"`
	CheckoutDiscountMode string        `envconfig:"PROMO_CHECKOUT_DISCOUNT_MODE" default:"once"`
	SnapshotCacheTTL     time.Duration `envconfig:"PROMO_SNAPSHOT_CACHE_TTL" default:"1s"`
}

func (c PromotionConfig) ReapplyCheckoutDiscount() bool {
	return c.CheckoutDiscountMode == CheckoutDiscountModeReapply
}

type NotifierConfig struct {
	WebhookURL    string        `envconfig:"NOTIFIER_WEBHOOK_URL" default:""`
	RatePerSecond float64       `envconfig:"NOTIFIER_RATE_PER_SECOND" default:"5"`
	Burst         int           `envconfig:"NOTIFIER_BURST" default:"1"`
	BatchSize     int32         `envconfig:"NOTIFIER_BATCH_SIZE" default:"20"`
	Concurrency   int           `envconfig:"NOTIFIER_CONCURRENCY" default:"4"`
	PollInterval  time.Duration `envconfig:"NOTIFIER_POLL_INTERVAL" default:"2s"`
	MaxAttempts   int32         `envconfig:"NOTIFIER_MAX_ATTEMPTS" default:"5"`
	Timeout       time.Duration `envconfig:"NOTIFIER_TIMEOUT" default:"5s"`
}

type StorefrontConfig struct {
	APIURL          string        `envconfig:"STOREFRONT_API_URL" default:"http://localhost:8080"`
	CartFile        string        `envconfig:"STOREFRONT_CART_FILE" default:"cart.json"`
	FlashPoll       time.Duration `envconfig:"STOREFRONT_FLASH_POLL" default:"1s"`
	SettingsPoll    time.Duration `envconfig:"STOREFRONT_SETTINGS_POLL" default:"5s"`
	SamplePeriod    time.Duration `envconfig:"STOREFRONT_SAMPLE_PERIOD" default:"100ms"`
	MaxStaleness    time.Duration `envconfig:"STOREFRONT_MAX_STALENESS" default:"15s"`
	RequestTimeout  time.Duration `envconfig:"STOREFRONT_REQUEST_TIMEOUT" default:"10s"`
	SubmitRetries   int           `envconfig:"STOREFRONT_SUBMIT_RETRIES" default:"2"`
	CurrencySymbol  string        `envconfig:"STOREFRONT_CURRENCY_SYMBOL" default:"₴"`
	ShippingCost    int64         `envconfig:"STOREFRONT_SHIPPING_COST" default:"39"`
	FlashOfferLimit int64         `envconfig:"STOREFRONT_FLASH_OFFER_LIMIT" default:"200"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	switch cfg.Promotion.CheckoutDiscountMode {
	case CheckoutDiscountModeOnce, CheckoutDiscountModeReapply:
	default:
		return Config{}, fmt.Errorf("invalid PROMO_CHECKOUT_DISCOUNT_MODE %q", cfg.Promotion.CheckoutDiscountMode)
	}
	if cfg.Notifier.RatePerSecond <= 0 {
		return Config{}, fmt.Errorf("NOTIFIER_RATE_PER_SECOND must be positive, got %v", cfg.Notifier.RatePerSecond)
	}
	return cfg, nil
}

// LoadMigrateConfig reads only what the migrate command needs.
func LoadMigrateConfig() (DBConfig, LogConfig, error) {
	var dc DBConfig
	if err := envconfig.Process("", &dc); err != nil {
		return DBConfig{}, LogConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	var lc LogConfig
	if err := envconfig.Process("", &lc); err != nil {
		return DBConfig{}, LogConfig{}, fmt.Errorf("failed to process log env config: %w", err)
	}
	return dc, lc, nil
}

// LoadStorefrontConfig reads only the client-side settings so the shop command runs without server env.
func LoadStorefrontConfig() (StorefrontConfig, LogConfig, error) {
	var sc StorefrontConfig
	if err := envconfig.Process("", &sc); err != nil {
		return StorefrontConfig{}, LogConfig{}, fmt.Errorf("failed to process storefront env config: %w", err)
	}
	var lc LogConfig
	if err := envconfig.Process("", &lc); err != nil {
		return StorefrontConfig{}, LogConfig{}, fmt.Errorf("failed to process log env config: %w", err)
	}
	return sc, lc, nil
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
			TimeZone: "Europe/Kyiv",
			MaxConns: 20,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "Idempotency-Key"},
			ExposeHeaders:    []string{"Idempotent-Replayed"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Kyiv",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-e2e-only",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 7 * 24 * time.Hour,
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Promotion: PromotionConfig{
			ShippingCost:         39,
			FlashOfferLimit:      200,
			CurrencySymbol:       "₴",
			CheckoutDiscountMode: CheckoutDiscountModeOnce,
		},
		Notifier: NotifierConfig{
			RatePerSecond: 100,
			Burst:         10,
			BatchSize:     20,
			Concurrency:   2,
			PollInterval:  100 * time.Millisecond,
			MaxAttempts:   3,
			Timeout:       time.Second,
		},
	}
}
