package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	// Tracking
	RedisURL            string
	TrackingCacheTTL    time.Duration
	TrackingCacheSize   int
	TrackingRateLimit   string // ulule/limiter formatted, e.g. "60-M"
	ReferenceCodePrefix string

	ReferenceCodeMaxAttempts int
	EnableWithdrawnState     bool
	DefaultFeePercentage     decimal.Decimal
	DefaultMinimumFee        decimal.Decimal

	// Events
	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string

	CORSAllowedOrigins []string
}

// DefaultFeePolicy is applied to transaction requests that carry no fee policy.
func (c *Config) DefaultFeePolicy() domain.FeePolicy {
	return domain.FeePolicy{Percentage: c.DefaultFeePercentage, MinimumFee: c.DefaultMinimumFee}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "hawala-settlement")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("TRACKING_CACHE_TTL", "15s")
	v.SetDefault("TRACKING_CACHE_SIZE", 10000)
	v.SetDefault("TRACKING_RATE_LIMIT", "60-M")
	v.SetDefault("REFERENCE_CODE_PREFIX", "HW")
	v.SetDefault("REFERENCE_CODE_MAX_ATTEMPTS", 5)
	v.SetDefault("ENABLE_WITHDRAWN_STATE", true)
	v.SetDefault("DEFAULT_FEE_PERCENTAGE", "0")
	v.SetDefault("DEFAULT_MINIMUM_FEE", "0")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "hawala.transactions")
	v.SetDefault("AMQP_ROUTING_KEY", "transaction.events")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		RedisURL:             v.GetString("REDIS_URL"),
		TrackingCacheSize:    v.GetInt("TRACKING_CACHE_SIZE"),
		TrackingRateLimit:    v.GetString("TRACKING_RATE_LIMIT"),
		ReferenceCodePrefix:  strings.ToUpper(v.GetString("REFERENCE_CODE_PREFIX")),
		EnableWithdrawnState: v.GetBool("ENABLE_WITHDRAWN_STATE"),
		AMQPURL:              v.GetString("AMQP_URL"),
		AMQPExchange:         v.GetString("AMQP_EXCHANGE"),
		AMQPRoutingKey:       v.GetString("AMQP_ROUTING_KEY"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET is the built-in default. THIS IS NOT FOR PRODUCTION.")
	}

	ttlStr := v.GetString("TRACKING_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 15 * time.Second
		log.Printf("Warning: Invalid value for TRACKING_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.TrackingCacheTTL = ttl

	cfg.ReferenceCodeMaxAttempts = v.GetInt("REFERENCE_CODE_MAX_ATTEMPTS")
	if cfg.ReferenceCodeMaxAttempts <= 0 {
		cfg.ReferenceCodeMaxAttempts = 5
		log.Printf("Warning: REFERENCE_CODE_MAX_ATTEMPTS must be positive. Defaulting to %d.\n", cfg.ReferenceCodeMaxAttempts)
	}

	cfg.DefaultFeePercentage = decimalSetting(v, "DEFAULT_FEE_PERCENTAGE")
	cfg.DefaultMinimumFee = decimalSetting(v, "DEFAULT_MINIMUM_FEE")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg
}

// decimalSetting falls back to zero on unparsable or negative values.
func decimalSetting(v *viper.Viper, key string) decimal.Decimal {
	raw := v.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to 0.\n", key, raw)
		return decimal.Zero
	}
	return d
}
