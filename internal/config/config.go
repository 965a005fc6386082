package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`
	Redis    Redis
	Kafka    Kafka

	Auth     Auth    `validate:"required"`
	Gateway  Gateway `validate:"required"`
	Orders   Orders
	Sweeper  Sweeper
	Shipping Shipping
	Tracing  Tracing
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`

	ReadTimeout  time.Duration `validate:"gte=0"`
	WriteTimeout time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// Redis is optional; without an address Idempotency-Key headers are ignored.
type Redis struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`

	// PendingTTL bounds how long an unfinished request holds its key.
	KeyTTL     time.Duration `validate:"gte=0"`
	PendingTTL time.Duration `validate:"gte=0"`
}

// Kafka is optional; without brokers order events are dropped.
type Kafka struct {
	Brokers      []string      `validate:"omitempty,dive,hostname_port"`
	Topic        string        `validate:"required_with=Brokers"`
	BatchTimeout time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Auth struct {
	JWTSecret string `validate:"required,min=16"`
	Issuer    string
}

type Gateway struct {
	Provider  string `validate:"required"`
	BaseURL   string `validate:"required,url"`
	StoreID   string
	StorePass string
	Timeout   time.Duration `validate:"gt=0"`

	SuccessURL  string `validate:"required,url"`
	FailURL     string `validate:"required,url"`
	CancelURL   string `validate:"required,url"`
	FrontendURL string `validate:"omitempty,url"`
}

type Orders struct {
	Currency    string        `validate:"required,len=3"`
	TTL         time.Duration `validate:"gt=0"`
	DedupWindow time.Duration `validate:"gt=0"`
}

type Sweeper struct {
	Interval      time.Duration `validate:"gt=0"`
	CleanupWindow time.Duration `validate:"gt=0"`
}

type Shipping struct {
	ZonesCacheTTL time.Duration `validate:"gt=0"`
}

type Tracing struct {
	Endpoint    string `validate:"omitempty,hostname_port"`
	ServiceName string `validate:"required"`
	Insecure    bool
	SampleRatio float64 `validate:"gte=0,lte=1"`
}

func New() Config {
	publicURL := strings.TrimRight(env("PUBLIC_URL", "http://localhost:8080"), "/")

	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),

			ReadTimeout:  envDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: envDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		},

		Cors: CORS{
			AllowedOrigins: envList("ALLOWED_CORS_ORIGINS", "http://localhost:3000"),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", ""),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),

			KeyTTL:     envDuration("IDEMPOTENCY_KEY_TTL", 24*time.Hour),
			PendingTTL: envDuration("IDEMPOTENCY_PENDING_TTL", time.Minute),
		},

		Kafka: Kafka{
			Brokers:      envList("KAFKA_BROKERS", ""),
			Topic:        env("KAFKA_TOPIC", "order-events"),
			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
			Issuer:    env("JWT_ISSUER", ""),
		},

		Gateway: Gateway{
			Provider:  env("GATEWAY_PROVIDER", "sslcommerz"),
			BaseURL:   env("GATEWAY_BASE_URL", "https://sandbox.sslcommerz.com"),
			StoreID:   env("GATEWAY_STORE_ID", ""),
			StorePass: env("GATEWAY_STORE_PASSWORD", ""),
			Timeout:   envDuration("GATEWAY_TIMEOUT", 15*time.Second),

			SuccessURL:  env("GATEWAY_SUCCESS_URL", publicURL+"/api/v1/payments/gateway/success"),
			FailURL:     env("GATEWAY_FAIL_URL", publicURL+"/api/v1/payments/gateway/fail"),
			CancelURL:   env("GATEWAY_CANCEL_URL", publicURL+"/api/v1/payments/gateway/cancel"),
			FrontendURL: env("GATEWAY_FRONTEND_URL", ""),
		},

		Orders: Orders{
			Currency:    env("ORDER_CURRENCY", "BDT"),
			TTL:         envDuration("ORDER_TTL", 5*time.Minute),
			DedupWindow: envDuration("ORDER_DEDUP_WINDOW", 5*time.Minute),
		},

		Sweeper: Sweeper{
			Interval:      envDuration("SWEEPER_INTERVAL", time.Minute),
			CleanupWindow: envDuration("SWEEPER_CLEANUP_WINDOW", 24*time.Hour),
		},

		Shipping: Shipping{
			ZonesCacheTTL: envDuration("SHIPPING_ZONES_CACHE_TTL", 5*time.Minute),
		},

		Tracing: Tracing{
			Endpoint:    env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: env("OTEL_SERVICE_NAME", "order-service"),
			Insecure:    envBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			SampleRatio: envFloat("OTEL_TRACES_SAMPLE_RATIO", 1),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GatewayRedirect reports whether callbacks should bounce the browser back to
// the storefront instead of answering with JSON.
func (c Config) GatewayRedirect() (*url.URL, bool) {
	if c.Gateway.FrontendURL == "" {
		return nil, false
	}
	u, err := url.Parse(c.Gateway.FrontendURL)
	if err != nil {
		return nil, false
	}
	return u, true
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envList(key string, fallback string) []string {
	raw := env(key, fallback)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
