package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "2.0.0"

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Security    SecurityConfig
	Tracing     TracingConfig
	SMTP        SMTPConfig
	Stripe      StripeConfig
	Storage     StorageConfig
	Social      SocialConfig
	Booking     BookingConfig
	RateLimit   RateLimitConfig
	Scheduler   SchedulerConfig
	RootEmail   string
	Environment string
	APIEndpoint string
	LogLevel    string
	Version     string
}

type ServerConfig struct {
	Port int
	Host string
	SSL  SSLConfig
	// Origins allowed by CORS, "*" when empty
	CORSOrigins []string
}

type SSLConfig struct {
	Enabled  bool
	CertFile string
	KeyFile  string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SecurityConfig struct {
	// HS256 signing secret for session tokens
	JWTSecret string
	// Passphrase for secrets stored in the database (social tokens, magic codes)
	SecretKey  string
	SessionTTL time.Duration
}

type TracingConfig struct {
	Enabled             bool
	ServiceName         string
	SamplingProbability float64

	TraceExporter        string // jaeger, zipkin, stackdriver, datadog, xray, none
	JaegerEndpoint       string
	ZipkinEndpoint       string
	StackdriverProjectID string
	DatadogAgentAddress  string
	XRayRegion           string

	MetricsExporter string // prometheus, stackdriver, datadog, none, or a comma separated list
	PrometheusPort  int
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
	Currency      string
}

type StorageConfig struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PresignTTL      time.Duration
}

type SocialConfig struct {
	TwitterAPIURL   string
	FacebookAPIURL  string
	InstagramAPIURL string
	LinkedInAPIURL  string
	// Outbound requests per minute, per platform
	RequestsPerMinute int
}

// APIURL returns the base URL configured for a platform
func (s SocialConfig) APIURL(platform string) string {
	switch platform {
	case "twitter":
		return s.TwitterAPIURL
	case "facebook":
		return s.FacebookAPIURL
	case "instagram":
		return s.InstagramAPIURL
	case "linkedin":
		return s.LinkedInAPIURL
	}
	return ""
}

type BookingConfig struct {
	WebhookSecret string
}

type RateLimitConfig struct {
	Enabled     bool
	MaxRequests int
	Window      time.Duration
}

type SchedulerConfig struct {
	SocialTickInterval time.Duration
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // optional env file, e.g. ".env" or ".env.test"
}

// Load reads .env when present, then the process environment
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "go4it")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)
	v.SetDefault("SESSION_TTL", "720h")

	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "Go4It Sports")

	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "go4it-api")
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)
	v.SetDefault("TRACING_TRACE_EXPORTER", "none")
	v.SetDefault("TRACING_JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	v.SetDefault("TRACING_ZIPKIN_ENDPOINT", "http://localhost:9411/api/v2/spans")
	v.SetDefault("TRACING_DATADOG_AGENT_ADDRESS", "localhost:8126")
	v.SetDefault("TRACING_XRAY_REGION", "us-east-1")
	v.SetDefault("TRACING_METRICS_EXPORTER", "none")
	v.SetDefault("TRACING_PROMETHEUS_PORT", 9464)

	v.SetDefault("STRIPE_CURRENCY", "usd")

	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_PRESIGN_TTL", "15m")

	v.SetDefault("SOCIAL_REQUESTS_PER_MINUTE", 30)

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 300)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")

	v.SetDefault("SCHEDULER_SOCIAL_TICK", "30s")

	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}
		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	jwtSecret := v.GetString("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if len(jwtSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}

	secretKey := v.GetString("SECRET_KEY")
	if secretKey == "" {
		secretKey = jwtSecret
	}

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
			SSL: SSLConfig{
				Enabled:  v.GetBool("SSL_ENABLED"),
				CertFile: v.GetString("SSL_CERT_FILE"),
				KeyFile:  v.GetString("SSL_KEY_FILE"),
			},
			CORSOrigins: splitList(v.GetString("CORS_ALLOW_ORIGIN")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Security: SecurityConfig{
			JWTSecret:  jwtSecret,
			SecretKey:  secretKey,
			SessionTTL: v.GetDuration("SESSION_TTL"),
		},
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("SMTP_USERNAME"),
			Password:  v.GetString("SMTP_PASSWORD"),
			FromEmail: v.GetString("SMTP_FROM_EMAIL"),
			FromName:  v.GetString("SMTP_FROM_NAME"),
		},
		Tracing: TracingConfig{
			Enabled:              v.GetBool("TRACING_ENABLED"),
			ServiceName:          v.GetString("TRACING_SERVICE_NAME"),
			SamplingProbability:  v.GetFloat64("TRACING_SAMPLING_PROBABILITY"),
			TraceExporter:        v.GetString("TRACING_TRACE_EXPORTER"),
			JaegerEndpoint:       v.GetString("TRACING_JAEGER_ENDPOINT"),
			ZipkinEndpoint:       v.GetString("TRACING_ZIPKIN_ENDPOINT"),
			StackdriverProjectID: v.GetString("TRACING_STACKDRIVER_PROJECT_ID"),
			DatadogAgentAddress:  v.GetString("TRACING_DATADOG_AGENT_ADDRESS"),
			XRayRegion:           v.GetString("TRACING_XRAY_REGION"),
			MetricsExporter:      v.GetString("TRACING_METRICS_EXPORTER"),
			PrometheusPort:       v.GetInt("TRACING_PROMETHEUS_PORT"),
		},
		Stripe: StripeConfig{
			SecretKey:     v.GetString("STRIPE_SECRET_KEY"),
			WebhookSecret: v.GetString("STRIPE_WEBHOOK_SECRET"),
			SuccessURL:    v.GetString("STRIPE_SUCCESS_URL"),
			CancelURL:     v.GetString("STRIPE_CANCEL_URL"),
			Currency:      strings.ToLower(v.GetString("STRIPE_CURRENCY")),
		},
		Storage: StorageConfig{
			Bucket:          v.GetString("STORAGE_BUCKET"),
			Region:          v.GetString("STORAGE_REGION"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			AccessKeyID:     v.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("STORAGE_SECRET_ACCESS_KEY"),
			PresignTTL:      v.GetDuration("STORAGE_PRESIGN_TTL"),
		},
		Social: SocialConfig{
			TwitterAPIURL:     v.GetString("SOCIAL_TWITTER_API_URL"),
			FacebookAPIURL:    v.GetString("SOCIAL_FACEBOOK_API_URL"),
			InstagramAPIURL:   v.GetString("SOCIAL_INSTAGRAM_API_URL"),
			LinkedInAPIURL:    v.GetString("SOCIAL_LINKEDIN_API_URL"),
			RequestsPerMinute: v.GetInt("SOCIAL_REQUESTS_PER_MINUTE"),
		},
		Booking: BookingConfig{
			WebhookSecret: v.GetString("BOOKING_WEBHOOK_SECRET"),
		},
		RateLimit: RateLimitConfig{
			Enabled:     v.GetBool("RATE_LIMIT_ENABLED"),
			MaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
			Window:      v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Scheduler: SchedulerConfig{
			SocialTickInterval: v.GetDuration("SCHEDULER_SOCIAL_TICK"),
		},
		RootEmail:   v.GetString("ROOT_EMAIL"),
		Environment: v.GetString("ENVIRONMENT"),
		APIEndpoint: v.GetString("API_ENDPOINT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
	}

	return config, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
