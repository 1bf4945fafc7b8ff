package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const configPathEnv = "CONFIG_PATH_STOREFRONT"

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	GRPCServer GRPCServerConfig `yaml:"grpc_server"`
	Logger     LoggerConfig     `yaml:"logger"`
	Supabase   SupabaseConfig   `yaml:"supabase"`
	Store      StoreConfig      `yaml:"store"`
	Pricing    PricingConfig    `yaml:"pricing"`
	Session    SessionConfig    `yaml:"session"`
	Visitors   VisitorsConfig   `yaml:"visitors"`
	Auth       AuthConfig       `yaml:"auth"`
	Checkout   CheckoutConfig   `yaml:"checkout"`
	NATS       NATSConfig       `yaml:"nats"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	S3         S3Config         `yaml:"s3"`
	Tracing    TracingConfig    `yaml:"tracing"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

type HTTPServerConfig struct {
	Port            string        `yaml:"port" env:"HTTP_PORT_STOREFRONT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"HTTP_REQUEST_TIMEOUT" env-default:"10s"`
	TimeoutGraceful time.Duration `yaml:"timeout_graceful_shutdown" env-default:"15s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"HTTP_MAX_UPLOAD_BYTES" env-default:"5242880"`
}

type GRPCServerConfig struct {
	Port              string        `yaml:"port" env:"GRPC_PORT_STOREFRONT" env-default:"50060"`
	MaxConnectionIdle time.Duration `yaml:"max_connection_idle" env-default:"15m"`
	TimeoutGraceful   time.Duration `yaml:"timeout_graceful_shutdown" env-default:"15s"`
}

type LoggerConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding   string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json"`
	TimeFormat string `yaml:"time_format" env:"LOG_TIME_FORMAT" env-default:"2006-01-02T15:04:05.000Z07:00"`
}

type SupabaseConfig struct {
	URL    string `yaml:"url" env:"SUPABASE_URL" env-required:"true"`
	APIKey string `yaml:"api_key" env:"SUPABASE_API_KEY" env-required:"true"`
}

type StoreConfig struct {
	Driver string        `yaml:"driver" env:"STORE_DRIVER" env-default:"memory"`
	TTL    time.Duration `yaml:"ttl" env:"STORE_TTL" env-default:"720h"`
	Redis  RedisConfig   `yaml:"redis"`
	SQLite SQLiteConfig  `yaml:"sqlite"`
	Mongo  MongoDBConfig `yaml:"mongo"`
}

type RedisConfig struct {
	Addr      string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password  string `yaml:"password" env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"storefront:"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"storefront.db"`
}

type MongoDBConfig struct {
	URI        string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	User       string `yaml:"user" env:"MONGO_USER"`
	Password   string `yaml:"password" env:"MONGO_PASSWORD"`
	Database   string `yaml:"database" env:"MONGO_DATABASE" env-default:"storefront"`
	Collection string `yaml:"collection" env:"MONGO_COLLECTION" env-default:"kv_entries"`
}

type PricingConfig struct {
	FreeShippingThreshold string `yaml:"free_shipping_threshold" env:"FREE_SHIPPING_THRESHOLD" env-default:"100"`
	FlatShippingCost      string `yaml:"flat_shipping_cost" env:"FLAT_SHIPPING_COST" env-default:"10"`
	CurrencySymbol        string `yaml:"currency_symbol" env:"CURRENCY_SYMBOL" env-default:"S/"`
}

type SessionConfig struct {
	MaxAge time.Duration `yaml:"max_age" env:"SESSION_MAX_AGE" env-default:"0s"`
}

type VisitorsConfig struct {
	IdleTimeout   time.Duration `yaml:"idle_timeout" env:"VISITOR_IDLE_TIMEOUT" env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"VISITOR_SWEEP_INTERVAL" env-default:"5m"`
}

type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	CookieName   string        `yaml:"cookie_name" env:"VISITOR_COOKIE_NAME" env-default:"storefront_visitor"`
	CookieMaxAge time.Duration `yaml:"cookie_max_age" env:"VISITOR_COOKIE_MAX_AGE" env-default:"720h"`
	CookieSecure bool          `yaml:"cookie_secure" env:"VISITOR_COOKIE_SECURE" env-default:"false"`
	BcryptCost   int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

type CheckoutConfig struct {
	LookupConcurrency int           `yaml:"lookup_concurrency" env:"CHECKOUT_LOOKUP_CONCURRENCY" env-default:"4"`
	Timeout           time.Duration `yaml:"timeout" env:"CHECKOUT_TIMEOUT" env-default:"15s"`
	OrderSubject      string        `yaml:"order_subject" env:"CHECKOUT_ORDER_SUBJECT" env-default:"order.created"`
}

type NATSConfig struct {
	URL string `yaml:"url" env:"NATS_URL"`
}

type SMTPConfig struct {
	Host         string        `yaml:"host" env:"SMTP_HOST"`
	Port         int           `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username     string        `yaml:"username" env:"SMTP_USERNAME"`
	Password     string        `yaml:"password" env:"SMTP_PASSWORD"`
	SenderEmail  string        `yaml:"sender_email" env:"SMTP_SENDER_EMAIL"`
	Encryption   string        `yaml:"encryption" env:"SMTP_ENCRYPTION" env-default:"tls"`
	ServerName   string        `yaml:"server_name" env:"SMTP_SERVER_NAME"`
	SendTimeout  time.Duration `yaml:"send_timeout" env:"SMTP_SEND_TIMEOUT" env-default:"10s"`
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.SenderEmail != ""
}

type S3Config struct {
	Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"S3_BUCKET" env-default:"product-images"`
	Region    string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	UseSSL    bool   `yaml:"use_ssl" env:"S3_USE_SSL" env-default:"false"`
}

func (c S3Config) Enabled() bool {
	return c.Endpoint != ""
}

type TracingConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"storefront-service"`
}

type MetricsConfig struct {
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE" env-default:"storefront"`
}

func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		err := cleanenv.ReadEnv(&cfg)
		if err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			log.Printf("Warning: Config file not found at %s, attempting to load from environment variables only.", path)
			errEnv := cleanenv.ReadEnv(&cfg)
			if errEnv != nil {
				return nil, errEnv
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv(configPathEnv)
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}
