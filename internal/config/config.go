package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"LAUNDRY_PORT,default=5000"`
	Env  string `env:"LAUNDRY_ENV,default=development"`

	MongoURI string `env:"LAUNDRY_MONGO,required"`
	MongoDB  string `env:"LAUNDRY_MONGO_DB,default=laundry"`

	// redis, пустой адрес отключает кэш
	CacheURL  string `env:"LAUNDRY_CACHE_URL"`
	CacheUser string `env:"LAUNDRY_CACHE_USER"`
	CachePwd  string `env:"LAUNDRY_CACHE_PWD"`

	KafkaBrokers string `env:"LAUNDRY_KAFKA_BROKERS"`
	KafkaTopic   string `env:"LAUNDRY_KAFKA_TOPIC,default=task-events"`

	RabbitURL   string `env:"RABBIT_URL"`
	RedeemCount int    `env:"LAUNDRY_REDEEM_COUNT,default=5"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,default=720h"`

	OtelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	GRPCPort     string `env:"LAUNDRY_GRPC_PORT"`
	ClientURL    string `env:"CLIENT_URL"`

	NotifyTimeout  time.Duration `env:"LAUNDRY_NOTIFY_TIMEOUT,default=3s"`
	LoyaltyRetries int           `env:"LAUNDRY_LOYALTY_RETRIES,default=5"`
}

// Загрузка из окружения, .env файл необязателен
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	cfg := &Config{}
	err := envdecode.Decode(cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, err
	}
	if cfg.RedeemCount < 1 {
		cfg.RedeemCount = 1
	}
	if cfg.LoyaltyRetries < 1 {
		cfg.LoyaltyRetries = 1
	}
	return cfg, nil
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

func (c *Config) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
