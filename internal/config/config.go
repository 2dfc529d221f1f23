package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger    = key("logger")
	KeyMetrics   = key("metrics")
	KeyPrincipal = key("principal")
	KeyRequestID = key("request_id")
)

const (
	DriverPusher = "pusher"
	DriverRedis  = "redis"
)

type Config struct {
	Service   Service
	Platform  Platform
	Logger    Logger
	Metrics   Metrics
	Broadcast Broadcast
	Pusher    Pusher
	Redis     Redis
	Postgres  Postgres
	JWT       JWT
	Kafka     Kafka
}

type Service struct {
	Port   string `env:"SERVICE_PORT" env-default:"8080"`
	Name   string `env:"SERVICE_NAME" env-default:"broadcast-service"`
	APIKey string `env:"SERVICE_API_KEY"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT" env-default:"8125"`
}

type Broadcast struct {
	Driver                  string        `env:"BROADCAST_DRIVER" env-default:"pusher"`
	MemberChannels          []string      `env:"BROADCAST_MEMBER_CHANNELS" env-separator:"," env-default:"chat.{id}"`
	BreakerFailureThreshold uint32        `env:"BROADCAST_BREAKER_FAILURES" env-default:"5"`
	BreakerResetTimeout     time.Duration `env:"BROADCAST_BREAKER_RESET" env-default:"30s"`
	DispatchTimeout         time.Duration `env:"BROADCAST_DISPATCH_TIMEOUT" env-default:"5s"`
}

type Pusher struct {
	AppID               string        `env:"PUSHER_APP_ID"`
	Key                 string        `env:"PUSHER_APP_KEY"`
	Secret              string        `env:"PUSHER_APP_SECRET"`
	EncryptionMasterKey string        `env:"PUSHER_ENCRYPTION_MASTER_KEY"`
	Cluster             string        `env:"PUSHER_APP_CLUSTER" env-default:"mt1"`
	BaseURL             string        `env:"PUSHER_BASE_URL"`
	Timeout             time.Duration `env:"PUSHER_TIMEOUT" env-default:"5s"`
	MaxPayloadBytes     int           `env:"PUSHER_MAX_PAYLOAD_BYTES" env-default:"10240"`
}

type Redis struct {
	URL          string        `env:"REDIS_URL" env-default:"redis://localhost:6379"`
	Prefix       string        `env:"REDIS_PREFIX"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PingTimeout  time.Duration `env:"REDIS_PING_TIMEOUT" env-default:"2s"`
}

type Postgres struct {
	User     string `env:"BROADCAST_SERVICE_POSTGRES_USER"`
	Password string `env:"BROADCAST_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"BROADCAST_SERVICE_POSTGRES_DB"`
	Host     string `env:"BROADCAST_SERVICE_POSTGRES_HOST"`
	Port     string `env:"BROADCAST_SERVICE_POSTGRES_PORT"`
}

type JWT struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL" env-default:"30m"`
}

type Kafka struct {
	Host    string `env:"KAFKA_HOST"`
	Port    string `env:"KAFKA_PORT"`
	Topic   string `env:"BROADCAST_EVENTS_TOPIC" env-default:"broadcast-events"`
	GroupID string `env:"BROADCAST_EVENTS_GROUP" env-default:"broadcast-dispatcher"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}

	return cfg
}
