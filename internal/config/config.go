package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type GatewayConfig struct {
	Env           string `yaml:"env" env-default:"local"`
	HTTPServer    `yaml:"http_server"`
	BackendAPI    `yaml:"backend_api"`
	GatewayDB     `yaml:"gateway_db"`
	Redis         `yaml:"redis"`
	KafkaService  `yaml:"kafka"`
	Session       `yaml:"session"`
	Notifications `yaml:"notifications"`
	LogConfig     `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type BackendAPI struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"10"`
}

type GatewayDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type Redis struct {
	Addr     string `yaml:"addr" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type KafkaService struct {
	Enabled bool     `yaml:"enabled" env-default:"false"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic" env-default:"order-status-events"`
}

type Session struct {
	IdleTimeoutMinutes      int    `yaml:"idle_timeout_minutes" env-default:"15"`
	ActivityThrottleSeconds int    `yaml:"activity_throttle_seconds" env-default:"2"`
	TTLHours                int    `yaml:"ttl_hours" env-default:"12"`
	JWTSecret               string `yaml:"jwt_secret" env:"GATEWAY_JWT_SECRET"`
}

type Notifications struct {
	PollIntervalSeconds int    `yaml:"poll_interval_seconds" env-default:"30"`
	ServiceToken        string `yaml:"service_token" env:"NOTIFICATIONS_SERVICE_TOKEN"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
}

func (s Session) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

func (s Session) ActivityThrottle() time.Duration {
	return time.Duration(s.ActivityThrottleSeconds) * time.Second
}

func (s Session) TTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

func (n Notifications) PollInterval() time.Duration {
	return time.Duration(n.PollIntervalSeconds) * time.Second
}

func MustLoad() *GatewayConfig {
	configPath := os.Getenv("GATEWAY_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("GATEWAY_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg GatewayConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
