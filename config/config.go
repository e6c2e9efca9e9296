package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Metrics struct {
	Addr string `default:":2112" envconfig:"ADDR"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"bid-service" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Kafka struct {
	Brokers     []string `default:"kafka:9092" envconfig:"BROKERS"`
	SyncTopic   string   `default:"auction-sync" envconfig:"SYNC_TOPIC"`
	BidTopic    string   `default:"bids" envconfig:"BID_TOPIC"`
	GroupID     string   `default:"bid-service" envconfig:"GROUP_ID"`
	StartOffset string   `default:"last" envconfig:"START_OFFSET"`

	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	RetryBackoff   time.Duration `default:"5s" envconfig:"RETRY_BACKOFF"`
	MaxAttempts    int           `default:"50" envconfig:"MAX_ATTEMPTS"`
}

type Cache struct {
	TTL time.Duration `default:"10m" envconfig:"TTL"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP    HTTP
	Metrics Metrics
	Tracing Tracing
	Kafka   Kafka
	Cache   Cache
	Logger  Logger
}

// Load — конфигурация из окружения с префиксом BID;
// отсутствие переменных не ошибка, работают значения по умолчанию.
func Load() (Config, error) {
	return LoadWithPrefix("BID")
}

func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
