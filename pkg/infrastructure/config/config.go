package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config concentra a configuração do processo, carregada uma única vez no
// startup. Os componentes recebem descritores já validados, nunca fazem
// lookup de variável de ambiente por conta própria.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Broker   BrokerConfig
}

type AppConfig struct {
	Name     string `env:"APP_NAME" envDefault:"go-companies"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	// Storage seleciona os repositórios: "postgres" ou "memory".
	Storage string `env:"STORAGE_DRIVER" envDefault:"postgres"`
}

type DatabaseConfig struct {
	DSN string `env:"DATABASE_DSN"`
}

// BrokerConfig descreve a conexão com o broker da fila de importação.
type BrokerConfig struct {
	// Driver seleciona o transporte: "kafka", "redis" ou "channel".
	Driver        string   `env:"BROKER_DRIVER" envDefault:"kafka"`
	ConsumerGroup string   `env:"BROKER_CONSUMER_GROUP" envDefault:"import-companies-worker"`
	KafkaBrokers  []string `env:"KAFKA_BROKERS" envSeparator:","`
	RedisAddr     string   `env:"REDIS_ADDR"`
	RedisPassword string   `env:"REDIS_PASSWORD"`
	RedisDB       int      `env:"REDIS_DB" envDefault:"0"`
}

// Load lê .env quando presente e materializa a configuração a partir do
// ambiente, falhando cedo quando uma variável obrigatória está ausente.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.App.Storage == "postgres" && c.Database.DSN == "" {
		return fmt.Errorf("DATABASE_DSN is required when STORAGE_DRIVER is postgres")
	}

	switch c.Broker.Driver {
	case "kafka":
		if len(c.Broker.KafkaBrokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is required when BROKER_DRIVER is kafka")
		}
	case "redis":
		if c.Broker.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when BROKER_DRIVER is redis")
		}
	case "channel":
	default:
		return fmt.Errorf("unknown BROKER_DRIVER %q", c.Broker.Driver)
	}
	return nil
}
