package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("KAFKA_BROKERS", "localhost:9092")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "go-companies", cfg.App.Name)
	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
	assert.Equal(t, "kafka", cfg.Broker.Driver)
	assert.Equal(t, "import-companies-worker", cfg.Broker.ConsumerGroup)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Broker.KafkaBrokers)
}

func TestLoadKafkaBrokerList(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Broker.KafkaBrokers)
}

func TestLoadPostgresRequiresDSN(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("DATABASE_DSN", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DSN")
}

func TestLoadKafkaRequiresBrokers(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("BROKER_DRIVER", "kafka")
	t.Setenv("KAFKA_BROKERS", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}

func TestLoadRedisRequiresAddr(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("BROKER_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_ADDR")
}

func TestLoadRedisDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("BROKER_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.Broker.RedisAddr)
	assert.Equal(t, 3, cfg.Broker.RedisDB)
}

func TestLoadChannelDriverNeedsNoBrokerConfig(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("BROKER_DRIVER", "channel")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "channel", cfg.Broker.Driver)
}

func TestLoadUnknownBrokerDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("BROKER_DRIVER", "rabbitmq")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BROKER_DRIVER")
}
