package importer

import (
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"

	"github.com/mateusmacedo/go-companies/pkg/infrastructure/config"
)

// NewPublisherFactory devolve uma fábrica de publishers de curta duração
// para o driver configurado.
func NewPublisherFactory(cfg config.BrokerConfig, logger watermill.LoggerAdapter) (PublisherFactory, error) {
	switch cfg.Driver {
	case "kafka":
		return func() (message.Publisher, error) {
			return kafka.NewPublisher(kafka.PublisherConfig{
				Brokers:   cfg.KafkaBrokers,
				Marshaler: kafka.DefaultMarshaler{},
			}, logger)
		}, nil
	case "redis":
		return func() (message.Publisher, error) {
			client := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			})
			return redisstream.NewPublisher(redisstream.PublisherConfig{
				Client: client,
			}, logger)
		}, nil
	default:
		return nil, fmt.Errorf("no publisher driver %q", cfg.Driver)
	}
}

// NewSubscriber cria o assinante da fila de importação para o driver
// configurado, sempre em modo de confirmação manual.
func NewSubscriber(cfg config.BrokerConfig, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	switch cfg.Driver {
	case "kafka":
		saramaConfig := sarama.NewConfig()
		saramaConfig.Version = sarama.V1_0_0_0
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
		saramaConfig.Consumer.Return.Errors = true
		saramaConfig.ClientID = cfg.ConsumerGroup

		return kafka.NewSubscriber(kafka.SubscriberConfig{
			Brokers:               cfg.KafkaBrokers,
			Unmarshaler:           kafka.DefaultMarshaler{},
			ConsumerGroup:         cfg.ConsumerGroup,
			OverwriteSaramaConfig: saramaConfig,
			InitializeTopicDetails: &sarama.TopicDetail{
				NumPartitions:     1,
				ReplicationFactor: 1,
			},
		}, logger)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        client,
			ConsumerGroup: cfg.ConsumerGroup,
			Consumer:      watermill.NewShortUUID(),
		}, logger)
	default:
		return nil, fmt.Errorf("no subscriber driver %q", cfg.Driver)
	}
}

// NewGoChannelPubSub cria o pub/sub em memória usado em modo single-process
// e nos testes do pipeline.
func NewGoChannelPubSub(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		// Sem buffer: a entrega segue o ritmo do consumidor, uma mensagem
		// em voo por assinatura.
		OutputChannelBuffer: 0,
		Persistent:          true,
	}, logger)
}

// SharedPublisherFactory adapta um pub/sub compartilhado (gochannel) à
// fábrica de publishers sem permitir que um Publish o feche.
func SharedPublisherFactory(publisher message.Publisher) PublisherFactory {
	shared := nonClosingPublisher{Publisher: publisher}
	return func() (message.Publisher, error) {
		return shared, nil
	}
}

type nonClosingPublisher struct {
	message.Publisher
}

func (nonClosingPublisher) Close() error {
	return nil
}
