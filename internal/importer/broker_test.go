package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-companies/internal/company/application"
)

type stubLogger struct{}

func (stubLogger) Info(context.Context, string, map[string]interface{}) {}
func (stubLogger) Debug(context.Context, string, map[string]interface{}) {}
func (stubLogger) Error(context.Context, string, map[string]interface{}) {}
func (stubLogger) Trace(context.Context, string, map[string]interface{}) {}

type stubPublisher struct {
	published []*message.Message
	topics    []string
	closed    bool
	err       error
}

func (s *stubPublisher) Publish(topic string, messages ...*message.Message) error {
	s.topics = append(s.topics, topic)
	s.published = append(s.published, messages...)
	return s.err
}

func (s *stubPublisher) Close() error {
	s.closed = true
	return nil
}

func TestBrokerPublishesToImportQueue(t *testing.T) {
	publisher := &stubPublisher{}
	broker := NewWatermillBroker(func() (message.Publisher, error) {
		return publisher, nil
	}, stubLogger{})

	command := application.CreateCompanyData{Cnpj: "11222333000181", Name: "Acme Ltda"}

	require.NoError(t, broker.Publish(context.Background(), command))

	require.Len(t, publisher.published, 1)
	assert.Equal(t, []string{QueueName}, publisher.topics)
	assert.True(t, publisher.closed, "publisher de curta duração é fechado após o envio")

	decoded, err := DecodeCommand(publisher.published[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, command.Cnpj, decoded.Cnpj)
}

func TestBrokerPublishConnectionFailure(t *testing.T) {
	broker := NewWatermillBroker(func() (message.Publisher, error) {
		return nil, errors.New("broker unreachable")
	}, stubLogger{})

	err := broker.Publish(context.Background(), application.CreateCompanyData{Cnpj: "11222333000181"})

	assert.Error(t, err)
}

func TestBrokerPublishFailure(t *testing.T) {
	publisher := &stubPublisher{err: errors.New("channel closed")}
	broker := NewWatermillBroker(func() (message.Publisher, error) {
		return publisher, nil
	}, stubLogger{})

	err := broker.Publish(context.Background(), application.CreateCompanyData{Cnpj: "11222333000181"})

	assert.Error(t, err)
	assert.True(t, publisher.closed)
}
