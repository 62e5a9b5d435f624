package importer

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mateusmacedo/go-companies/internal/company/application"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
)

// Broker publica comandos de importação na fila. A publicação é
// fire-and-forget: o retorno sem erro garante apenas a entrega ao broker.
type Broker interface {
	Publish(ctx context.Context, command application.CreateCompanyData) error
}

// PublisherFactory cria um publisher de curta duração. Cada Publish abre e
// fecha o seu próprio, então chamadas concorrentes não compartilham estado.
type PublisherFactory func() (message.Publisher, error)

type watermillBroker struct {
	newPublisher PublisherFactory
	logger       pkgApp.AppLogger
}

func NewWatermillBroker(newPublisher PublisherFactory, logger pkgApp.AppLogger) Broker {
	return &watermillBroker{
		newPublisher: newPublisher,
		logger:       logger,
	}
}

func (b *watermillBroker) Publish(ctx context.Context, command application.CreateCompanyData) error {
	payload, err := EncodeCommand(command)
	if err != nil {
		pkgApp.LogError(ctx, b.logger, "erro ao serializar comando de importação", err, map[string]interface{}{"cnpj": command.Cnpj})
		return err
	}

	publisher, err := b.newPublisher()
	if err != nil {
		pkgApp.LogError(ctx, b.logger, "erro ao conectar no broker", err, nil)
		return err
	}
	defer publisher.Close()

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := publisher.Publish(QueueName, msg); err != nil {
		pkgApp.LogError(ctx, b.logger, "erro ao publicar comando de importação", err, map[string]interface{}{"cnpj": command.Cnpj})
		return err
	}

	pkgApp.LogInfo(ctx, b.logger, "comando de importação publicado", map[string]interface{}{"cnpj": command.Cnpj})
	return nil
}
