package importer

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mateusmacedo/go-companies/internal/company/application"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

// State descreve o ponto do ciclo de vida em que o consumidor está.
type State string

const (
	StateIdle       State = "idle"
	StateSubscribed State = "subscribed"
	StateConsuming  State = "consuming"
	StateDraining   State = "draining"
	StateStopped    State = "stopped"
)

// CreateCompanyHandler é o manipulador para o qual cada mensagem da fila é
// despachada.
type CreateCompanyHandler = pkgApp.CommandHandler[pkgDomain.Command[application.CreateCompanyData], application.CreateCompanyData, application.CompanyDetails]

// Consumer assina a fila de importação em modo de confirmação manual e
// processa uma mensagem por vez. A rejeição de negócio (cnpj duplicado, por
// exemplo) é terminal para a mensagem: ela é confirmada e não reentregue.
// Somente falha de infraestrutura deixa a mensagem pendente para reentrega.
type Consumer struct {
	subscriber message.Subscriber
	handler    CreateCompanyHandler
	logger     pkgApp.AppLogger

	mu    sync.RWMutex
	state State
}

func NewConsumer(subscriber message.Subscriber, handler CreateCompanyHandler, logger pkgApp.AppLogger) *Consumer {
	return &Consumer{
		subscriber: subscriber,
		handler:    handler,
		logger:     logger,
		state:      StateIdle,
	}
}

func (c *Consumer) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Consumer) setState(ctx context.Context, state State) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
	pkgApp.LogDebug(ctx, c.logger, "consumidor de importação mudou de estado", map[string]interface{}{"state": state})
}

// Run assina a fila e consome até o contexto ser cancelado ou uma falha de
// infraestrutura encerrar a execução. O cancelamento é verificado entre
// mensagens: a mensagem em andamento sempre termina antes da saída.
func (c *Consumer) Run(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, QueueName)
	if err != nil {
		c.setState(ctx, StateStopped)
		return fmt.Errorf("subscribing to %s: %w", QueueName, err)
	}
	c.setState(ctx, StateSubscribed)

	c.setState(ctx, StateConsuming)
	for msg := range messages {
		if err := c.process(ctx, msg); err != nil {
			c.setState(ctx, StateStopped)
			return err
		}

		if ctx.Err() != nil {
			c.setState(ctx, StateDraining)
		}
	}

	c.setState(ctx, StateStopped)
	return nil
}

func (c *Consumer) process(ctx context.Context, msg *message.Message) error {
	command, err := DecodeCommand(msg.Payload)
	if err != nil {
		// Política explícita para payload malformado: confirma e registra.
		// Reentregar não ajudaria e a fila não pode travar em uma mensagem
		// envenenada.
		pkgApp.LogError(ctx, c.logger, "mensagem de importação descartada: payload inválido", err, map[string]interface{}{
			"messageId": msg.UUID,
			"payload":   string(msg.Payload),
		})
		msg.Ack()
		return nil
	}

	pkgApp.LogInfo(ctx, c.logger, "comando de importação recebido", map[string]interface{}{
		"messageId": msg.UUID,
		"cnpj":      command.Cnpj,
	})

	result, err := c.handler.Handle(ctx, application.NewCreateCompanyCommand(command))
	if err != nil {
		// Falha de infraestrutura: a mensagem não é confirmada e a execução
		// atual termina; o broker reentrega após reconexão.
		msg.Nack()
		return fmt.Errorf("handling import command for cnpj %s: %w", command.Cnpj, err)
	}

	if result.IsFailure() {
		pkgApp.LogInfo(ctx, c.logger, "importação de empresa rejeitada", map[string]interface{}{
			"cnpj":          command.Cnpj,
			"notifications": result.Notifications,
		})
	} else {
		pkgApp.LogInfo(ctx, c.logger, "empresa importada", map[string]interface{}{
			"cnpj": command.Cnpj,
			"id":   result.Data.ID,
		})
	}

	// Confirmação após o retorno do manipulador, qualquer que seja o
	// desfecho de negócio.
	msg.Ack()
	return nil
}
