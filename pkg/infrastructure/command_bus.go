package infrastructure

import (
	"context"
	"errors"
	"sync"

	"github.com/mateusmacedo/go-companies/pkg/application"
	"github.com/mateusmacedo/go-companies/pkg/domain"
)

var ErrHandlerNotRegistered = errors.New("no handler registered for command")

type simpleCommandBus[C domain.Command[D], D any, R any] struct {
	handlers map[string]application.CommandHandler[C, D, R]
	mu       sync.RWMutex
}

// NewSimpleCommandBus cria um barramento de comandos em processo.
func NewSimpleCommandBus[C domain.Command[D], D any, R any]() application.CommandBus[C, D, R] {
	return &simpleCommandBus[C, D, R]{
		handlers: make(map[string]application.CommandHandler[C, D, R]),
	}
}

func (bus *simpleCommandBus[C, D, R]) RegisterHandler(commandName string, handler application.CommandHandler[C, D, R]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[commandName] = handler
}

func (bus *simpleCommandBus[C, D, R]) Dispatch(ctx context.Context, command C) (domain.Result[R], error) {
	bus.mu.RLock()
	handler, found := bus.handlers[command.CommandName()]
	bus.mu.RUnlock()

	if !found {
		var zero domain.Result[R]
		return zero, ErrHandlerNotRegistered
	}

	return handler.Handle(ctx, command)
}
