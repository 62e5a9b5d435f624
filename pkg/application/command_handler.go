package application

import (
	"context"

	"github.com/mateusmacedo/go-companies/pkg/domain"
)

// CommandHandler define a interface para manipuladores de comando.
// O Result carrega o desfecho de negócio (sucesso ou notificações); o error
// sinaliza apenas falhas de infraestrutura (repositório, commit).
type CommandHandler[C domain.Command[T], T any, R any] interface {
	Handle(ctx context.Context, command C) (domain.Result[R], error)
}

// CommandBus define a interface para o barramento de comandos.
type CommandBus[C domain.Command[T], T any, R any] interface {
	RegisterHandler(commandName string, handler CommandHandler[C, T, R])
	Dispatch(ctx context.Context, command C) (domain.Result[R], error)
}
