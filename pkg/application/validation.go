package application

import (
	"context"

	"github.com/mateusmacedo/go-companies/pkg/domain"
)

// CommandValidator valida estruturalmente o payload de um comando e devolve
// uma notificação por regra violada, sem interromper na primeira.
type CommandValidator[T any] interface {
	Validate(ctx context.Context, payload T) []domain.Notification
}
