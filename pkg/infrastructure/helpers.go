package infrastructure

import (
	"context"

	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/pkg/domain"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

// NoopUnitOfWork atende o contrato de unidade de trabalho para os repositórios
// em memória, que aplicam as mudanças imediatamente.
type NoopUnitOfWork struct{}

func NewNoopUnitOfWork() *NoopUnitOfWork {
	return &NoopUnitOfWork{}
}

func (u *NoopUnitOfWork) Begin(ctx context.Context) context.Context {
	return ctx
}

func (u *NoopUnitOfWork) Commit(ctx context.Context) error {
	return ctx.Err()
}

var _ domain.UnitOfWork = (*NoopUnitOfWork)(nil)
