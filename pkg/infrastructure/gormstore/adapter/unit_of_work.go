package adapter

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/mateusmacedo/go-companies/pkg/domain"
)

// ErrScopeNotStarted indica uso da unidade de trabalho fora de um escopo
// aberto por Begin.
var ErrScopeNotStarted = errors.New("unit of work scope was not started")

type scopeKey struct{}

// scope acumula as operações de escrita de uma única invocação.
type scope struct {
	mu  sync.Mutex
	ops []func(tx *gorm.DB) error
}

func (s *scope) add(op func(tx *gorm.DB) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, op)
}

func (s *scope) drain() []func(tx *gorm.DB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ops := s.ops
	s.ops = nil
	return ops
}

// GormUnitOfWork aplica em uma única transação as escritas registradas pelos
// repositórios no escopo do contexto. Cada invocação de manipulador abre o
// próprio escopo via Begin; os repositórios gorm não tocam o banco fora dele.
type GormUnitOfWork struct {
	db *gorm.DB
}

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Begin deriva um contexto com um escopo de escrita novo e vazio.
func (u *GormUnitOfWork) Begin(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey{}, &scope{})
}

// Register enfileira uma operação de escrita no escopo do contexto.
func (u *GormUnitOfWork) Register(ctx context.Context, op func(tx *gorm.DB) error) error {
	current, ok := ctx.Value(scopeKey{}).(*scope)
	if !ok {
		return ErrScopeNotStarted
	}
	current.add(op)
	return nil
}

func (u *GormUnitOfWork) Commit(ctx context.Context) error {
	current, ok := ctx.Value(scopeKey{}).(*scope)
	if !ok {
		return ErrScopeNotStarted
	}

	ops := current.drain()
	if len(ops) == 0 {
		return ctx.Err()
	}

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
}

var _ domain.UnitOfWork = (*GormUnitOfWork)(nil)
