package infrastructure

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/internal/partner/domain"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
)

// InMemoryPartnerRepository é uma implementação em memória do repositório de
// sócios, usada em desenvolvimento local e nos testes.
type InMemoryPartnerRepository struct {
	mu     sync.RWMutex
	data   map[uuid.UUID]domain.Partner
	logger pkgApp.AppLogger
}

func NewInMemoryPartnerRepository(logger pkgApp.AppLogger) *InMemoryPartnerRepository {
	return &InMemoryPartnerRepository{
		data:   make(map[uuid.UUID]domain.Partner),
		logger: logger,
	}
}

func (r *InMemoryPartnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	partner, exists := r.data[id]
	if !exists {
		return nil, nil
	}
	return &partner, nil
}

func (r *InMemoryPartnerRepository) AnyPartnerByID(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.data[id]
	return exists, nil
}

func (r *InMemoryPartnerRepository) IsDuplicatedEmail(ctx context.Context, email domain.Email) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, partner := range r.data {
		if partner.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryPartnerRepository) Add(ctx context.Context, partner *domain.Partner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[partner.ID] = *partner
	pkgApp.LogDebug(ctx, r.logger, "sócio adicionado ao repositório", map[string]interface{}{"id": partner.ID})
	return nil
}

func (r *InMemoryPartnerRepository) Remove(ctx context.Context, partner *domain.Partner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, partner.ID)
	return nil
}

var _ domain.PartnerRepository = (*InMemoryPartnerRepository)(nil)
