package infrastructure

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/internal/company/domain"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
)

// InMemoryCompanyRepository é uma implementação em memória do repositório de
// empresas, usada em desenvolvimento local e nos testes.
type InMemoryCompanyRepository struct {
	mu     sync.RWMutex
	data   map[uuid.UUID]domain.Company
	logger pkgApp.AppLogger
}

func NewInMemoryCompanyRepository(logger pkgApp.AppLogger) *InMemoryCompanyRepository {
	return &InMemoryCompanyRepository{
		data:   make(map[uuid.UUID]domain.Company),
		logger: logger,
	}
}

func (r *InMemoryCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	company, exists := r.data[id]
	if !exists {
		return nil, nil
	}
	clone := cloneCompany(company)
	return &clone, nil
}

func (r *InMemoryCompanyRepository) GetByCnpj(ctx context.Context, cnpj domain.Cnpj) (*domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, company := range r.data {
		if company.Cnpj == cnpj {
			clone := cloneCompany(company)
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *InMemoryCompanyRepository) AnyByCnpj(ctx context.Context, cnpj domain.Cnpj) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, company := range r.data {
		if company.Cnpj == cnpj {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryCompanyRepository) AnyByName(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, company := range r.data {
		if company.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryCompanyRepository) Add(ctx context.Context, company *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[company.ID] = cloneCompany(*company)
	pkgApp.LogDebug(ctx, r.logger, "empresa adicionada ao repositório", map[string]interface{}{"id": company.ID})
	return nil
}

func (r *InMemoryCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[company.ID] = cloneCompany(*company)
	return nil
}

func (r *InMemoryCompanyRepository) Remove(ctx context.Context, company *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, company.ID)
	return nil
}

// cloneCompany copia o agregado com suas coleções para evitar aliasing entre
// o mapa interno e os chamadores.
func cloneCompany(company domain.Company) domain.Company {
	company.Partners = append([]domain.PartnerLink(nil), company.Partners...)
	company.Phones = append([]domain.Phone(nil), company.Phones...)
	return company
}

var _ domain.CompanyRepository = (*InMemoryCompanyRepository)(nil)
