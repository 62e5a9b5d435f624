package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-companies/internal/company/domain"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{}) {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}

func newCompany(t *testing.T, cnpj, name string) *domain.Company {
	t.Helper()

	result := domain.Create(uuid.New(), domain.NewCnpj(cnpj), name, domain.LegalNatureLTDA, 6201, domain.Address{
		PostalCode:   "01310100",
		Street:       "Avenida Paulista",
		Number:       "1578",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
		Country:      "BR",
	})
	require.True(t, result.IsSuccess())
	return result.Data
}

func TestInMemoryCompanyRepository(t *testing.T) {
	ctx := context.Background()
	repository := NewInMemoryCompanyRepository(nopLogger{})
	company := newCompany(t, "11222333000181", "Acme Ltda")

	require.NoError(t, repository.Add(ctx, company))

	t.Run("GetByID", func(t *testing.T) {
		found, err := repository.GetByID(ctx, company.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, company.Cnpj, found.Cnpj)
	})

	t.Run("GetByID ausente devolve nil sem erro", func(t *testing.T) {
		found, err := repository.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("GetByCnpj", func(t *testing.T) {
		found, err := repository.GetByCnpj(ctx, domain.NewCnpj("11.222.333/0001-81"))
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, company.ID, found.ID)
	})

	t.Run("AnyByCnpj e AnyByName", func(t *testing.T) {
		inUse, err := repository.AnyByCnpj(ctx, company.Cnpj)
		require.NoError(t, err)
		assert.True(t, inUse)

		inUse, err = repository.AnyByName(ctx, "Acme Ltda")
		require.NoError(t, err)
		assert.True(t, inUse)

		inUse, err = repository.AnyByName(ctx, "Outra Empresa")
		require.NoError(t, err)
		assert.False(t, inUse)
	})

	t.Run("Update", func(t *testing.T) {
		loaded, err := repository.GetByID(ctx, company.ID)
		require.NoError(t, err)
		require.True(t, loaded.AddPartner(uuid.New(), 49, time.Now()).IsSuccess())

		require.NoError(t, repository.Update(ctx, loaded))

		reloaded, err := repository.GetByID(ctx, company.ID)
		require.NoError(t, err)
		assert.Len(t, reloaded.Partners, 1)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, repository.Remove(ctx, company))

		found, err := repository.GetByID(ctx, company.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestInMemoryCompanyRepositoryClonesAggregate(t *testing.T) {
	ctx := context.Background()
	repository := NewInMemoryCompanyRepository(nopLogger{})
	company := newCompany(t, "11222333000181", "Acme Ltda")
	require.NoError(t, repository.Add(ctx, company))

	loaded, err := repository.GetByID(ctx, company.ID)
	require.NoError(t, err)

	// Mutação no clone não vaza para o estado guardado.
	require.True(t, loaded.AddPartner(uuid.New(), 49, time.Now()).IsSuccess())

	reloaded, err := repository.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Partners)
}
