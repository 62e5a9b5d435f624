package infrastructure

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-companies/internal/partner/domain"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{}) {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}

func TestInMemoryPartnerRepository(t *testing.T) {
	ctx := context.Background()
	repository := NewInMemoryPartnerRepository(nopLogger{})

	created := domain.Create(uuid.New(), domain.NewCompleteName("Maria", "Silva"), domain.NewEmail("maria.silva@example.com"))
	require.True(t, created.IsSuccess())
	partner := created.Data

	require.NoError(t, repository.Add(ctx, partner))

	t.Run("GetByID", func(t *testing.T) {
		found, err := repository.GetByID(ctx, partner.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, partner.Email, found.Email)
	})

	t.Run("GetByID ausente devolve nil sem erro", func(t *testing.T) {
		found, err := repository.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("AnyPartnerByID", func(t *testing.T) {
		exists, err := repository.AnyPartnerByID(ctx, partner.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repository.AnyPartnerByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("IsDuplicatedEmail", func(t *testing.T) {
		duplicated, err := repository.IsDuplicatedEmail(ctx, domain.NewEmail("maria.silva@example.com"))
		require.NoError(t, err)
		assert.True(t, duplicated)

		duplicated, err = repository.IsDuplicatedEmail(ctx, domain.NewEmail("outra@example.com"))
		require.NoError(t, err)
		assert.False(t, duplicated)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, repository.Remove(ctx, partner))

		found, err := repository.GetByID(ctx, partner.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
