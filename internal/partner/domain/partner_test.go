package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

func TestNewEmailNormalizes(t *testing.T) {
	assert.Equal(t, Email("maria.silva@example.com"), NewEmail("  Maria.Silva@Example.COM "))
}

func TestEmailValidate(t *testing.T) {
	assert.Empty(t, NewEmail("maria.silva@example.com").Validate())
	assert.Len(t, NewEmail("maria.silva").Validate(), 1)
	assert.Len(t, NewEmail("@example.com").Validate(), 1)
	assert.Len(t, NewEmail("").Validate(), 1)
}

func TestCompleteName(t *testing.T) {
	name := NewCompleteName(" Maria ", " Silva ")

	assert.Equal(t, "Maria", name.FirstName)
	assert.Equal(t, "Silva", name.LastName)
	assert.Equal(t, "Maria Silva", name.String())
	assert.Empty(t, name.Validate())
}

func TestCreatePartner(t *testing.T) {
	id := uuid.New()

	result := Create(id, NewCompleteName("Maria", "Silva"), NewEmail("maria.silva@example.com"))

	require.True(t, result.IsSuccess())
	assert.Equal(t, id, result.Data.ID)
	assert.Equal(t, Email("maria.silva@example.com"), result.Data.Email)
}

func TestCreatePartnerCollectsEveryViolation(t *testing.T) {
	result := Create(uuid.New(), NewCompleteName("", ""), NewEmail("not-an-email"))

	require.True(t, result.IsFailure())
	assert.True(t, result.Contains(pkgDomain.NewNotification("FirstName", "first name is required")))
	assert.True(t, result.Contains(pkgDomain.NewNotification("LastName", "last name is required")))
	assert.True(t, result.Contains(pkgDomain.NewNotification("Email", "email format is invalid")))
	assert.Len(t, result.Notifications, 3)
}
