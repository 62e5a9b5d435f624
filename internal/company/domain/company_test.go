package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

func validAddress() Address {
	return Address{
		PostalCode:   "01310100",
		Street:       "Avenida Paulista",
		Number:       "1578",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
		Country:      "BR",
	}
}

func validCompany(t *testing.T) *Company {
	t.Helper()

	result := Create(uuid.New(), NewCnpj("11.222.333/0001-81"), "Acme Ltda", LegalNatureLTDA, 6201, validAddress())
	require.True(t, result.IsSuccess())
	return result.Data
}

func TestCreateCompany(t *testing.T) {
	result := Create(uuid.New(), NewCnpj("11.222.333/0001-81"), "Acme Ltda", LegalNatureLTDA, 6201, validAddress())

	require.True(t, result.IsSuccess())
	company := result.Data
	assert.Equal(t, Cnpj("11222333000181"), company.Cnpj)
	assert.Equal(t, "Acme Ltda", company.Name)
	assert.Empty(t, company.Partners)
	assert.Empty(t, company.Phones)
	assert.False(t, company.IsOperational)
}

func TestCreateCompanyCollectsEveryViolation(t *testing.T) {
	result := Create(uuid.New(), NewCnpj("123"), "  ", LegalNature("INVALIDA"), 0, Address{})

	require.True(t, result.IsFailure())
	assert.True(t, result.Contains(pkgDomain.NewNotification("Cnpj", "cnpj must have 14 digits")))
	assert.True(t, result.Contains(pkgDomain.NewNotification("Name", "name is required")))
	assert.True(t, result.Contains(pkgDomain.NewNotification("LegalNature", "legal nature is invalid")))
	assert.True(t, result.Contains(pkgDomain.NewNotification("MainActivityId", "main activity id must be positive")))
	assert.True(t, result.Contains(pkgDomain.NewNotification("Address.City", "field is required")))
	assert.Len(t, result.Notifications, 11)
}

func TestCreateCompanyAddressComplementIsOptional(t *testing.T) {
	address := validAddress()
	address.Complement = ""

	result := Create(uuid.New(), NewCnpj("11222333000181"), "Acme Ltda", LegalNatureLTDA, 6201, address)

	assert.True(t, result.IsSuccess())
}

func TestIsOperationalLifecycle(t *testing.T) {
	company := validCompany(t)
	partnerID := uuid.New()
	phone := NewPhone("55", "11987654321")

	assert.False(t, company.IsOperational)

	require.True(t, company.AddPartner(partnerID, 49, time.Now()).IsSuccess())
	assert.False(t, company.IsOperational, "sócio sem telefone não torna a empresa operante")

	require.True(t, company.AddPhone(phone).IsSuccess())
	assert.True(t, company.IsOperational)

	require.True(t, company.RemovePhone(phone).IsSuccess())
	assert.False(t, company.IsOperational)

	require.True(t, company.AddPhone(phone).IsSuccess())
	require.True(t, company.RemovePartner(partnerID).IsSuccess())
	assert.False(t, company.IsOperational)
}

func TestAddPartnerTwiceFailsWithoutMutation(t *testing.T) {
	company := validCompany(t)
	partnerID := uuid.New()

	require.True(t, company.AddPartner(partnerID, 49, time.Now()).IsSuccess())

	result := company.AddPartner(partnerID, 22, time.Now())

	require.True(t, result.IsFailure())
	assert.True(t, result.Contains(PartnerAlreadyLinkedWithCompany()))
	assert.Len(t, company.Partners, 1)
	assert.Equal(t, 49, company.Partners[0].QualificationID)
}

func TestRemovePartnerNotLinked(t *testing.T) {
	company := validCompany(t)

	result := company.RemovePartner(uuid.New())

	require.True(t, result.IsFailure())
	assert.True(t, result.Contains(PartnerNotLinkedWithCompany()))
}

func TestAddPhoneDuplicated(t *testing.T) {
	company := validCompany(t)
	phone := NewPhone("55", "11987654321")

	require.True(t, company.AddPhone(phone).IsSuccess())

	result := company.AddPhone(phone)

	require.True(t, result.IsFailure())
	assert.True(t, result.Contains(PhoneAlreadyRegistered()))
	assert.Len(t, company.Phones, 1)
}

func TestAddPhoneInvalid(t *testing.T) {
	company := validCompany(t)

	result := company.AddPhone(NewPhone("55", "abc"))

	require.True(t, result.IsFailure())
	assert.Empty(t, company.Phones)
}

func TestRemovePhoneNotRegistered(t *testing.T) {
	company := validCompany(t)

	result := company.RemovePhone(NewPhone("55", "11987654321"))

	require.True(t, result.IsFailure())
	assert.True(t, result.Contains(PhoneNotRegistered()))
}

func TestUpdateCompany(t *testing.T) {
	company := validCompany(t)
	require.True(t, company.AddPartner(uuid.New(), 49, time.Now()).IsSuccess())

	newAddress := validAddress()
	newAddress.City = "Campinas"
	phones := []Phone{NewPhone("55", "1932223344")}

	result := company.Update("Acme Holding", LegalNatureSA, 6202, newAddress, phones)

	require.True(t, result.IsSuccess())
	assert.Equal(t, "Acme Holding", company.Name)
	assert.Equal(t, LegalNatureSA, company.LegalNature)
	assert.Equal(t, "Campinas", company.Address.City)
	assert.Equal(t, phones, company.Phones)
	assert.True(t, company.IsOperational, "sócio preservado e telefone novo mantêm a empresa operante")
}

func TestUpdateCompanyIsAtomic(t *testing.T) {
	company := validCompany(t)
	original := *company

	result := company.Update("", LegalNature("INVALIDA"), -1, Address{}, []Phone{NewPhone("x", "y")})

	require.True(t, result.IsFailure())
	assert.True(t, result.Contains(pkgDomain.NewNotification("Name", "name is required")))
	assert.Equal(t, original.Name, company.Name)
	assert.Equal(t, original.LegalNature, company.LegalNature)
	assert.Equal(t, original.Address, company.Address)
	assert.Empty(t, company.Phones)
}
