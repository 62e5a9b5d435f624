package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCnpjNormalizesPunctuation(t *testing.T) {
	tests := []struct {
		raw      string
		expected Cnpj
	}{
		{"11.222.333/0001-81", "11222333000181"},
		{"11222333000181", "11222333000181"},
		{"11 222 333 0001 81", "11222333000181"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NewCnpj(tt.raw))
	}
}

func TestCnpjValidate(t *testing.T) {
	assert.Empty(t, Cnpj("11222333000181").Validate())
	assert.Len(t, Cnpj("123").Validate(), 1)
	assert.Len(t, Cnpj("").Validate(), 1)
	assert.Len(t, Cnpj("112223330001812").Validate(), 1)
}

func TestPhoneValidate(t *testing.T) {
	assert.Empty(t, NewPhone("55", "11987654321").Validate())

	t.Run("número curto", func(t *testing.T) {
		notifications := NewPhone("55", "1234567").Validate()
		assert.Len(t, notifications, 1)
		assert.Equal(t, "Phone.Number", notifications[0].Key)
	})

	t.Run("código do país não numérico", func(t *testing.T) {
		notifications := NewPhone("BR", "11987654321").Validate()
		assert.Len(t, notifications, 1)
		assert.Equal(t, "Phone.CountryCode", notifications[0].Key)
	})

	t.Run("ambos inválidos", func(t *testing.T) {
		assert.Len(t, NewPhone("", "abc").Validate(), 2)
	})
}

func TestAddressValidate(t *testing.T) {
	assert.Empty(t, validAddress().Validate())

	t.Run("todos os obrigatórios ausentes", func(t *testing.T) {
		assert.Len(t, Address{}.Validate(), 7)
	})

	t.Run("complemento é opcional", func(t *testing.T) {
		address := validAddress()
		address.Complement = "Sala 42"
		assert.Empty(t, address.Validate())
	})

	t.Run("espaços não contam como preenchido", func(t *testing.T) {
		address := validAddress()
		address.Street = "   "
		notifications := address.Validate()
		assert.Len(t, notifications, 1)
		assert.Equal(t, "Address.Street", notifications[0].Key)
	})
}

func TestLegalNatureIsValid(t *testing.T) {
	for _, nature := range []LegalNature{
		LegalNatureEmpresarioIndividual,
		LegalNatureEIRELI,
		LegalNatureLTDA,
		LegalNatureSA,
		LegalNatureMEI,
	} {
		assert.True(t, nature.IsValid())
	}

	assert.False(t, LegalNature("").IsValid())
	assert.False(t, LegalNature("ltda").IsValid())
}
