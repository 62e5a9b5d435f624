package domain

import (
	"strings"
	"unicode"

	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

// Cnpj é o identificador fiscal da empresa, armazenado normalizado
// (somente dígitos).
type Cnpj string

const cnpjLength = 14

// NewCnpj normaliza a entrada removendo a pontuação usual (00.000.000/0000-00).
func NewCnpj(raw string) Cnpj {
	var builder strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}
	return Cnpj(builder.String())
}

func (c Cnpj) String() string {
	return string(c)
}

func (c Cnpj) Validate() []pkgDomain.Notification {
	if len(c) != cnpjLength {
		return []pkgDomain.Notification{pkgDomain.NewNotification("Cnpj", "cnpj must have 14 digits")}
	}
	return nil
}

// Phone é um telefone da empresa: DDD + número do assinante.
type Phone struct {
	CountryCode string `json:"countryCode"`
	Number      string `json:"number"`
}

func NewPhone(countryCode, number string) Phone {
	return Phone{CountryCode: countryCode, Number: number}
}

func (p Phone) Validate() []pkgDomain.Notification {
	var notifications []pkgDomain.Notification
	if !isDigits(p.CountryCode) || p.CountryCode == "" {
		notifications = append(notifications, pkgDomain.NewNotification("Phone.CountryCode", "phone country code must be numeric"))
	}
	if !isDigits(p.Number) || len(p.Number) < 8 {
		notifications = append(notifications, pkgDomain.NewNotification("Phone.Number", "phone number must have at least 8 digits"))
	}
	return notifications
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Address é o endereço da empresa. Todos os campos são obrigatórios, exceto
// o complemento.
type Address struct {
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

func (a Address) Validate() []pkgDomain.Notification {
	var notifications []pkgDomain.Notification

	required := []struct {
		key   string
		value string
	}{
		{"Address.PostalCode", a.PostalCode},
		{"Address.Street", a.Street},
		{"Address.Number", a.Number},
		{"Address.Neighborhood", a.Neighborhood},
		{"Address.City", a.City},
		{"Address.State", a.State},
		{"Address.Country", a.Country},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			notifications = append(notifications, pkgDomain.NewNotification(field.key, "field is required"))
		}
	}
	return notifications
}
