package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/internal/company/domain"
)

// AddressModel é a forma de transporte do endereço; complemento é opcional.
type AddressModel struct {
	PostalCode   string `json:"postalCode" validate:"required"`
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Country      string `json:"country" validate:"required"`
}

func (m AddressModel) toDomain() domain.Address {
	return domain.Address{
		PostalCode:   m.PostalCode,
		Street:       m.Street,
		Number:       m.Number,
		Complement:   m.Complement,
		Neighborhood: m.Neighborhood,
		City:         m.City,
		State:        m.State,
		Country:      m.Country,
	}
}

func newAddressModel(address domain.Address) AddressModel {
	return AddressModel{
		PostalCode:   address.PostalCode,
		Street:       address.Street,
		Number:       address.Number,
		Complement:   address.Complement,
		Neighborhood: address.Neighborhood,
		City:         address.City,
		State:        address.State,
		Country:      address.Country,
	}
}

type PhoneModel struct {
	CountryCode string `json:"countryCode" validate:"required,numeric"`
	Number      string `json:"number" validate:"required,numeric,min=8"`
}

func (m PhoneModel) toDomain() domain.Phone {
	return domain.NewPhone(m.CountryCode, m.Number)
}

func phonesToDomain(models []PhoneModel) []domain.Phone {
	phones := make([]domain.Phone, 0, len(models))
	for _, model := range models {
		phones = append(phones, model.toDomain())
	}
	return phones
}

type CompanyPartnerModel struct {
	PartnerID       uuid.UUID `json:"partnerId" validate:"required"`
	QualificationID int       `json:"qualificationId" validate:"required,gt=0"`
	JoinedAt        time.Time `json:"joinedAt" validate:"required"`
}

// CompanyDetails é o payload de sucesso devolvido pelos manipuladores.
type CompanyDetails struct {
	ID             uuid.UUID             `json:"id"`
	Cnpj           string                `json:"cnpj"`
	Name           string                `json:"name"`
	LegalNature    string                `json:"legalNature"`
	MainActivityID int                   `json:"mainActivityId"`
	Address        AddressModel          `json:"address"`
	Partners       []CompanyPartnerModel `json:"partners"`
	Phones         []PhoneModel          `json:"phones"`
	IsOperational  bool                  `json:"isOperational"`
}

func NewCompanyDetails(company *domain.Company) CompanyDetails {
	partners := make([]CompanyPartnerModel, 0, len(company.Partners))
	for _, link := range company.Partners {
		partners = append(partners, CompanyPartnerModel{
			PartnerID:       link.PartnerID,
			QualificationID: link.QualificationID,
			JoinedAt:        link.JoinedAt,
		})
	}

	phones := make([]PhoneModel, 0, len(company.Phones))
	for _, phone := range company.Phones {
		phones = append(phones, PhoneModel{CountryCode: phone.CountryCode, Number: phone.Number})
	}

	return CompanyDetails{
		ID:             company.ID,
		Cnpj:           company.Cnpj.String(),
		Name:           company.Name,
		LegalNature:    string(company.LegalNature),
		MainActivityID: company.MainActivityID,
		Address:        newAddressModel(company.Address),
		Partners:       partners,
		Phones:         phones,
		IsOperational:  company.IsOperational,
	}
}
