package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

// PartnerLink liga um sócio à empresa com a qualificação e a data de entrada.
// É filho do agregado: só existe e só muda através da Company.
type PartnerLink struct {
	CompanyID       uuid.UUID `json:"-" gorm:"type:uuid;primaryKey"`
	PartnerID       uuid.UUID `json:"partnerId" gorm:"type:uuid;primaryKey"`
	QualificationID int       `json:"qualificationId"`
	JoinedAt        time.Time `json:"joinedAt"`
}

// Company é a raiz do agregado de empresas. As coleções Partners e Phones são
// de posse exclusiva da raiz; IsOperational é derivado delas e recalculado em
// toda mutação.
type Company struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Cnpj           Cnpj          `json:"cnpj" gorm:"uniqueIndex"`
	Name           string        `json:"name" gorm:"uniqueIndex"`
	LegalNature    LegalNature   `json:"legalNature"`
	MainActivityID int           `json:"mainActivityId"`
	Address        Address       `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Partners       []PartnerLink `json:"partners" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Phones         []Phone       `json:"phones" gorm:"serializer:json"`
	IsOperational  bool          `json:"isOperational"`
}

// Create valida todos os campos de uma vez e devolve a empresa sem sócios e
// sem telefones (portanto inoperante). Qualquer violação impede a criação.
func Create(
	id uuid.UUID,
	cnpj Cnpj,
	name string,
	legalNature LegalNature,
	mainActivityID int,
	address Address,
) pkgDomain.Result[*Company] {
	var notifications []pkgDomain.Notification

	notifications = append(notifications, cnpj.Validate()...)
	if strings.TrimSpace(name) == "" {
		notifications = append(notifications, pkgDomain.NewNotification("Name", "name is required"))
	}
	if !legalNature.IsValid() {
		notifications = append(notifications, pkgDomain.NewNotification("LegalNature", "legal nature is invalid"))
	}
	if mainActivityID <= 0 {
		notifications = append(notifications, pkgDomain.NewNotification("MainActivityId", "main activity id must be positive"))
	}
	notifications = append(notifications, address.Validate()...)

	if len(notifications) > 0 {
		return pkgDomain.Failure[*Company](notifications...)
	}

	company := &Company{
		ID:             id,
		Cnpj:           cnpj,
		Name:           name,
		LegalNature:    legalNature,
		MainActivityID: mainActivityID,
		Address:        address,
	}
	company.refreshOperational()

	return pkgDomain.Success(company)
}

// AddPartner vincula um sócio. Um mesmo sócio aparece no máximo uma vez;
// vínculo duplicado falha sem mutação.
func (c *Company) AddPartner(partnerID uuid.UUID, qualificationID int, joinedAt time.Time) pkgDomain.Result[*Company] {
	if c.hasPartner(partnerID) {
		return pkgDomain.Failure[*Company](PartnerAlreadyLinkedWithCompany())
	}

	c.Partners = append(c.Partners, PartnerLink{
		CompanyID:       c.ID,
		PartnerID:       partnerID,
		QualificationID: qualificationID,
		JoinedAt:        joinedAt,
	})
	c.refreshOperational()

	return pkgDomain.Success(c)
}

func (c *Company) RemovePartner(partnerID uuid.UUID) pkgDomain.Result[*Company] {
	for i, link := range c.Partners {
		if link.PartnerID == partnerID {
			c.Partners = append(c.Partners[:i], c.Partners[i+1:]...)
			c.refreshOperational()
			return pkgDomain.Success(c)
		}
	}
	return pkgDomain.Failure[*Company](PartnerNotLinkedWithCompany())
}

func (c *Company) AddPhone(phone Phone) pkgDomain.Result[*Company] {
	if notifications := phone.Validate(); len(notifications) > 0 {
		return pkgDomain.Failure[*Company](notifications...)
	}
	for _, existing := range c.Phones {
		if existing == phone {
			return pkgDomain.Failure[*Company](PhoneAlreadyRegistered())
		}
	}

	c.Phones = append(c.Phones, phone)
	c.refreshOperational()

	return pkgDomain.Success(c)
}

func (c *Company) RemovePhone(phone Phone) pkgDomain.Result[*Company] {
	for i, existing := range c.Phones {
		if existing == phone {
			c.Phones = append(c.Phones[:i], c.Phones[i+1:]...)
			c.refreshOperational()
			return pkgDomain.Success(c)
		}
	}
	return pkgDomain.Failure[*Company](PhoneNotRegistered())
}

// Update substitui os campos mutáveis da empresa de forma atômica: ou todos
// os novos valores são válidos e aplicados, ou nada muda.
func (c *Company) Update(
	name string,
	legalNature LegalNature,
	mainActivityID int,
	address Address,
	phones []Phone,
) pkgDomain.Result[*Company] {
	var notifications []pkgDomain.Notification

	if strings.TrimSpace(name) == "" {
		notifications = append(notifications, pkgDomain.NewNotification("Name", "name is required"))
	}
	if !legalNature.IsValid() {
		notifications = append(notifications, pkgDomain.NewNotification("LegalNature", "legal nature is invalid"))
	}
	if mainActivityID <= 0 {
		notifications = append(notifications, pkgDomain.NewNotification("MainActivityId", "main activity id must be positive"))
	}
	notifications = append(notifications, address.Validate()...)
	for _, phone := range phones {
		notifications = append(notifications, phone.Validate()...)
	}

	if len(notifications) > 0 {
		return pkgDomain.Failure[*Company](notifications...)
	}

	c.Name = name
	c.LegalNature = legalNature
	c.MainActivityID = mainActivityID
	c.Address = address
	c.Phones = phones
	c.refreshOperational()

	return pkgDomain.Success(c)
}

func (c *Company) hasPartner(partnerID uuid.UUID) bool {
	for _, link := range c.Partners {
		if link.PartnerID == partnerID {
			return true
		}
	}
	return false
}

// refreshOperational recalcula o estado derivado a partir das coleções.
// Todo caminho de mutação termina aqui.
func (c *Company) refreshOperational() {
	c.IsOperational = len(c.Partners) > 0 && len(c.Phones) > 0
}

// CompanyRepository abstrai a persistência do agregado. GetByID devolve
// (nil, nil) quando a empresa não existe.
type CompanyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	GetByCnpj(ctx context.Context, cnpj Cnpj) (*Company, error)
	AnyByCnpj(ctx context.Context, cnpj Cnpj) (bool, error)
	AnyByName(ctx context.Context, name string) (bool, error)
	Add(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Remove(ctx context.Context, company *Company) error
}
