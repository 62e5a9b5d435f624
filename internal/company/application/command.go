package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/pkg/domain"
)

// Nomes dos comandos registrados nos barramentos.
const (
	CreateCompanyCommandName            = "CreateCompany"
	UpdateCompanyCommandName            = "UpdateCompany"
	RemoveCompanyCommandName            = "RemoveCompany"
	AddPartnerInCompanyCommandName      = "AddPartnerInCompany"
	RemovePartnerFromCompanyCommandName = "RemovePartnerFromCompany"
)

// CreateCompanyData contém os dados para cadastrar uma empresa. É também o
// payload transportado pela fila de importação, serializado em JSON UTF-8.
type CreateCompanyData struct {
	Cnpj           string                `json:"cnpj" validate:"required"`
	Name           string                `json:"name" validate:"required"`
	LegalNature    string                `json:"legalNature" validate:"required"`
	MainActivityID int                   `json:"mainActivityId" validate:"required,gt=0"`
	Address        AddressModel          `json:"address"`
	Partners       []CompanyPartnerModel `json:"partners" validate:"dive"`
	Phones         []PhoneModel          `json:"phones" validate:"dive"`
}

type createCompanyCommand struct {
	data CreateCompanyData
}

func (c createCompanyCommand) CommandName() string {
	return CreateCompanyCommandName
}

func (c createCompanyCommand) Payload() CreateCompanyData {
	return c.data
}

// NewCreateCompanyCommand cria um novo comando de cadastro de empresa.
func NewCreateCompanyCommand(data CreateCompanyData) domain.Command[CreateCompanyData] {
	return createCompanyCommand{data: data}
}

// UpdateCompanyData substitui os campos mutáveis de uma empresa existente.
type UpdateCompanyData struct {
	CompanyID      uuid.UUID    `json:"companyId" validate:"required"`
	Name           string       `json:"name" validate:"required"`
	LegalNature    string       `json:"legalNature" validate:"required"`
	MainActivityID int          `json:"mainActivityId" validate:"required,gt=0"`
	Address        AddressModel `json:"address"`
	Phones         []PhoneModel `json:"phones" validate:"dive"`
}

type updateCompanyCommand struct {
	data UpdateCompanyData
}

func (c updateCompanyCommand) CommandName() string {
	return UpdateCompanyCommandName
}

func (c updateCompanyCommand) Payload() UpdateCompanyData {
	return c.data
}

func NewUpdateCompanyCommand(data UpdateCompanyData) domain.Command[UpdateCompanyData] {
	return updateCompanyCommand{data: data}
}

type RemoveCompanyData struct {
	CompanyID uuid.UUID `json:"companyId" validate:"required"`
}

type removeCompanyCommand struct {
	data RemoveCompanyData
}

func (c removeCompanyCommand) CommandName() string {
	return RemoveCompanyCommandName
}

func (c removeCompanyCommand) Payload() RemoveCompanyData {
	return c.data
}

func NewRemoveCompanyCommand(data RemoveCompanyData) domain.Command[RemoveCompanyData] {
	return removeCompanyCommand{data: data}
}

// AddPartnerInCompanyData vincula um sócio existente a uma empresa existente.
type AddPartnerInCompanyData struct {
	CompanyID       uuid.UUID `json:"companyId" validate:"required"`
	PartnerID       uuid.UUID `json:"partnerId" validate:"required"`
	QualificationID int       `json:"qualificationId" validate:"required,gt=0"`
	JoinedAt        time.Time `json:"joinedAt" validate:"required"`
}

type addPartnerInCompanyCommand struct {
	data AddPartnerInCompanyData
}

func (c addPartnerInCompanyCommand) CommandName() string {
	return AddPartnerInCompanyCommandName
}

func (c addPartnerInCompanyCommand) Payload() AddPartnerInCompanyData {
	return c.data
}

func NewAddPartnerInCompanyCommand(data AddPartnerInCompanyData) domain.Command[AddPartnerInCompanyData] {
	return addPartnerInCompanyCommand{data: data}
}

type RemovePartnerFromCompanyData struct {
	CompanyID uuid.UUID `json:"companyId" validate:"required"`
	PartnerID uuid.UUID `json:"partnerId" validate:"required"`
}

type removePartnerFromCompanyCommand struct {
	data RemovePartnerFromCompanyData
}

func (c removePartnerFromCompanyCommand) CommandName() string {
	return RemovePartnerFromCompanyCommandName
}

func (c removePartnerFromCompanyCommand) Payload() RemovePartnerFromCompanyData {
	return c.data
}

func NewRemovePartnerFromCompanyCommand(data RemovePartnerFromCompanyData) domain.Command[RemovePartnerFromCompanyData] {
	return removePartnerFromCompanyCommand{data: data}
}
