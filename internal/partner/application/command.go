package application

import (
	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/pkg/domain"
)

const (
	CreatePartnerCommandName = "CreatePartner"
	RemovePartnerCommandName = "RemovePartner"
)

// CreatePartnerData contém os dados para cadastrar um sócio.
type CreatePartnerData struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type createPartnerCommand struct {
	data CreatePartnerData
}

func (c createPartnerCommand) CommandName() string {
	return CreatePartnerCommandName
}

func (c createPartnerCommand) Payload() CreatePartnerData {
	return c.data
}

func NewCreatePartnerCommand(data CreatePartnerData) domain.Command[CreatePartnerData] {
	return createPartnerCommand{data: data}
}

type RemovePartnerData struct {
	PartnerID uuid.UUID `json:"partnerId" validate:"required"`
}

type removePartnerCommand struct {
	data RemovePartnerData
}

func (c removePartnerCommand) CommandName() string {
	return RemovePartnerCommandName
}

func (c removePartnerCommand) Payload() RemovePartnerData {
	return c.data
}

func NewRemovePartnerCommand(data RemovePartnerData) domain.Command[RemovePartnerData] {
	return removePartnerCommand{data: data}
}
