package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/internal/partner/domain"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

// PartnerDetails é o payload de sucesso dos manipuladores de sócio.
type PartnerDetails struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

func NewPartnerDetails(partner *domain.Partner) PartnerDetails {
	return PartnerDetails{
		ID:        partner.ID,
		FirstName: partner.Name.FirstName,
		LastName:  partner.Name.LastName,
		Email:     partner.Email.String(),
	}
}

type createPartnerHandler struct {
	validator   pkgApp.CommandValidator[CreatePartnerData]
	partners    domain.PartnerRepository
	unitOfWork  pkgDomain.UnitOfWork
	idGenerator pkgDomain.IDGenerator[uuid.UUID]
	logger      pkgApp.AppLogger
}

// Handle cadastra um sócio; o email é único no sistema.
func (h *createPartnerHandler) Handle(ctx context.Context, command pkgDomain.Command[CreatePartnerData]) (pkgDomain.Result[PartnerDetails], error) {
	if ctx.Err() != nil {
		return pkgDomain.Result[PartnerDetails]{}, ctx.Err()
	}

	ctx = h.unitOfWork.Begin(ctx)

	data := command.Payload()

	if notifications := h.validator.Validate(ctx, data); len(notifications) > 0 {
		return pkgDomain.Failure[PartnerDetails](notifications...), nil
	}

	email := domain.NewEmail(data.Email)

	duplicated, err := h.partners.IsDuplicatedEmail(ctx, email)
	if err != nil {
		return pkgDomain.Result[PartnerDetails]{}, err
	}
	if duplicated {
		return pkgDomain.Failure[PartnerDetails](domain.EmailAlreadyExists(email)), nil
	}

	result := domain.Create(h.idGenerator(), domain.NewCompleteName(data.FirstName, data.LastName), email)
	if result.IsFailure() {
		return pkgDomain.Failure[PartnerDetails](result.Notifications...), nil
	}
	partner := result.Data

	if err := h.partners.Add(ctx, partner); err != nil {
		pkgApp.LogError(ctx, h.logger, "erro ao adicionar sócio", err, map[string]interface{}{"email": email})
		return pkgDomain.Result[PartnerDetails]{}, err
	}
	if err := h.unitOfWork.Commit(ctx); err != nil {
		return pkgDomain.Result[PartnerDetails]{}, err
	}

	pkgApp.LogInfo(ctx, h.logger, "sócio cadastrado", map[string]interface{}{"id": partner.ID})
	return pkgDomain.Success(NewPartnerDetails(partner)), nil
}

func NewCreatePartnerHandler(
	validator pkgApp.CommandValidator[CreatePartnerData],
	partners domain.PartnerRepository,
	unitOfWork pkgDomain.UnitOfWork,
	idGenerator pkgDomain.IDGenerator[uuid.UUID],
	logger pkgApp.AppLogger,
) pkgApp.CommandHandler[pkgDomain.Command[CreatePartnerData], CreatePartnerData, PartnerDetails] {
	return &createPartnerHandler{
		validator:   validator,
		partners:    partners,
		unitOfWork:  unitOfWork,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

type removePartnerHandler struct {
	partners   domain.PartnerRepository
	unitOfWork pkgDomain.UnitOfWork
	logger     pkgApp.AppLogger
}

func (h *removePartnerHandler) Handle(ctx context.Context, command pkgDomain.Command[RemovePartnerData]) (pkgDomain.Result[PartnerDetails], error) {
	if ctx.Err() != nil {
		return pkgDomain.Result[PartnerDetails]{}, ctx.Err()
	}

	ctx = h.unitOfWork.Begin(ctx)

	data := command.Payload()

	partner, err := h.partners.GetByID(ctx, data.PartnerID)
	if err != nil {
		return pkgDomain.Result[PartnerDetails]{}, err
	}
	if partner == nil {
		return pkgDomain.Failure[PartnerDetails](domain.PartnerNotFound(data.PartnerID)), nil
	}

	if err := h.partners.Remove(ctx, partner); err != nil {
		pkgApp.LogError(ctx, h.logger, "erro ao remover sócio", err, map[string]interface{}{"id": partner.ID})
		return pkgDomain.Result[PartnerDetails]{}, err
	}
	if err := h.unitOfWork.Commit(ctx); err != nil {
		return pkgDomain.Result[PartnerDetails]{}, err
	}

	pkgApp.LogInfo(ctx, h.logger, "sócio removido", map[string]interface{}{"id": partner.ID})
	return pkgDomain.Success(NewPartnerDetails(partner)), nil
}

func NewRemovePartnerHandler(
	partners domain.PartnerRepository,
	unitOfWork pkgDomain.UnitOfWork,
	logger pkgApp.AppLogger,
) pkgApp.CommandHandler[pkgDomain.Command[RemovePartnerData], RemovePartnerData, PartnerDetails] {
	return &removePartnerHandler{
		partners:   partners,
		unitOfWork: unitOfWork,
		logger:     logger,
	}
}
