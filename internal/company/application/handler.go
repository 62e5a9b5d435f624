package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/internal/company/domain"
	partnerDomain "github.com/mateusmacedo/go-companies/internal/partner/domain"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

type createCompanyHandler struct {
	validator   pkgApp.CommandValidator[CreateCompanyData]
	companies   domain.CompanyRepository
	partners    partnerDomain.PartnerRepository
	unitOfWork  pkgDomain.UnitOfWork
	idGenerator pkgDomain.IDGenerator[uuid.UUID]
	logger      pkgApp.AppLogger
}

// Handle cadastra uma empresa. Cnpj e nome são únicos no sistema e todo
// sócio informado precisa existir antes do vínculo.
func (h *createCompanyHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateCompanyData]) (pkgDomain.Result[CompanyDetails], error) {
	if ctx.Err() != nil {
		return pkgDomain.Result[CompanyDetails]{}, ctx.Err()
	}

	ctx = h.unitOfWork.Begin(ctx)

	data := command.Payload()

	if notifications := h.validator.Validate(ctx, data); len(notifications) > 0 {
		return pkgDomain.Failure[CompanyDetails](notifications...), nil
	}

	cnpj := domain.NewCnpj(data.Cnpj)

	cnpjInUse, err := h.companies.AnyByCnpj(ctx, cnpj)
	if err != nil {
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if cnpjInUse {
		return pkgDomain.Failure[CompanyDetails](domain.CompanyCnpjAlreadyExists(cnpj)), nil
	}

	nameInUse, err := h.companies.AnyByName(ctx, data.Name)
	if err != nil {
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if nameInUse {
		return pkgDomain.Failure[CompanyDetails](domain.CompanyNameAlreadyExists(data.Name)), nil
	}

	for _, partner := range data.Partners {
		exists, err := h.partners.AnyPartnerByID(ctx, partner.PartnerID)
		if err != nil {
			return pkgDomain.Result[CompanyDetails]{}, err
		}
		if !exists {
			return pkgDomain.Failure[CompanyDetails](domain.PartnerNotFound(partner.PartnerID)), nil
		}
	}

	result := domain.Create(
		h.idGenerator(),
		cnpj,
		data.Name,
		domain.LegalNature(data.LegalNature),
		data.MainActivityID,
		data.Address.toDomain(),
	)
	if result.IsFailure() {
		return pkgDomain.Failure[CompanyDetails](result.Notifications...), nil
	}
	company := result.Data

	for _, partner := range data.Partners {
		if linked := company.AddPartner(partner.PartnerID, partner.QualificationID, partner.JoinedAt); linked.IsFailure() {
			return pkgDomain.Failure[CompanyDetails](linked.Notifications...), nil
		}
	}
	for _, phone := range data.Phones {
		if added := company.AddPhone(phone.toDomain()); added.IsFailure() {
			return pkgDomain.Failure[CompanyDetails](added.Notifications...), nil
		}
	}

	if err := h.companies.Add(ctx, company); err != nil {
		pkgApp.LogError(ctx, h.logger, "erro ao adicionar empresa", err, map[string]interface{}{"cnpj": cnpj})
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if err := h.unitOfWork.Commit(ctx); err != nil {
		pkgApp.LogError(ctx, h.logger, "erro ao efetivar cadastro de empresa", err, map[string]interface{}{"cnpj": cnpj})
		return pkgDomain.Result[CompanyDetails]{}, err
	}

	pkgApp.LogInfo(ctx, h.logger, "empresa cadastrada", map[string]interface{}{"id": company.ID, "cnpj": cnpj})
	return pkgDomain.Success(NewCompanyDetails(company)), nil
}

func NewCreateCompanyHandler(
	validator pkgApp.CommandValidator[CreateCompanyData],
	companies domain.CompanyRepository,
	partners partnerDomain.PartnerRepository,
	unitOfWork pkgDomain.UnitOfWork,
	idGenerator pkgDomain.IDGenerator[uuid.UUID],
	logger pkgApp.AppLogger,
) pkgApp.CommandHandler[pkgDomain.Command[CreateCompanyData], CreateCompanyData, CompanyDetails] {
	return &createCompanyHandler{
		validator:   validator,
		companies:   companies,
		partners:    partners,
		unitOfWork:  unitOfWork,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

type updateCompanyHandler struct {
	validator  pkgApp.CommandValidator[UpdateCompanyData]
	companies  domain.CompanyRepository
	unitOfWork pkgDomain.UnitOfWork
	logger     pkgApp.AppLogger
}

func (h *updateCompanyHandler) Handle(ctx context.Context, command pkgDomain.Command[UpdateCompanyData]) (pkgDomain.Result[CompanyDetails], error) {
	if ctx.Err() != nil {
		return pkgDomain.Result[CompanyDetails]{}, ctx.Err()
	}

	ctx = h.unitOfWork.Begin(ctx)

	data := command.Payload()

	if notifications := h.validator.Validate(ctx, data); len(notifications) > 0 {
		return pkgDomain.Failure[CompanyDetails](notifications...), nil
	}

	company, err := h.companies.GetByID(ctx, data.CompanyID)
	if err != nil {
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if company == nil {
		return pkgDomain.Failure[CompanyDetails](domain.CompanyNotFound(data.CompanyID)), nil
	}

	if company.Name != data.Name {
		nameInUse, err := h.companies.AnyByName(ctx, data.Name)
		if err != nil {
			return pkgDomain.Result[CompanyDetails]{}, err
		}
		if nameInUse {
			return pkgDomain.Failure[CompanyDetails](domain.CompanyNameAlreadyExists(data.Name)), nil
		}
	}

	result := company.Update(
		data.Name,
		domain.LegalNature(data.LegalNature),
		data.MainActivityID,
		data.Address.toDomain(),
		phonesToDomain(data.Phones),
	)
	if result.IsFailure() {
		return pkgDomain.Failure[CompanyDetails](result.Notifications...), nil
	}

	if err := h.companies.Update(ctx, company); err != nil {
		pkgApp.LogError(ctx, h.logger, "erro ao atualizar empresa", err, map[string]interface{}{"id": company.ID})
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if err := h.unitOfWork.Commit(ctx); err != nil {
		return pkgDomain.Result[CompanyDetails]{}, err
	}

	pkgApp.LogInfo(ctx, h.logger, "empresa atualizada", map[string]interface{}{"id": company.ID})
	return pkgDomain.Success(NewCompanyDetails(company)), nil
}

func NewUpdateCompanyHandler(
	validator pkgApp.CommandValidator[UpdateCompanyData],
	companies domain.CompanyRepository,
	unitOfWork pkgDomain.UnitOfWork,
	logger pkgApp.AppLogger,
) pkgApp.CommandHandler[pkgDomain.Command[UpdateCompanyData], UpdateCompanyData, CompanyDetails] {
	return &updateCompanyHandler{
		validator:  validator,
		companies:  companies,
		unitOfWork: unitOfWork,
		logger:     logger,
	}
}

type removeCompanyHandler struct {
	companies  domain.CompanyRepository
	unitOfWork pkgDomain.UnitOfWork
	logger     pkgApp.AppLogger
}

func (h *removeCompanyHandler) Handle(ctx context.Context, command pkgDomain.Command[RemoveCompanyData]) (pkgDomain.Result[CompanyDetails], error) {
	if ctx.Err() != nil {
		return pkgDomain.Result[CompanyDetails]{}, ctx.Err()
	}

	ctx = h.unitOfWork.Begin(ctx)

	data := command.Payload()

	company, err := h.companies.GetByID(ctx, data.CompanyID)
	if err != nil {
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if company == nil {
		return pkgDomain.Failure[CompanyDetails](domain.CompanyNotFound(data.CompanyID)), nil
	}

	if err := h.companies.Remove(ctx, company); err != nil {
		pkgApp.LogError(ctx, h.logger, "erro ao remover empresa", err, map[string]interface{}{"id": company.ID})
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if err := h.unitOfWork.Commit(ctx); err != nil {
		return pkgDomain.Result[CompanyDetails]{}, err
	}

	pkgApp.LogInfo(ctx, h.logger, "empresa removida", map[string]interface{}{"id": company.ID})
	return pkgDomain.Success(NewCompanyDetails(company)), nil
}

func NewRemoveCompanyHandler(
	companies domain.CompanyRepository,
	unitOfWork pkgDomain.UnitOfWork,
	logger pkgApp.AppLogger,
) pkgApp.CommandHandler[pkgDomain.Command[RemoveCompanyData], RemoveCompanyData, CompanyDetails] {
	return &removeCompanyHandler{
		companies:  companies,
		unitOfWork: unitOfWork,
		logger:     logger,
	}
}

type addPartnerInCompanyHandler struct {
	validator  pkgApp.CommandValidator[AddPartnerInCompanyData]
	companies  domain.CompanyRepository
	partners   partnerDomain.PartnerRepository
	unitOfWork pkgDomain.UnitOfWork
	logger     pkgApp.AppLogger
}

// Handle vincula um sócio existente a uma empresa existente. O vínculo é
// recusado quando o sócio já participa da empresa.
func (h *addPartnerInCompanyHandler) Handle(ctx context.Context, command pkgDomain.Command[AddPartnerInCompanyData]) (pkgDomain.Result[CompanyDetails], error) {
	if ctx.Err() != nil {
		return pkgDomain.Result[CompanyDetails]{}, ctx.Err()
	}

	ctx = h.unitOfWork.Begin(ctx)

	data := command.Payload()

	if notifications := h.validator.Validate(ctx, data); len(notifications) > 0 {
		return pkgDomain.Failure[CompanyDetails](notifications...), nil
	}

	company, err := h.companies.GetByID(ctx, data.CompanyID)
	if err != nil {
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if company == nil {
		return pkgDomain.Failure[CompanyDetails](domain.CompanyNotFound(data.CompanyID)), nil
	}

	partnerExists, err := h.partners.AnyPartnerByID(ctx, data.PartnerID)
	if err != nil {
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if !partnerExists {
		return pkgDomain.Failure[CompanyDetails](domain.PartnerNotFound(data.PartnerID)), nil
	}

	result := company.AddPartner(data.PartnerID, data.QualificationID, data.JoinedAt)
	if result.IsFailure() {
		return pkgDomain.Failure[CompanyDetails](result.Notifications...), nil
	}

	if err := h.companies.Update(ctx, company); err != nil {
		pkgApp.LogError(ctx, h.logger, "erro ao vincular sócio", err, map[string]interface{}{
			"companyId": company.ID,
			"partnerId": data.PartnerID,
		})
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if err := h.unitOfWork.Commit(ctx); err != nil {
		return pkgDomain.Result[CompanyDetails]{}, err
	}

	pkgApp.LogInfo(ctx, h.logger, "sócio vinculado", map[string]interface{}{
		"companyId": company.ID,
		"partnerId": data.PartnerID,
	})
	return pkgDomain.Success(NewCompanyDetails(company)), nil
}

func NewAddPartnerInCompanyHandler(
	validator pkgApp.CommandValidator[AddPartnerInCompanyData],
	companies domain.CompanyRepository,
	partners partnerDomain.PartnerRepository,
	unitOfWork pkgDomain.UnitOfWork,
	logger pkgApp.AppLogger,
) pkgApp.CommandHandler[pkgDomain.Command[AddPartnerInCompanyData], AddPartnerInCompanyData, CompanyDetails] {
	return &addPartnerInCompanyHandler{
		validator:  validator,
		companies:  companies,
		partners:   partners,
		unitOfWork: unitOfWork,
		logger:     logger,
	}
}

type removePartnerFromCompanyHandler struct {
	companies  domain.CompanyRepository
	unitOfWork pkgDomain.UnitOfWork
	logger     pkgApp.AppLogger
}

func (h *removePartnerFromCompanyHandler) Handle(ctx context.Context, command pkgDomain.Command[RemovePartnerFromCompanyData]) (pkgDomain.Result[CompanyDetails], error) {
	if ctx.Err() != nil {
		return pkgDomain.Result[CompanyDetails]{}, ctx.Err()
	}

	ctx = h.unitOfWork.Begin(ctx)

	data := command.Payload()

	company, err := h.companies.GetByID(ctx, data.CompanyID)
	if err != nil {
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if company == nil {
		return pkgDomain.Failure[CompanyDetails](domain.CompanyNotFound(data.CompanyID)), nil
	}

	result := company.RemovePartner(data.PartnerID)
	if result.IsFailure() {
		return pkgDomain.Failure[CompanyDetails](result.Notifications...), nil
	}

	if err := h.companies.Update(ctx, company); err != nil {
		pkgApp.LogError(ctx, h.logger, "erro ao desvincular sócio", err, map[string]interface{}{
			"companyId": company.ID,
			"partnerId": data.PartnerID,
		})
		return pkgDomain.Result[CompanyDetails]{}, err
	}
	if err := h.unitOfWork.Commit(ctx); err != nil {
		return pkgDomain.Result[CompanyDetails]{}, err
	}

	pkgApp.LogInfo(ctx, h.logger, "sócio desvinculado", map[string]interface{}{
		"companyId": company.ID,
		"partnerId": data.PartnerID,
	})
	return pkgDomain.Success(NewCompanyDetails(company)), nil
}

func NewRemovePartnerFromCompanyHandler(
	companies domain.CompanyRepository,
	unitOfWork pkgDomain.UnitOfWork,
	logger pkgApp.AppLogger,
) pkgApp.CommandHandler[pkgDomain.Command[RemovePartnerFromCompanyData], RemovePartnerFromCompanyData, CompanyDetails] {
	return &removePartnerFromCompanyHandler{
		companies:  companies,
		unitOfWork: unitOfWork,
		logger:     logger,
	}
}
