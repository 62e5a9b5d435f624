package company

import (
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/internal/company/application"
	"github.com/mateusmacedo/go-companies/internal/company/domain"
	"github.com/mateusmacedo/go-companies/internal/company/infrastructure"
	"github.com/mateusmacedo/go-companies/internal/importer"
	partnerDomain "github.com/mateusmacedo/go-companies/internal/partner/domain"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-companies/pkg/infrastructure"
	validation "github.com/mateusmacedo/go-companies/pkg/infrastructure/validation/adapter"
)

// CompanySlice monta os manipuladores de empresa, registra-os nos barramentos
// e expõe as rotas HTTP da fatia.
type CompanySlice struct {
	httpHandler *infrastructure.CompanyHTTPHandler
}

func NewCompanySlice(
	companies domain.CompanyRepository,
	partners partnerDomain.PartnerRepository,
	unitOfWork pkgDomain.UnitOfWork,
	idGenerator pkgDomain.IDGenerator[uuid.UUID],
	logger pkgApp.AppLogger,
	broker importer.Broker,
) *CompanySlice {
	createBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreateCompanyData], application.CreateCompanyData, application.CompanyDetails]()
	updateBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.UpdateCompanyData], application.UpdateCompanyData, application.CompanyDetails]()
	removeBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.RemoveCompanyData], application.RemoveCompanyData, application.CompanyDetails]()
	addPartnerBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.AddPartnerInCompanyData], application.AddPartnerInCompanyData, application.CompanyDetails]()
	removePartnerBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.RemovePartnerFromCompanyData], application.RemovePartnerFromCompanyData, application.CompanyDetails]()
	queryBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindCompanyByCnpjData], application.FindCompanyByCnpjData, *application.CompanyDetails]()

	createBus.RegisterHandler(application.CreateCompanyCommandName, application.NewCreateCompanyHandler(
		validation.NewCommandValidator[application.CreateCompanyData](),
		companies,
		partners,
		unitOfWork,
		idGenerator,
		logger,
	))
	updateBus.RegisterHandler(application.UpdateCompanyCommandName, application.NewUpdateCompanyHandler(
		validation.NewCommandValidator[application.UpdateCompanyData](),
		companies,
		unitOfWork,
		logger,
	))
	removeBus.RegisterHandler(application.RemoveCompanyCommandName, application.NewRemoveCompanyHandler(
		companies,
		unitOfWork,
		logger,
	))
	addPartnerBus.RegisterHandler(application.AddPartnerInCompanyCommandName, application.NewAddPartnerInCompanyHandler(
		validation.NewCommandValidator[application.AddPartnerInCompanyData](),
		companies,
		partners,
		unitOfWork,
		logger,
	))
	removePartnerBus.RegisterHandler(application.RemovePartnerFromCompanyCommandName, application.NewRemovePartnerFromCompanyHandler(
		companies,
		unitOfWork,
		logger,
	))
	queryBus.RegisterHandler(application.FindCompanyByCnpjQueryName, application.NewFindCompanyByCnpjHandler(companies, logger))

	httpHandler := infrastructure.NewCompanyHTTPHandler(
		createBus,
		updateBus,
		removeBus,
		addPartnerBus,
		removePartnerBus,
		queryBus,
		broker,
	)

	return &CompanySlice{
		httpHandler: httpHandler,
	}
}

func (s *CompanySlice) RegisterRoutes(router *chi.Mux) {
	s.httpHandler.RegisterRoutes(router)
}
