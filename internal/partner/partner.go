package partner

import (
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/internal/partner/application"
	"github.com/mateusmacedo/go-companies/internal/partner/domain"
	"github.com/mateusmacedo/go-companies/internal/partner/infrastructure"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-companies/pkg/infrastructure"
	validation "github.com/mateusmacedo/go-companies/pkg/infrastructure/validation/adapter"
)

// PartnerSlice monta os manipuladores de sócio, registra-os nos barramentos e
// expõe as rotas HTTP da fatia.
type PartnerSlice struct {
	httpHandler *infrastructure.PartnerHTTPHandler
}

func NewPartnerSlice(
	partners domain.PartnerRepository,
	unitOfWork pkgDomain.UnitOfWork,
	idGenerator pkgDomain.IDGenerator[uuid.UUID],
	logger pkgApp.AppLogger,
) *PartnerSlice {
	createBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreatePartnerData], application.CreatePartnerData, application.PartnerDetails]()
	removeBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.RemovePartnerData], application.RemovePartnerData, application.PartnerDetails]()

	createBus.RegisterHandler(application.CreatePartnerCommandName, application.NewCreatePartnerHandler(
		validation.NewCommandValidator[application.CreatePartnerData](),
		partners,
		unitOfWork,
		idGenerator,
		logger,
	))
	removeBus.RegisterHandler(application.RemovePartnerCommandName, application.NewRemovePartnerHandler(
		partners,
		unitOfWork,
		logger,
	))

	httpHandler := infrastructure.NewPartnerHTTPHandler(createBus, removeBus)

	return &PartnerSlice{
		httpHandler: httpHandler,
	}
}

func (s *PartnerSlice) RegisterRoutes(router *chi.Mux) {
	s.httpHandler.RegisterRoutes(router)
}
