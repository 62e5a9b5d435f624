package application

import (
	"context"

	"github.com/mateusmacedo/go-companies/internal/company/domain"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

const FindCompanyByCnpjQueryName = "FindCompanyByCnpj"

type FindCompanyByCnpjData struct {
	Cnpj string
}

type findCompanyByCnpjQuery struct {
	data FindCompanyByCnpjData
}

func (q findCompanyByCnpjQuery) QueryName() string {
	return FindCompanyByCnpjQueryName
}

func (q findCompanyByCnpjQuery) Payload() FindCompanyByCnpjData {
	return q.data
}

func NewFindCompanyByCnpjQuery(data FindCompanyByCnpjData) pkgDomain.Query[FindCompanyByCnpjData] {
	return findCompanyByCnpjQuery{data: data}
}

type findCompanyByCnpjHandler struct {
	repository domain.CompanyRepository
	logger     pkgApp.AppLogger
}

// Handle devolve os detalhes da empresa ou nil quando o cnpj não está
// cadastrado.
func (h *findCompanyByCnpjHandler) Handle(ctx context.Context, query pkgDomain.Query[FindCompanyByCnpjData]) (*CompanyDetails, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cnpj := domain.NewCnpj(query.Payload().Cnpj)
	company, err := h.repository.GetByCnpj(ctx, cnpj)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "erro ao consultar empresa", err, map[string]interface{}{"cnpj": cnpj})
		return nil, err
	}
	if company == nil {
		return nil, nil
	}

	details := NewCompanyDetails(company)
	return &details, nil
}

func NewFindCompanyByCnpjHandler(repository domain.CompanyRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[FindCompanyByCnpjData], FindCompanyByCnpjData, *CompanyDetails] {
	return &findCompanyByCnpjHandler{repository: repository, logger: logger}
}
