package importer_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	companyApp "github.com/mateusmacedo/go-companies/internal/company/application"
	companyDomain "github.com/mateusmacedo/go-companies/internal/company/domain"
	companyInfra "github.com/mateusmacedo/go-companies/internal/company/infrastructure"
	"github.com/mateusmacedo/go-companies/internal/importer"
	partnerDomain "github.com/mateusmacedo/go-companies/internal/partner/domain"
	partnerInfra "github.com/mateusmacedo/go-companies/internal/partner/infrastructure"
	pkgInfra "github.com/mateusmacedo/go-companies/pkg/infrastructure"
	validation "github.com/mateusmacedo/go-companies/pkg/infrastructure/validation/adapter"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{}) {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}

type pipeline struct {
	broker    importer.Broker
	consumer  *importer.Consumer
	pubSub    message.Publisher
	companies *companyInfra.InMemoryCompanyRepository
	partnerID uuid.UUID
	done      chan error
}

func newPipeline(ctx context.Context, t *testing.T) *pipeline {
	t.Helper()

	pubSub := importer.NewGoChannelPubSub(watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	companies := companyInfra.NewInMemoryCompanyRepository(nopLogger{})
	partners := partnerInfra.NewInMemoryPartnerRepository(nopLogger{})

	created := partnerDomain.Create(uuid.New(), partnerDomain.NewCompleteName("Maria", "Silva"), partnerDomain.NewEmail("maria.silva@example.com"))
	require.True(t, created.IsSuccess())
	require.NoError(t, partners.Add(ctx, created.Data))

	handler := companyApp.NewCreateCompanyHandler(
		validation.NewCommandValidator[companyApp.CreateCompanyData](),
		companies,
		partners,
		pkgInfra.NewNoopUnitOfWork(),
		uuid.New,
		nopLogger{},
	)

	consumer := importer.NewConsumer(pubSub, handler, nopLogger{})

	done := make(chan error, 1)
	go func() {
		done <- consumer.Run(ctx)
	}()

	return &pipeline{
		broker:    importer.NewWatermillBroker(importer.SharedPublisherFactory(pubSub), nopLogger{}),
		consumer:  consumer,
		pubSub:    pubSub,
		companies: companies,
		partnerID: created.Data.ID,
		done:      done,
	}
}

func importCommand(partnerID uuid.UUID, cnpj, name string) companyApp.CreateCompanyData {
	return companyApp.CreateCompanyData{
		Cnpj:           cnpj,
		Name:           name,
		LegalNature:    "LTDA",
		MainActivityID: 6201,
		Address: companyApp.AddressModel{
			PostalCode:   "01310100",
			Street:       "Avenida Paulista",
			Number:       "1578",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
			Country:      "BR",
		},
		Partners: []companyApp.CompanyPartnerModel{
			{PartnerID: partnerID, QualificationID: 49, JoinedAt: time.Now()},
		},
		Phones: []companyApp.PhoneModel{
			{CountryCode: "55", Number: "11987654321"},
		},
	}
}

func (p *pipeline) waitForCompany(ctx context.Context, t *testing.T, cnpj string) {
	t.Helper()

	require.Eventually(t, func() bool {
		exists, err := p.companies.AnyByCnpj(ctx, companyDomain.NewCnpj(cnpj))
		return err == nil && exists
	}, 5*time.Second, 10*time.Millisecond)
}

func TestConsumerImportsPublishedCommand(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := newPipeline(ctx, t)

	require.NoError(t, p.broker.Publish(ctx, importCommand(p.partnerID, "11222333000181", "Acme Ltda")))

	p.waitForCompany(ctx, t, "11222333000181")

	company, err := p.companies.GetByCnpj(ctx, companyDomain.NewCnpj("11222333000181"))
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.True(t, company.IsOperational)

	cancel()
	require.NoError(t, <-p.done)
	assert.Equal(t, importer.StateStopped, p.consumer.State())
}

func TestConsumerAcksBusinessRejectionAndKeepsConsuming(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := newPipeline(ctx, t)

	require.NoError(t, p.broker.Publish(ctx, importCommand(p.partnerID, "11222333000181", "Acme Ltda")))
	p.waitForCompany(ctx, t, "11222333000181")

	// Mesmo cnpj: rejeição de negócio, confirmada e não reentregue.
	require.NoError(t, p.broker.Publish(ctx, importCommand(p.partnerID, "11222333000181", "Acme Clone")))

	// O consumo segue: um terceiro comando ainda é processado.
	require.NoError(t, p.broker.Publish(ctx, importCommand(p.partnerID, "99888777000166", "Outra Empresa")))
	p.waitForCompany(ctx, t, "99888777000166")

	duplicated, err := p.companies.AnyByName(ctx, "Acme Clone")
	require.NoError(t, err)
	assert.False(t, duplicated, "comando rejeitado não cria empresa")

	cancel()
	require.NoError(t, <-p.done)
}

func TestConsumerDropsMalformedPayload(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := newPipeline(ctx, t)

	require.NoError(t, p.pubSub.Publish(importer.QueueName, message.NewMessage(watermill.NewUUID(), []byte("not-json"))))

	// A mensagem envenenada é descartada e a fila não trava.
	require.NoError(t, p.broker.Publish(ctx, importCommand(p.partnerID, "11222333000181", "Acme Ltda")))
	p.waitForCompany(ctx, t, "11222333000181")

	cancel()
	require.NoError(t, <-p.done)
	assert.Equal(t, importer.StateStopped, p.consumer.State())
}

func TestConsumerReachesConsumingState(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := newPipeline(ctx, t)

	require.Eventually(t, func() bool {
		return p.consumer.State() == importer.StateConsuming
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-p.done)
}
