package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	companyApp "github.com/mateusmacedo/go-companies/internal/company/application"
	companyDomain "github.com/mateusmacedo/go-companies/internal/company/domain"
	companyInfra "github.com/mateusmacedo/go-companies/internal/company/infrastructure"
	"github.com/mateusmacedo/go-companies/internal/importer"
	partnerDomain "github.com/mateusmacedo/go-companies/internal/partner/domain"
	partnerInfra "github.com/mateusmacedo/go-companies/internal/partner/infrastructure"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-companies/pkg/infrastructure"
	"github.com/mateusmacedo/go-companies/pkg/infrastructure/config"
	gormAdapter "github.com/mateusmacedo/go-companies/pkg/infrastructure/gormstore/adapter"
	validation "github.com/mateusmacedo/go-companies/pkg/infrastructure/validation/adapter"
	watermillAdapter "github.com/mateusmacedo/go-companies/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-companies/pkg/infrastructure/zaplogger/adapter"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		appLogger.Error(ctx, "Erro ao carregar configuração", map[string]interface{}{"error": err})
		panic(err)
	}

	if cfg.Broker.Driver == "channel" {
		// O pub/sub em memória não atravessa processos; nesse modo o consumo
		// roda dentro do próprio processo da API.
		panic(fmt.Errorf("BROKER_DRIVER channel is not supported by the worker"))
	}

	companies, partners, unitOfWork, err := buildRepositories(cfg, appLogger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao inicializar os repositórios", map[string]interface{}{"error": err})
		panic(err)
	}

	watermillLogger := watermillAdapter.NewWatermillLoggerAdapter(appLogger)
	subscriber, err := importer.NewSubscriber(cfg.Broker, watermillLogger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao conectar no broker", map[string]interface{}{"error": err})
		panic(err)
	}
	defer subscriber.Close()

	handler := companyApp.NewCreateCompanyHandler(
		validation.NewCommandValidator[companyApp.CreateCompanyData](),
		companies,
		partners,
		unitOfWork,
		pkgInfra.GenerateUUID,
		appLogger,
	)

	consumer := importer.NewConsumer(subscriber, handler, appLogger)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		appLogger.Info(ctx, "Sinal capturado", map[string]interface{}{"signal": sig})
		cancel()
	}()

	appLogger.Info(ctx, "Consumidor de importação iniciado", map[string]interface{}{"queue": importer.QueueName})

	if err := consumer.Run(ctx); err != nil {
		appLogger.Error(context.Background(), "Consumidor de importação encerrou com erro", map[string]interface{}{"error": err})
		os.Exit(1)
	}

	appLogger.Info(context.Background(), "Consumidor encerrado", nil)
}

func buildRepositories(cfg config.Config, appLogger pkgApp.AppLogger) (companyDomain.CompanyRepository, partnerDomain.PartnerRepository, pkgDomain.UnitOfWork, error) {
	if cfg.App.Storage == "memory" {
		return companyInfra.NewInMemoryCompanyRepository(appLogger),
			partnerInfra.NewInMemoryPartnerRepository(appLogger),
			pkgInfra.NewNoopUnitOfWork(),
			nil
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, nil, nil, err
	}

	unitOfWork := gormAdapter.NewGormUnitOfWork(db)

	companies, err := companyInfra.NewGormCompanyRepository(db, unitOfWork, appLogger)
	if err != nil {
		return nil, nil, nil, err
	}
	partners, err := partnerInfra.NewGormPartnerRepository(db, unitOfWork, appLogger)
	if err != nil {
		return nil, nil, nil, err
	}

	return companies, partners, unitOfWork, nil
}
