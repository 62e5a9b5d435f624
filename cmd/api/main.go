package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mateusmacedo/go-companies/internal/company"
	companyApp "github.com/mateusmacedo/go-companies/internal/company/application"
	companyDomain "github.com/mateusmacedo/go-companies/internal/company/domain"
	companyInfra "github.com/mateusmacedo/go-companies/internal/company/infrastructure"
	"github.com/mateusmacedo/go-companies/internal/importer"
	"github.com/mateusmacedo/go-companies/internal/partner"
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

	companies, partners, unitOfWork, err := buildRepositories(cfg, appLogger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao inicializar os repositórios", map[string]interface{}{"error": err})
		panic(err)
	}

	idGenerator := pkgInfra.GenerateUUID
	watermillLogger := watermillAdapter.NewWatermillLoggerAdapter(appLogger)

	var broker importer.Broker
	if cfg.Broker.Driver == "channel" {
		// Modo single-process: publicador e consumidor compartilham o mesmo
		// pub/sub em memória.
		pubSub := importer.NewGoChannelPubSub(watermillLogger)
		broker = importer.NewWatermillBroker(importer.SharedPublisherFactory(pubSub), appLogger)

		consumer := importer.NewConsumer(pubSub, companyApp.NewCreateCompanyHandler(
			validation.NewCommandValidator[companyApp.CreateCompanyData](),
			companies,
			partners,
			unitOfWork,
			idGenerator,
			appLogger,
		), appLogger)

		go func() {
			if err := consumer.Run(ctx); err != nil {
				appLogger.Error(ctx, "Consumidor de importação encerrou com erro", map[string]interface{}{"error": err})
				cancel()
			}
		}()
	} else {
		publisherFactory, err := importer.NewPublisherFactory(cfg.Broker, watermillLogger)
		if err != nil {
			appLogger.Error(ctx, "Erro ao configurar o broker", map[string]interface{}{"error": err})
			panic(err)
		}
		broker = importer.NewWatermillBroker(publisherFactory, appLogger)
	}

	companySlice := company.NewCompanySlice(companies, partners, unitOfWork, idGenerator, appLogger, broker)
	partnerSlice := partner.NewPartnerSlice(partners, unitOfWork, idGenerator, appLogger)

	router := chi.NewRouter()
	companySlice.RegisterRoutes(router)
	partnerSlice.RegisterRoutes(router)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		appLogger.Info(ctx, "Sinal capturado", map[string]interface{}{"signal": sig})
		cancel()
	}()

	server := &http.Server{
		Addr:    cfg.App.HTTPAddr,
		Handler: router,
	}

	go func() {
		appLogger.Info(ctx, "Server starting on:"+cfg.App.HTTPAddr, nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error(ctx, "Erro ao iniciar o servidor", map[string]interface{}{"error": err})
			cancel()
		}
	}()

	<-ctx.Done()
	appLogger.Info(ctx, "Encerrando servidor...", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(context.Background(), "Erro ao encerrar servidor", map[string]interface{}{"error": err})
	}

	appLogger.Info(context.Background(), "Servidor encerrado", nil)
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
