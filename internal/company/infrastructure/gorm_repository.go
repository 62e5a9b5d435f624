package infrastructure

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateusmacedo/go-companies/internal/company/domain"
	"github.com/mateusmacedo/go-companies/pkg/application"
	gormAdapter "github.com/mateusmacedo/go-companies/pkg/infrastructure/gormstore/adapter"
)

// gormCompanyRepository lê direto do banco e registra as escritas na unidade
// de trabalho, que as aplica em uma única transação no Commit.
type gormCompanyRepository struct {
	db         *gorm.DB
	unitOfWork *gormAdapter.GormUnitOfWork
	logger     application.AppLogger
}

func NewGormCompanyRepository(db *gorm.DB, unitOfWork *gormAdapter.GormUnitOfWork, logger application.AppLogger) (domain.CompanyRepository, error) {
	if err := db.AutoMigrate(&domain.Company{}, &domain.PartnerLink{}); err != nil {
		return nil, err
	}

	return &gormCompanyRepository{
		db:         db,
		unitOfWork: unitOfWork,
		logger:     logger,
	}, nil
}

func (r *gormCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).Preload("Partners").First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		application.LogError(ctx, r.logger, "failed to load company", err, map[string]interface{}{"id": id})
		return nil, err
	}
	return &company, nil
}

func (r *gormCompanyRepository) GetByCnpj(ctx context.Context, cnpj domain.Cnpj) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).Preload("Partners").First(&company, "cnpj = ?", cnpj).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		application.LogError(ctx, r.logger, "failed to load company", err, map[string]interface{}{"cnpj": cnpj})
		return nil, err
	}
	return &company, nil
}

func (r *gormCompanyRepository) AnyByCnpj(ctx context.Context, cnpj domain.Cnpj) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Company{}).Where("cnpj = ?", cnpj).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormCompanyRepository) AnyByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Company{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormCompanyRepository) Add(ctx context.Context, company *domain.Company) error {
	return r.unitOfWork.Register(ctx, func(tx *gorm.DB) error {
		return tx.Create(company).Error
	})
}

func (r *gormCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	return r.unitOfWork.Register(ctx, func(tx *gorm.DB) error {
		// Os vínculos são recriados para refletir remoções na coleção.
		if err := tx.Where("company_id = ?", company.ID).Delete(&domain.PartnerLink{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(company).Error
	})
}

func (r *gormCompanyRepository) Remove(ctx context.Context, company *domain.Company) error {
	return r.unitOfWork.Register(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", company.ID).Delete(&domain.PartnerLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Company{}, "id = ?", company.ID).Error
	})
}
