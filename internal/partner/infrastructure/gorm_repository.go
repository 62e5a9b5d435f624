package infrastructure

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateusmacedo/go-companies/internal/partner/domain"
	"github.com/mateusmacedo/go-companies/pkg/application"
	gormAdapter "github.com/mateusmacedo/go-companies/pkg/infrastructure/gormstore/adapter"
)

type gormPartnerRepository struct {
	db         *gorm.DB
	unitOfWork *gormAdapter.GormUnitOfWork
	logger     application.AppLogger
}

func NewGormPartnerRepository(db *gorm.DB, unitOfWork *gormAdapter.GormUnitOfWork, logger application.AppLogger) (domain.PartnerRepository, error) {
	if err := db.AutoMigrate(&domain.Partner{}); err != nil {
		return nil, err
	}

	return &gormPartnerRepository{
		db:         db,
		unitOfWork: unitOfWork,
		logger:     logger,
	}, nil
}

func (r *gormPartnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error) {
	var partner domain.Partner
	err := r.db.WithContext(ctx).First(&partner, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		application.LogError(ctx, r.logger, "failed to load partner", err, map[string]interface{}{"id": id})
		return nil, err
	}
	return &partner, nil
}

func (r *gormPartnerRepository) AnyPartnerByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Partner{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormPartnerRepository) IsDuplicatedEmail(ctx context.Context, email domain.Email) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Partner{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormPartnerRepository) Add(ctx context.Context, partner *domain.Partner) error {
	return r.unitOfWork.Register(ctx, func(tx *gorm.DB) error {
		return tx.Create(partner).Error
	})
}

func (r *gormPartnerRepository) Remove(ctx context.Context, partner *domain.Partner) error {
	return r.unitOfWork.Register(ctx, func(tx *gorm.DB) error {
		return tx.Delete(&domain.Partner{}, "id = ?", partner.ID).Error
	})
}
