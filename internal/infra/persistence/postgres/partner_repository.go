// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"partnerdash/internal/domain/entity"
	domainerrors "partnerdash/internal/domain/errors"
	"partnerdash/internal/domain/repository"
	"partnerdash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// partnerRepository implements the domain PartnerRepository interface using GORM.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{db: db}
}

// FindByID retrieves a partner by id.
func (repo *partnerRepository) FindByID(ctx context.Context, id int64) (*entity.Partner, error) {
	var partnerM model.PartnerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find partner by id")
	}

	return toPartnerDomain(&partnerM), nil
}

// FindByEmail retrieves a partner by its login email. Emails are compared after trimming and lowercasing.
func (repo *partnerRepository) FindByEmail(ctx context.Context, email string) (*entity.Partner, error) {
	var partnerM model.PartnerModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&partnerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find partner by email")
	}

	return toPartnerDomain(&partnerM), nil
}

// Create persists a new partner and writes back the generated id and timestamps.
func (repo *partnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	partnerM := fromPartnerDomain(partner)
	partnerM.Email = normalizeEmail(partnerM.Email)

	if err := repo.db.WithContext(ctx).Create(partnerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create partner")
	}

	partner.ID = partnerM.ID
	partner.Email = partnerM.Email
	partner.CreatedAt = partnerM.CreatedAt
	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toPartnerDomain(data *model.PartnerModel) *entity.Partner {
	return &entity.Partner{
		ID:           data.ID,
		CompanyName:  data.CompanyName,
		TradeName:    data.TradeName,
		Email:        data.Email,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		City:         data.City,
		State:        data.State,
		AddressLine:  data.AddressLine,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsVerified:   data.IsVerified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPartnerDomain(data *entity.Partner) *model.PartnerModel {
	return &model.PartnerModel{
		ID:           data.ID,
		CompanyName:  data.CompanyName,
		TradeName:    data.TradeName,
		Email:        data.Email,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		City:         data.City,
		State:        data.State,
		AddressLine:  data.AddressLine,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsVerified:   data.IsVerified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
