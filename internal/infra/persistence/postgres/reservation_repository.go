package postgres

import (
	"context"

	"partnerdash/internal/domain/entity"
	domainerrors "partnerdash/internal/domain/errors"
	"partnerdash/internal/domain/repository"
	"partnerdash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reservationRepository implements the domain ReservationRepository interface.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

// FindByPartner lists a partner's reservations, newest first.
func (repo *reservationRepository) FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel
	err := repo.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reservationModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reservations")
	}

	reservations := make([]*entity.Reservation, 0, len(reservationModels))
	for _, reservationM := range reservationModels {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations, nil
}

// FindOwned retrieves a reservation only when it belongs to partnerID.
func (repo *reservationRepository) FindOwned(ctx context.Context, partnerID, reservationID int64) (*entity.Reservation, error) {
	var reservationM model.ReservationModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND partner_id = ?", reservationID, partnerID).
		First(&reservationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find reservation")
	}

	return toReservationDomain(&reservationM), nil
}

// UpdateStatus sets the status of an owned reservation. The ownership filter is part of the
// UPDATE itself, so a foreign id never mutates anything.
func (repo *reservationRepository) UpdateStatus(ctx context.Context, partnerID, reservationID int64, status entity.ReservationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("id = ? AND partner_id = ?", reservationID, partnerID).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reservation status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

// CountByPartner counts all reservations of a partner.
func (repo *reservationRepository) CountByPartner(ctx context.Context, partnerID int64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("partner_id = ?", partnerID).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count reservations")
	}

	return count, nil
}

func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	return &entity.Reservation{
		ID:         data.ID,
		PartnerID:  data.PartnerID,
		Name:       data.Name,
		Phone:      data.Phone,
		People:     data.People,
		ReservedAt: data.ReservedAt,
		Status:     entity.ReservationStatus(data.Status),
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
