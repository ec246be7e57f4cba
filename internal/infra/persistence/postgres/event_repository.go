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

// eventRepository implements the domain EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// FindByPartner lists a partner's events, newest first.
func (repo *eventRepository) FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Event, error) {
	var eventModels []*model.EventModel
	err := repo.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&eventModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// FindOwned retrieves an event only when it belongs to partnerID.
func (repo *eventRepository) FindOwned(ctx context.Context, partnerID, eventID int64) (*entity.Event, error) {
	var eventM model.EventModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND partner_id = ?", eventID, partnerID).
		First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find event")
	}

	return toEventDomain(&eventM), nil
}

// DeleteOwned removes an event only when it belongs to partnerID.
func (repo *eventRepository) DeleteOwned(ctx context.Context, partnerID, eventID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND partner_id = ?", eventID, partnerID).
		Delete(&model.EventModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// CountActive counts the partner's public, approved events.
func (repo *eventRepository) CountActive(ctx context.Context, partnerID int64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("partner_id = ? AND visibility = ? AND is_approved = ?", partnerID, entity.VisibilityPublic, true).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count events")
	}

	return count, nil
}

func toEventDomain(data *model.EventModel) *entity.Event {
	return &entity.Event{
		ID:            data.ID,
		PartnerID:     data.PartnerID,
		Title:         data.Title,
		Description:   data.Description,
		StartsAt:      data.StartsAt,
		EndsAt:        data.EndsAt,
		Category:      data.Category,
		PriceMinCents: data.PriceMinCents,
		Visibility:    data.Visibility,
		IsApproved:    data.IsApproved,
		CoverImageURL: data.CoverImageURL,
		CreatedAt:     data.CreatedAt,
	}
}
