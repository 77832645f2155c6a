package postgres

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sentEventRepository implements the repository.SentEventRepository interface.
type sentEventRepository struct {
	db *gorm.DB
}

// NewSentEventRepository is the constructor for sentEventRepository.
func NewSentEventRepository(db *gorm.DB) repository.SentEventRepository {
	return &sentEventRepository{
		db: db,
	}
}

// Exists reports whether the event key was already recorded for the date.
func (repo *sentEventRepository) Exists(ctx context.Context, date time.Time, eventKey string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SentEventModel{}).
		Where("date = ? AND event_key = ?", date, eventKey).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check sent event")
	}

	return count > 0, nil
}

// InsertIfAbsent records the event as sent. The ON CONFLICT DO NOTHING clause
// on (date, event_key) makes concurrent overlapping runs converge on a single
// ledger row without errors.
func (repo *sentEventRepository) InsertIfAbsent(ctx context.Context, record *entity.SentEventRecord) error {
	sentEventM := fromSentEventDomain(record)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "event_key"}},
			DoNothing: true,
		}).
		Create(sentEventM).Error; err != nil {
		return errors.Wrap(err, "failed to record sent event")
	}

	return nil
}

// DeleteOlderThan prunes ledger rows with a date before the cutoff.
func (repo *sentEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	if err := repo.db.WithContext(ctx).
		Where("date < ?", cutoff).
		Delete(&model.SentEventModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to prune sent events")
	}

	return nil
}

func fromSentEventDomain(record *entity.SentEventRecord) *model.SentEventModel {
	return &model.SentEventModel{
		Date:          record.Date,
		EventKey:      record.EventKey,
		EventType:     record.EventType,
		EventName:     record.EventName,
		EventPriority: record.EventPriority,
		SentBy:        record.SentBy,
	}
}
