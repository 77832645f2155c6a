// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindActiveForEvent retrieves all active subscriptions whose preference blob
// explicitly opted into the given flag. The filter runs in the database
// against the JSONB column: an absent or false key excludes the row.
func (repo *subscriptionRepository) FindActiveForEvent(ctx context.Context, flag entity.PreferenceFlag) ([]*entity.PushSubscription, error) {
	query := repo.db.WithContext(ctx).
		Where("is_active = ?", true)

	if flag != entity.PreferenceAll {
		query = query.Where("(preferences ->> ?) = 'true'", string(flag))
	}

	var subscriptionModels []*model.PushSubscriptionModel
	if err := query.
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscription := toSubscriptionDomain(subscriptionM)
		// Re-check against the decoded blob: the SQL filter only matches the
		// literal string 'true', the entity handles every encoding.
		if !subscription.Preferences.Allows(flag) {
			continue
		}
		subscriptions = append(subscriptions, subscription)
	}

	return subscriptions, nil
}

// TouchLastNotificationSent records a successful delivery timestamp on the endpoint.
func (repo *subscriptionRepository) TouchLastNotificationSent(ctx context.Context, endpoint string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("endpoint = ?", endpoint).
		Update("last_notification_sent_at", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last notification time")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// Deactivate marks the endpoint inactive. The row is kept for audit; only the
// targeting query's is_active filter changes behavior.
func (repo *subscriptionRepository) Deactivate(ctx context.Context, endpoint string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("endpoint = ?", endpoint).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// toSubscriptionDomain converts a GORM model to a domain entity. A preference
// blob that fails to decode degrades to the zero value, which carries no
// opt-ins and is excluded from flag-targeted events.
func toSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	var preferences entity.NotificationPreferences
	if len(data.Preferences) > 0 {
		_ = json.Unmarshal(data.Preferences, &preferences)
	}

	return &entity.PushSubscription{
		Endpoint: data.Endpoint,
		Credentials: entity.SubscriptionCredentials{
			P256dh: data.P256dh,
			Auth:   data.Auth,
		},
		OwnerUserID:            data.UserID,
		UserEmail:              data.UserEmail,
		Preferences:            preferences,
		IsActive:               data.IsActive,
		LastNotificationSentAt: data.LastNotificationSentAt,
	}
}
