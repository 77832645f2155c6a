package postgres

import (
	"context"
	"strings"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// BatchGetProfiles resolves all requested user profiles in two IN queries,
// one for profiles and one for billing state. Users without a profile row are
// simply absent from the result.
func (repo *profileRepository) BatchGetProfiles(ctx context.Context, userIDs []string) (map[string]*entity.UserProfile, error) {
	if len(userIDs) == 0 {
		return nil, repository.ErrEmptyUserIDs
	}

	var profileModels []*model.UserProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to batch load user profiles")
	}

	var billingModels []*model.BillingSubscriptionModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&billingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to batch load billing subscriptions")
	}

	billingByUser := make(map[string]*model.BillingSubscriptionModel, len(billingModels))
	for _, billingM := range billingModels {
		billingByUser[billingM.UserID] = billingM
	}

	profiles := make(map[string]*entity.UserProfile, len(profileModels))
	for _, profileM := range profileModels {
		profiles[profileM.UserID] = toProfileDomain(profileM, billingByUser[profileM.UserID])
	}

	return profiles, nil
}

func toProfileDomain(profileM *model.UserProfileModel, billingM *model.BillingSubscriptionModel) *entity.UserProfile {
	profile := &entity.UserProfile{
		UserID:   profileM.UserID,
		Name:     profileM.Name,
		Birthday: profileM.Birthday,
	}
	if billingM != nil {
		profile.Subscription = entity.BillingSnapshot{
			Status: billingM.Status,
			Plan:   billingM.Plan,
			IsPaid: isPaidPlan(billingM.Status, billingM.Plan),
		}
	}

	return profile
}

// isPaidPlan reports whether the billing row represents an entitled
// subscription. Cancelled or free rows never qualify for personalization.
func isPaidPlan(status, plan string) bool {
	if !strings.EqualFold(status, "active") {
		return false
	}

	switch strings.ToLower(plan) {
	case "", "free":
		return false
	default:
		return true
	}
}
