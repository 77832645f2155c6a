package model

import (
	"time"
)

// UserProfileModel is the GORM-specific struct for the 'user_profiles' table.
// The profile subsystem owns writes; the dispatch engine only batch-reads.
type UserProfileModel struct {
	UserID    string `gorm:"type:text;primary_key"`
	Name      string `gorm:"type:text;not null;default:''"`
	Birthday  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// BillingSubscriptionModel is the GORM-specific struct for the
// 'billing_subscriptions' table, the billing state snapshot joined into
// profile resolution.
type BillingSubscriptionModel struct {
	UserID    string `gorm:"type:text;primary_key"`
	Status    string `gorm:"type:text;not null;default:''"`
	Plan      string `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BillingSubscriptionModel) TableName() string {
	return "billing_subscriptions"
}
