// Package model contains the GORM-specific structs mapping domain entities to tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PushSubscriptionModel is the GORM-specific struct for the 'push_subscriptions' table.
// One row is one browser/device endpoint; the endpoint string is the natural key.
type PushSubscriptionModel struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Endpoint               string         `gorm:"type:text;not null;uniqueIndex"`
	P256dh                 string         `gorm:"type:text;not null"`
	Auth                   string         `gorm:"type:text;not null"`
	UserID                 *string        `gorm:"type:text;index"`
	UserEmail              *string        `gorm:"type:text"`
	Preferences            datatypes.JSON `gorm:"type:jsonb"`
	IsActive               bool           `gorm:"not null;default:true;index"`
	LastNotificationSentAt *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
