package model

import (
	"time"

	"github.com/google/uuid"
)

// SentEventModel is the GORM-specific struct for the 'sent_events' table, the
// durable idempotency ledger. The composite unique index on (date, event_key)
// is what makes InsertIfAbsent atomic under concurrent triggers.
type SentEventModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_sent_events_date_event_key"`
	EventKey      string    `gorm:"type:text;not null;uniqueIndex:idx_sent_events_date_event_key"`
	EventType     string    `gorm:"type:text;not null"`
	EventName     string    `gorm:"type:text;not null"`
	EventPriority int       `gorm:"not null;default:0"`
	SentBy        string    `gorm:"type:text;not null;default:''"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SentEventModel) TableName() string {
	return "sent_events"
}
