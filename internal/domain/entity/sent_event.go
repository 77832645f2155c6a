package entity

import "time"

// SentEventRecord is one row of the idempotency ledger. At most one record
// exists per (date, event key); its insertion is the commit point that gates
// whether a later trigger for the same event sends anything.
type SentEventRecord struct {
	Date          time.Time `json:"date"` // Calendar date (UTC), truncated to midnight.
	EventKey      string    `json:"event_key"`
	EventType     string    `json:"event_type"`
	EventName     string    `json:"event_name"`
	EventPriority int       `json:"event_priority"`
	SentBy        string    `json:"sent_by"` // Which scheduler path created the record.
	CreatedAt     time.Time `json:"created_at"`
}
