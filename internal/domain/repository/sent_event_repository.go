package repository

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
)

// SentEventRepository is the durable idempotency ledger. The underlying store
// must support an atomic insert-if-absent so overlapping runs cannot both mark
// the same key.
type SentEventRepository interface {
	// Exists reports whether the event key was already recorded for the date.
	Exists(ctx context.Context, date time.Time, eventKey string) (bool, error)

	// InsertIfAbsent records the event as sent, ignoring conflicts on
	// (date, event_key) so concurrent overlapping runs are safe.
	InsertIfAbsent(ctx context.Context, record *entity.SentEventRecord) error

	// DeleteOlderThan prunes ledger rows with a date before the cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
}
