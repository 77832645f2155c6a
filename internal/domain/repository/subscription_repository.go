// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"
)

// ErrSubscriptionNotFound is returned when a subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the interface for push subscription persistence.
//
// One dispatch run issues exactly one FindActiveForEvent query; per-subscriber
// mutations (touch, deactivate) are only performed by the delivery dispatcher
// for the subscriber it is actively processing.
type SubscriptionRepository interface {
	// FindActiveForEvent returns all active subscriptions whose preferences
	// allow the given flag. An empty flag targets every active subscription.
	// An empty result is valid, not an error.
	FindActiveForEvent(ctx context.Context, flag entity.PreferenceFlag) ([]*entity.PushSubscription, error)

	// TouchLastNotificationSent records a successful delivery on the endpoint.
	TouchLastNotificationSent(ctx context.Context, endpoint string, at time.Time) error

	// Deactivate marks the endpoint inactive so future runs skip it.
	// Used on permanent delivery failures; the row is never hard-deleted here.
	Deactivate(ctx context.Context, endpoint string) error
}
