package service

import (
	"context"

	"pulse/internal/domain/entity"
)

// EventPublisher defines the interface for publishing notification events to a
// message queue for asynchronous dispatch.
type EventPublisher interface {
	// PublishNotificationEvent publishes an event for async processing.
	PublishNotificationEvent(ctx context.Context, event *entity.NotificationEvent, sentBy string) error

	// Close releases any resources held by the publisher.
	Close() error
}
