// Package service defines interfaces for external collaborators of the dispatch engine.
package service

import (
	"context"
	"fmt"
	"strings"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"
)

// PushSender delivers one encrypted payload to one subscription endpoint.
type PushSender interface {
	// Send pushes the payload to the subscription's endpoint using its
	// credentials. Failures are returned as *DeliveryError so the dispatcher
	// can distinguish permanent endpoints from transient conditions.
	Send(ctx context.Context, sub *entity.PushSubscription, payload []byte) error
}

// DeliveryError classifies a failed delivery attempt.
type DeliveryError struct {
	StatusCode int    // Provider-reported HTTP status, 0 when unavailable.
	Message    string // Provider-reported message.
	Permanent  bool   // Endpoint will never succeed again; deactivate it.
}

func (e *DeliveryError) Error() string {
	kind := "transient"
	if e.Permanent {
		kind = "permanent"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s delivery failure (status %d): %s", kind, e.StatusCode, e.Message)
	}

	return fmt.Sprintf("%s delivery failure: %s", kind, e.Message)
}

// NewDeliveryError classifies a provider failure by status code and message.
// Gone or invalid endpoints (410/404, or messages signalling expiry) are
// permanent; everything else, including network errors, 5xx, and rate limits,
// is transient and eligible for the next scheduled run.
func NewDeliveryError(statusCode int, message string) *DeliveryError {
	return &DeliveryError{
		StatusCode: statusCode,
		Message:    message,
		Permanent:  isPermanentSignature(statusCode, message),
	}
}

// IsPermanentFailure reports whether err carries a permanent delivery classification.
func IsPermanentFailure(err error) bool {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de.Permanent
	}

	return false
}

func isPermanentSignature(statusCode int, message string) bool {
	switch statusCode {
	case 404, 410:
		return true
	}

	msg := strings.ToLower(message)
	for _, marker := range []string{"expired", "invalid", "unsubscribed", "gone", "not found", "unregistered"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}

	return false
}
