package push

import (
	"context"
	"io"
	"strings"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
)

const (
	// Push services hold undeliverable messages up to this long.
	defaultTTLSeconds = 60 * 60 * 24

	maxErrorBodyBytes = 512
)

type webPushSender struct {
	subscriber      string
	vapidPublicKey  string
	vapidPrivateKey string
}

// NewWebPushSender creates a Web Push sender using the configured VAPID key pair.
func NewWebPushSender(cfg *config.PushConfig) (service.PushSender, error) {
	if cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		return nil, errors.New("VAPID key pair is required for webpush provider")
	}

	return &webPushSender{
		subscriber:      cfg.Subscriber,
		vapidPublicKey:  cfg.VAPIDPublicKey,
		vapidPrivateKey: cfg.VAPIDPrivateKey,
	}, nil
}

// Send encrypts and delivers the payload to the subscription's push service.
// Non-2xx responses are classified via the status code; transport errors are
// always transient.
func (s *webPushSender) Send(ctx context.Context, sub *entity.PushSubscription, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Credentials.P256dh,
			Auth:   sub.Credentials.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.subscriber, // webpush-go adds mailto: automatically
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
		TTL:             defaultTTLSeconds,
	})
	if err != nil {
		return &service.DeliveryError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	message := strings.TrimSpace(string(body))
	if message == "" {
		message = resp.Status
	}

	return service.NewDeliveryError(resp.StatusCode, message)
}
