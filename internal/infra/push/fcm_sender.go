package push

import (
	"context"
	"encoding/json"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender creates an FCM sender. When no credentials file is configured,
// application default credentials are used.
func NewFCMSender(ctx context.Context, cfg *config.PushConfig) (service.PushSender, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmSender{
		client: client,
	}, nil
}

// Send delivers the payload through FCM, treating the subscription endpoint
// as the device token. Unregistered or malformed tokens are permanent; every
// other failure is eligible for the next scheduled run.
func (s *fcmSender) Send(ctx context.Context, sub *entity.PushSubscription, payload []byte) error {
	message := &messaging.Message{
		Token: sub.Endpoint,
		Data:  map[string]string{"payload": string(payload)},
	}

	var rendered struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := json.Unmarshal(payload, &rendered); err == nil && rendered.Title != "" {
		message.Notification = &messaging.Notification{
			Title: rendered.Title,
			Body:  rendered.Body,
		}
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return &service.DeliveryError{Message: err.Error(), Permanent: true}
		}

		return &service.DeliveryError{Message: err.Error()}
	}

	return nil
}
